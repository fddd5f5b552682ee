package resultstore

import (
	"fmt"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/schema"
)

// PrintStoreStatus prints result store status information.
func PrintStoreStatus(status contract.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Result tracking is disabled.")
		return
	}
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	fmt.Printf("Total Runs: %d\n", status.RunCount)
	fmt.Printf("Total Metric Rows: %d\n", status.RowCount)
}

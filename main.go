// main is the entry point for the modelmeter CLI.
package main

import (
	"github.com/huangsam/modelmeter/cmd"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/resultstore"
)

func main() {
	err := cmd.Execute()
	resultstore.CloseStore()
	if err != nil {
		contract.LogFatal("Cannot run modelmeter", err)
	}
}

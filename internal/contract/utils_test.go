package contract

import (
	"strings"
	"testing"

	"github.com/huangsam/modelmeter/schema"
	"github.com/stretchr/testify/assert"
)

// TestFormatGroups tests key tuple rendering for tables.
func TestFormatGroups(t *testing.T) {
	assert.Equal(t, "-", FormatGroups(nil))
	assert.Equal(t, "region=east", FormatGroups([]schema.GroupValue{{Column: "region", Value: "east"}}))
	assert.Equal(t, "region=east, tier=gold", FormatGroups([]schema.GroupValue{
		{Column: "region", Value: "east"},
		{Column: "tier", Value: "gold"},
	}))
}

// TestGroupKeyString tests the compact storage key.
func TestGroupKeyString(t *testing.T) {
	assert.Equal(t, "", GroupKeyString(nil))
	assert.Equal(t, "region=east;tier=gold", GroupKeyString([]schema.GroupValue{
		{Column: "region", Value: "east"},
		{Column: "tier", Value: "gold"},
	}))
}

// TestGetDirectionLabel tests plain and colored labels share the same text.
func TestGetDirectionLabel(t *testing.T) {
	for _, d := range []schema.Direction{schema.Maximize, schema.Minimize, schema.Zero} {
		plain := GetDirectionLabel(d)
		assert.Equal(t, string(d), plain)
		// Colored output may add escape codes but always contains the label.
		assert.True(t, strings.Contains(GetColorDirectionLabel(d), plain))
	}
}

// TestGetStoreDBFilePath tests the default SQLite location.
func TestGetStoreDBFilePath(t *testing.T) {
	path := GetStoreDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".modelmeter_results.db"))
}

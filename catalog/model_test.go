package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doclint/catalog"
)

func TestFullName(t *testing.T) {
	table := catalog.TableInfo{Catalog: "main", Schema: "sales", Name: "orders"}
	assert.Equal(t, "main.sales.orders", table.FullName())
}

func TestHasComment(t *testing.T) {
	comment := func(s string) *string { return &s }

	tests := []struct {
		name    string
		comment *string
		want    bool
	}{
		{"nil comment", nil, false},
		{"empty comment", comment(""), false},
		{"whitespace-only comment", comment(" \t\n"), false},
		{"real comment", comment("Order records"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := catalog.TableInfo{Catalog: "main", Schema: "sales", Name: "orders", Comment: tt.comment}
			assert.Equal(t, tt.want, table.HasComment())
		})
	}
}

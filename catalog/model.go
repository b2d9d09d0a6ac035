package catalog

import (
	"fmt"
	"strings"
)

// ColumnInfo is one column of a catalog table as reported by discovery.
// Comment is nil when the catalog has no comment stored for the column;
// blank and nil are both possible and rules decide how to treat them.
type ColumnInfo struct {
	Name    string
	Type    string
	Comment *string
}

// TableInfo is a point-in-time snapshot of one table. Discovery produces
// it once per run; the validator only reads it.
type TableInfo struct {
	Catalog string
	Schema  string
	Name    string
	Comment *string
	Columns []ColumnInfo
}

// FullName returns the qualified catalog.schema.table identifier.
func (t TableInfo) FullName() string {
	return fmt.Sprintf("%s.%s.%s", t.Catalog, t.Schema, t.Name)
}

// HasComment reports whether the table carries a non-blank comment.
// Whitespace-only comments count as missing.
func (t TableInfo) HasComment() bool {
	return t.Comment != nil && strings.TrimSpace(*t.Comment) != ""
}

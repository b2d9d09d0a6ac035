package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"doclint/catalog"
)

type yamlSnapshot struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Catalog string       `yaml:"catalog"`
	Schema  string       `yaml:"schema"`
	Name    string       `yaml:"name"`
	Comment *string      `yaml:"comment"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	Comment *string `yaml:"comment"`
}

// LoadTablesFromYAML reads a table snapshot file into catalog metadata.
// Snapshots make runs deterministic and fully offline; a comment key left
// out of the file stays nil, distinct from an empty string.
func LoadTablesFromYAML(filename string) ([]catalog.TableInfo, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap yamlSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	var tables []catalog.TableInfo
	for _, t := range snap.Tables {
		table := catalog.TableInfo{
			Catalog: t.Catalog,
			Schema:  t.Schema,
			Name:    t.Name,
			Comment: t.Comment,
		}
		for _, c := range t.Columns {
			table.Columns = append(table.Columns, catalog.ColumnInfo{
				Name:    c.Name,
				Type:    c.Type,
				Comment: c.Comment,
			})
		}
		tables = append(tables, table)
	}

	return tables, nil
}

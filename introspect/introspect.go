package introspect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"doclint/catalog"
	"doclint/database"
)

// DiscoverSchema fetches every base table in the given schema together
// with its table and column comments, producing the snapshot the
// validator consumes. The validator itself never touches the database;
// this is the only place catalog metadata is read.
func DiscoverSchema(ctx context.Context, schemaName string) ([]catalog.TableInfo, error) {
	pool, err := database.GetPool()
	if err != nil {
		return nil, fmt.Errorf("unable to get connection pool: %v", err)
	}

	var catalogName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&catalogName); err != nil {
		return nil, fmt.Errorf("querying current database: %v", err)
	}

	tablesQuery := `
	SELECT c.relname, obj_description(c.oid, 'pg_class')
	FROM pg_class c
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relkind = 'r'
	ORDER BY c.relname;
	`

	rows, err := pool.Query(ctx, tablesQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %v", err)
	}
	defer rows.Close()

	var tables []catalog.TableInfo
	for rows.Next() {
		var tableName string
		var comment *string
		if err := rows.Scan(&tableName, &comment); err != nil {
			return nil, fmt.Errorf("scanning table row: %v", err)
		}
		tables = append(tables, catalog.TableInfo{
			Catalog: catalogName,
			Schema:  schemaName,
			Name:    tableName,
			Comment: comment,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating table rows: %v", rows.Err())
	}

	for i := range tables {
		columns, err := getColumns(ctx, pool, schemaName, tables[i].Name)
		if err != nil {
			return nil, fmt.Errorf("getting columns for table %s: %v", tables[i].Name, err)
		}
		tables[i].Columns = columns
	}

	return tables, nil
}

func getColumns(ctx context.Context, pool *pgxpool.Pool, schemaName, tableName string) ([]catalog.ColumnInfo, error) {
	columnsQuery := `
	SELECT a.attname,
	       format_type(a.atttypid, a.atttypmod),
	       col_description(a.attrelid, a.attnum)
	FROM pg_attribute a
	JOIN pg_class c ON c.oid = a.attrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relname = $2
	  AND a.attnum > 0 AND NOT a.attisdropped
	ORDER BY a.attnum;
	`

	rows, err := pool.Query(ctx, columnsQuery, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %v", err)
	}
	defer rows.Close()

	var columns []catalog.ColumnInfo
	for rows.Next() {
		var col catalog.ColumnInfo
		if err := rows.Scan(&col.Name, &col.Type, &col.Comment); err != nil {
			return nil, fmt.Errorf("scanning column row: %v", err)
		}
		columns = append(columns, col)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating column rows: %v", rows.Err())
	}

	return columns, nil
}

package database

import (
	"embed"
	"fmt"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaKind selects which part of the schema to emit
type SchemaKind string

const (
	// SchemaFull is the complete schema with tables and indexes
	SchemaFull SchemaKind = "full"
	// SchemaTables is tables only, for bulk loading
	SchemaTables SchemaKind = "tables"
	// SchemaIndexes is indexes only, run after a bulk load
	SchemaIndexes SchemaKind = "indexes"
)

// Schema returns the embedded SQL for the given kind
func Schema(kind SchemaKind) (string, error) {
	var filename string
	switch kind {
	case SchemaFull:
		filename = "schema/schema.sql"
	case SchemaTables:
		filename = "schema/schema_no_indexes.sql"
	case SchemaIndexes:
		filename = "schema/schema_indexes.sql"
	default:
		return "", fmt.Errorf("unknown schema kind %q (valid: full, tables, indexes)", kind)
	}

	content, err := schemaFS.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	return string(content), nil
}

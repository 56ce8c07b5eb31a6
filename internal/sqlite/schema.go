package sqlite

// Schema DDL. Statements are idempotent so Attach can run them on every open.
const (
	createDocuments = `CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxDocumentsUpdated = `CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at);`
)

// schemaDDL lists the statements applied on Attach, in order.
var schemaDDL = []string{
	createDocuments,
	idxDocumentsUpdated,
}

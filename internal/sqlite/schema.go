package sqlite

// Schema DDL. seq records insertion order; report_id carries the identity
// and its UNIQUE constraint backs the duplicate check.
const (
	createReports = `CREATE TABLE reports (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    report_id TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    location TEXT NOT NULL,
    reported_at TEXT NOT NULL,
    category TEXT NOT NULL,
    reporter_id TEXT NOT NULL,
    resolved INTEGER NOT NULL DEFAULT 0
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createReports,
}

// reportColumns is the column list shared by every SELECT.
const reportColumns = "seq, report_id, description, location, reported_at, category, reporter_id, resolved"

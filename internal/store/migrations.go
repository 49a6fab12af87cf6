package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	description  TEXT,
	is_completed INTEGER NOT NULL DEFAULT 0 CHECK(is_completed IN (0, 1)),
	created_at   INTEGER NOT NULL,
	due_date     INTEGER,
	priority     INTEGER NOT NULL DEFAULT 2,
	category     TEXT
);

CREATE INDEX IF NOT EXISTS idx_todos_is_completed ON todos(is_completed);
CREATE INDEX IF NOT EXISTS idx_todos_priority ON todos(priority);
CREATE INDEX IF NOT EXISTS idx_todos_due_date ON todos(due_date);
CREATE INDEX IF NOT EXISTS idx_todos_created_at ON todos(created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS alerts (
	task_id  INTEGER PRIMARY KEY,
	id       TEXT NOT NULL,
	title    TEXT NOT NULL,
	message  TEXT NOT NULL,
	fired_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_alerts_fired_at ON alerts(fired_at);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}

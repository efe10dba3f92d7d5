package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Tables are created parents first because of foreign key references.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    nickname TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    site_role TEXT NOT NULL DEFAULT 'general',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    region TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'recruiting',
    description TEXT NOT NULL DEFAULT '',
    max_members INTEGER NOT NULL CHECK (max_members > 0),
    leader_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (leader_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS memberships (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    role TEXT NOT NULL,
    joined_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    UNIQUE (group_id, user_id),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS activities (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    title TEXT NOT NULL,
    starts_at INTEGER NOT NULL,
    ends_at INTEGER NOT NULL DEFAULT 0,
    location TEXT NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    fee INTEGER NOT NULL DEFAULT 0 CHECK (fee >= 0),
    created_by TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS attendance (
    activity_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    intent TEXT NOT NULL DEFAULT 'UNDECIDED',
    actual TEXT NOT NULL DEFAULT 'UNCHECKED',
    checked_by TEXT,
    checked_at INTEGER,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (activity_id, user_id),
    FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (checked_by) REFERENCES users(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    amount INTEGER NOT NULL,
    description TEXT NOT NULL,
    actor_id TEXT,
    recorded_at INTEGER NOT NULL,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    FOREIGN KEY (actor_id) REFERENCES users(id) ON DELETE SET NULL
);

-- Only the actor reference may change, and only by the ON DELETE SET NULL action.
CREATE TRIGGER IF NOT EXISTS trg_ledger_entries_append_only
BEFORE UPDATE ON ledger_entries
WHEN NEW.amount IS NOT OLD.amount
  OR NEW.description IS NOT OLD.description
  OR NEW.group_id IS NOT OLD.group_id
  OR NEW.recorded_at IS NOT OLD.recorded_at
  OR NEW.actor_id IS NOT NULL AND NEW.actor_id IS NOT OLD.actor_id
BEGIN
    SELECT RAISE(ABORT, 'ledger entries are append-only');
END;

DROP INDEX IF EXISTS idx_groups_active_name;
CREATE UNIQUE INDEX IF NOT EXISTS idx_groups_active_folded_name ON groups(fold_case(name)) WHERE status <> 'closed';
CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_one_leader ON memberships(group_id) WHERE role = 'LEADER';
CREATE INDEX IF NOT EXISTS idx_memberships_user_id ON memberships(user_id);
CREATE INDEX IF NOT EXISTS idx_activities_group_starts ON activities(group_id, starts_at);
CREATE INDEX IF NOT EXISTS idx_attendance_user_id ON attendance(user_id);
CREATE INDEX IF NOT EXISTS idx_ledger_entries_group_id ON ledger_entries(group_id, recorded_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

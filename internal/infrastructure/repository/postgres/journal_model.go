package postgres

import "time"

type journalTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	Action     string    `db:"action"`
	Resource   string    `db:"resource"`
	ResourceID string    `db:"resource_id"`
	Summary    string    `db:"summary"`
	Outcome    string    `db:"outcome"`
	CreatedAt  time.Time `db:"created_at"`
}

type journalInsertModel struct {
	PublicID   string    `db:"public_id"`
	Action     string    `db:"action"`
	Resource   string    `db:"resource"`
	ResourceID string    `db:"resource_id"`
	Summary    string    `db:"summary"`
	Outcome    string    `db:"outcome"`
	CreatedAt  time.Time `db:"created_at"`
}

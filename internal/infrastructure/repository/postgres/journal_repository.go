package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/phl-league/internal/domain/journal"
	qb "github.com/riskibarqy/phl-league/internal/platform/querybuilder"
)

const journalTable = "admin_journal"

type JournalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Append(ctx context.Context, entry journal.Entry) error {
	insertModel := journalInsertModel{
		PublicID:   entry.ID,
		Action:     string(entry.Action),
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Summary:    entry.Summary,
		Outcome:    string(entry.Outcome),
		CreatedAt:  entry.CreatedAt.UTC(),
	}
	query, args, err := qb.InsertModel(journalTable, insertModel, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert journal entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) List(ctx context.Context, query journal.Query) ([]journal.Entry, error) {
	var resourceCond qb.Condition
	if query.Resource != "" {
		resourceCond = qb.Eq("resource", query.Resource)
	}
	builder := qb.Select("*").From(journalTable).
		Where(resourceCond).
		OrderBy("created_at DESC", "id DESC")
	if query.Limit > 0 {
		builder = builder.Limit(query.Limit)
	}
	sqlQuery, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select journal query: %w", err)
	}

	var rows []journalTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select journal entries: %w", err)
	}

	out := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, journal.Entry{
			ID:         row.PublicID,
			Action:     journal.Action(row.Action),
			Resource:   row.Resource,
			ResourceID: row.ResourceID,
			Summary:    row.Summary,
			Outcome:    journal.Outcome(row.Outcome),
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *JournalRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := qb.DeleteFrom(journalTable).
		Where(qb.Lt("created_at", cutoff.UTC())).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete journal query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete journal entries: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected delete journal entries: %w", err)
	}
	return affected, nil
}

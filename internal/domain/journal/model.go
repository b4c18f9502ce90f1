package journal

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

const (
	ResourceTeam        = "team"
	ResourceMatch       = "match"
	ResourceChampion    = "champion"
	ResourceLeague      = "league"
	ResourceRegulations = "regulations"
	ResourceSocialLink  = "social_link"
	ResourcePlayer      = "player"
	ResourcePlayerStats = "player_stats"
	ResourceImage       = "image"
)

type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeFailed Outcome = "failed"
)

// Entry is one admin mutation forwarded to the league backend.
type Entry struct {
	ID         string
	Action     Action
	Resource   string
	ResourceID string
	Summary    string
	Outcome    Outcome
	CreatedAt  time.Time
}

type Query struct {
	Resource string
	Limit    int
}

// Repository stores the admin action journal.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, query Query) ([]Entry, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

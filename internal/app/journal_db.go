package app

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	journalPingTimeout   = 5 * time.Second
	maxTracedQueryLength = 512
)

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// journalDSN is DB_URL prepared for the admin journal connection.
type journalDSN struct {
	URL  string
	Name string
}

func parseJournalDSN(raw string, disablePreparedBinaryResult bool) journalDSN {
	dsn := strings.TrimSpace(raw)
	if disablePreparedBinaryResult {
		dsn = withPreparedBinaryDisabled(dsn)
	}
	return journalDSN{URL: dsn, Name: journalDBName(dsn)}
}

// Keyword DSNs ("host=... dbname=...") have no query string to extend and are left alone.
func withPreparedBinaryDisabled(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return dsn
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return dsn
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func journalDBName(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(dsn) {
		value, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}
	return ""
}

// traceFormatter tags every traced statement with the journal database name.
func (d journalDSN) traceFormatter() func(string) string {
	tag := "/* admin journal */ "
	if d.Name != "" {
		tag = "/* admin journal@" + d.Name + " */ "
	}
	return func(query string) string {
		query = strings.TrimSpace(query)
		if query == "" {
			return query
		}
		return tag + truncateQuery(queryWhitespaceRegex.ReplaceAllString(query, " "))
	}
}

// truncateQuery cuts on a rune boundary.
func truncateQuery(query string) string {
	if len(query) <= maxTracedQueryLength {
		return query
	}
	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}

func openJournalDB(ctx context.Context, dsn journalDSN) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", dsn.URL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dsn.Name),
		otelsql.WithQueryFormatter(dsn.traceFormatter()),
	)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, journalPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping journal db: %w", err)
	}
	return db, nil
}

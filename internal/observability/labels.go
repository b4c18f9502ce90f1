package observability

import (
	"net/url"
	"sort"
	"strings"

	"github.com/riskibarqy/phl-league/internal/config"
	"go.opentelemetry.io/otel/attribute"
)

// serviceLabels describes this deployment for traces and profiles alike.
func serviceLabels(cfg config.Config) map[string]string {
	labels := map[string]string{
		"service":        cfg.ServiceName,
		"version":        cfg.ServiceVersion,
		"env":            cfg.AppEnv,
		"journal_driver": cfg.JournalDriver,
	}

	codes := make([]string, 0, len(cfg.Profile.Divisions))
	for _, division := range cfg.Profile.Divisions {
		codes = append(codes, division.Code)
	}
	if len(codes) > 0 {
		labels["divisions"] = strings.Join(codes, ",")
	}
	if parsed, err := url.Parse(cfg.LeagueAPIBaseURL); err == nil && parsed.Host != "" {
		labels["league_backend"] = parsed.Host
	}

	for key, value := range labels {
		if strings.TrimSpace(value) == "" {
			delete(labels, key)
		}
	}
	return labels
}

// leagueResourceAttributes carries the labels uptrace has no dedicated option for.
func leagueResourceAttributes(cfg config.Config) []attribute.KeyValue {
	labels := serviceLabels(cfg)
	keys := make([]string, 0, len(labels))
	for key := range labels {
		switch key {
		case "service", "version", "env":
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, attribute.String("phl."+key, labels[key]))
	}
	return attrs
}

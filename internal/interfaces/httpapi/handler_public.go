package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, leagueInfoToDTO(ctx, h.leagueService.Info(ctx)))
}

func (h *Handler) GetRegulations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRegulations")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, regulationsDTO{Content: h.leagueService.Regulations(ctx).Content})
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, divisionsToDTO(ctx, h.profile))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	division := strings.TrimSpace(r.URL.Query().Get("division"))
	teams, err := h.standingsService.Teams(ctx, division)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	tables := h.standingsService.Tables(ctx)
	items := make([]standingsTableDTO, 0, len(tables))
	for _, table := range tables {
		items = append(items, standingsTableToDTO(ctx, table))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	division := r.PathValue("division")
	table, err := h.standingsService.Table(ctx, division)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsTableToDTO(ctx, table))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := r.URL.Query().Get("status")
	views, err := h.scheduleService.Matches(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(views))
	for _, view := range views {
		items = append(items, matchToDTO(ctx, view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchStatuses")
	defer span.End()

	statuses := h.scheduleService.Statuses(ctx)
	items := make([]matchStatusDTO, 0, len(statuses))
	for _, item := range statuses {
		items = append(items, matchStatusDTO{Status: item.Status, Category: string(item.Category), Badge: item.Badge})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampions")
	defer span.End()

	views := h.scheduleService.Champions(ctx)
	items := make([]championDTO, 0, len(views))
	for _, view := range views {
		items = append(items, championToDTO(ctx, view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := r.URL.Query().Get("division")
	views, err := h.playerService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "division", filter, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(ctx, views))
}

func (h *Handler) ListLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboards")
	defer span.End()

	limit, err := queryLimit(r, -1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	filter := r.URL.Query().Get("division")
	boards, err := h.playerService.Leaderboards(ctx, filter, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboards failed", "division", filter, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardDTO, 0, len(boards))
	for _, board := range boards {
		items = append(items, leaderboardToDTO(ctx, board))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	limit, err := queryLimit(r, -1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	stat := r.PathValue("stat")
	filter := r.URL.Query().Get("division")
	board, err := h.playerService.Leaderboard(ctx, stat, filter, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "stat", stat, "division", filter, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(ctx, board))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(ctx, h.leagueService.Overview(ctx)))
}

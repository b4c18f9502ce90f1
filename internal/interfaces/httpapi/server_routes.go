package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/league", handler.GetLeague)
	mux.HandleFunc("GET /v1/league/regulations", handler.GetRegulations)
	mux.HandleFunc("GET /v1/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/{division}", handler.GetStandings)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/match-statuses", handler.ListMatchStatuses)
	mux.HandleFunc("GET /v1/champions", handler.ListChampions)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/leaderboards", handler.ListLeaderboards)
	mux.HandleFunc("GET /v1/leaderboards/{stat}", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
}

func registerPreferenceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/preferences", handler.GetPreferences)
	mux.HandleFunc("PUT /v1/preferences", handler.PutPreferences)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier AdminVerifier) {
	mux.HandleFunc("POST /v1/admin/session", handler.CreateAdminSession)
	mux.Handle("DELETE /v1/admin/session", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteAdminSession)))

	registerAdminMutationRoutes(mux, handler, verifier)
	registerAdminOperationRoutes(mux, handler, verifier)
}

func registerAdminMutationRoutes(mux *http.ServeMux, handler *Handler, verifier AdminVerifier) {
	mux.Handle("POST /v1/admin/teams", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/admin/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/admin/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/admin/matches", RequireAdmin(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT /v1/admin/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/admin/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/admin/champions", RequireAdmin(verifier, http.HandlerFunc(handler.CreateChampion)))
	mux.Handle("DELETE /v1/admin/champions/{championID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteChampion)))
	mux.Handle("PUT /v1/admin/league", RequireAdmin(verifier, http.HandlerFunc(handler.SaveLeagueInfo)))
	mux.Handle("PUT /v1/admin/regulations", RequireAdmin(verifier, http.HandlerFunc(handler.SaveRegulations)))
	mux.Handle("POST /v1/admin/social-links", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSocialLink)))
	mux.Handle("DELETE /v1/admin/social-links/{linkID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteSocialLink)))
	mux.Handle("POST /v1/admin/players", RequireAdmin(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/admin/players/{playerID}/stats", RequireAdmin(verifier, http.HandlerFunc(handler.UpdatePlayerStats)))
	mux.Handle("POST /v1/admin/images", RequireAdmin(verifier, http.HandlerFunc(handler.UploadImage)))
}

func registerAdminOperationRoutes(mux *http.ServeMux, handler *Handler, verifier AdminVerifier) {
	mux.Handle("POST /v1/admin/refresh", RequireAdmin(verifier, http.HandlerFunc(handler.RefreshSnapshot)))
	mux.Handle("GET /v1/admin/standings/{division}", RequireAdmin(verifier, http.HandlerFunc(handler.GetAdminStandings)))
	mux.Handle("GET /v1/admin/journal", RequireAdmin(verifier, http.HandlerFunc(handler.ListJournal)))
}

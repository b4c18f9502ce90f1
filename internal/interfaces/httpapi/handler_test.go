package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/phl-league/internal/mocks/usecase"
	"github.com/riskibarqy/phl-league/internal/platform/cache"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/riskibarqy/phl-league/internal/usecase"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "puck-drop"

type staticRecords struct {
	snap *snapshot.Snapshot
}

func (s staticRecords) Current() *snapshot.Snapshot {
	return s.snap
}

type readinessStub struct {
	ready  bool
	status usecase.SnapshotStatus
}

func (s readinessStub) IsReady() bool                  { return s.ready }
func (s readinessStub) Status() usecase.SnapshotStatus { return s.status }

type refresherStub struct {
	calls   int
	summary snapshot.Summary
}

func (r *refresherStub) Refresh(context.Context) (snapshot.Summary, error) {
	r.calls++
	return r.summary, nil
}

type testEnvelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type routerFixture struct {
	router    http.Handler
	backend   *usecasemock.LeagueBackend
	refresher *refresherStub
}

func strPtr(v string) *string {
	return &v
}

func fixtureSnapshot() *snapshot.Snapshot {
	snap := snapshot.Empty()
	snap.Generation = 7
	snap.FetchedAt = time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
	snap.Teams = []team.Team{
		{ID: 1, Name: "A", Division: team.DivisionPHL, Points: 10, Wins: 3, WinsOT: 1, GoalsFor: 20, GoalsAgainst: 15, LogoURL: strPtr("https://cdn/a.png")},
		{ID: 2, Name: "B", Division: team.DivisionPHL, Points: 10, GoalsFor: 18, GoalsAgainst: 10},
		{ID: 3, Name: "C", Division: team.DivisionPHL, Points: 12, GoalsFor: 5, GoalsAgainst: 5},
		{ID: 4, Name: "D", Division: team.DivisionVHL, Points: 1},
	}
	snap.Matches = []match.Match{
		{ID: 1, MatchDate: "2025-02-01T19:00", HomeTeamID: 1, AwayTeamID: 2, HomeTeamName: "A", AwayTeamName: "B", Status: match.StatusFinished, HomeScore: 3, AwayScore: 1},
		{ID: 2, MatchDate: "2025-02-20T19:00", HomeTeamID: 3, AwayTeamID: 99, HomeTeamName: "C", AwayTeamName: "Gone", Status: "Перенесён", HomeScore: 2},
		{ID: 3, MatchDate: "2025-03-01T19:00", HomeTeamID: 2, AwayTeamID: 4, HomeTeamName: "B", AwayTeamName: "D", Status: match.StatusNotStarted, HomeScore: 5, AwayScore: 2},
	}
	snap.Champions = []champion.Champion{{ID: 1, Season: "2023-2024", TeamID: 1, TeamName: "A (old)"}}
	snap.Info = league.Info{Name: "ПХЛ"}
	return snap
}

func newRouterFixture(t *testing.T, ready bool) routerFixture {
	t.Helper()

	logger := logging.NewNop()
	profile := league.DefaultProfile()
	records := staticRecords{snap: fixtureSnapshot()}
	backend := usecasemock.NewLeagueBackend(t)
	refresher := &refresherStub{summary: snapshot.Summary{Generation: 8, Teams: 4}}

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	players := usecase.NewPlayerService(backend, records, profile, cache.NewStore[[]player.Player](time.Minute), logger)
	journalRepo := memory.NewJournalRepository(10)
	auth := usecase.NewAuthService(hash, cache.NewStore[usecase.AdminSession](time.Hour), nil, logger)

	handler := NewHandler(HandlerConfig{
		League:    usecase.NewLeagueService(records, players, profile, logger),
		Standings: usecase.NewStandingsService(records, profile),
		Schedule:  usecase.NewScheduleService(records),
		Players:   players,
		Admin: usecase.NewAdminService(usecase.AdminServiceConfig{
			Backend:   backend,
			Records:   records,
			Refresher: refresher,
			Players:   players,
			Journal:   journalRepo,
			Profile:   profile,
			Logger:    logger,
		}),
		Auth:        auth,
		Journal:     usecase.NewJournalService(journalRepo, 0, clockwork.NewFakeClock(), logger),
		Preferences: usecase.NewPreferenceService(memory.NewPreferenceRepository()),
		Readiness:   readinessStub{ready: ready, status: usecase.SnapshotStatus{Generation: 7}},
		Profile:     profile,
		Logger:      logger,
	})

	router := NewRouter(RouterConfig{
		Handler:            handler,
		Verifier:           auth,
		Logger:             logger,
		CORSAllowedOrigins: []string{"*"},
	})
	return routerFixture{router: router, backend: backend, refresher: refresher}
}

func (f routerFixture) do(t *testing.T, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f routerFixture) login(t *testing.T) string {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/v1/admin/session", `{"password":"`+testAdminPassword+`"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("login: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var out testEnvelope[sessionDTO]
	decodeBody(t, rec, &out)
	if out.Data.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return out.Data.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := sonic.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("unmarshal response body: %v (%s)", err, rec.Body.String())
	}
}

func TestRouter_PublicStandingsFoldOvertimeWins(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	rec := f.do(t, http.MethodGet, "/v1/standings/"+url.PathEscape(team.DivisionPHL), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out testEnvelope[standingsTableDTO]
	decodeBody(t, rec, &out)
	if len(out.Data.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out.Data.Rows))
	}
	names := []string{out.Data.Rows[0].TeamName, out.Data.Rows[1].TeamName, out.Data.Rows[2].TeamName}
	if strings.Join(names, ",") != "C,B,A" {
		t.Fatalf("unexpected order: %v", names)
	}
	if out.Data.Rows[2].Wins != 4 {
		t.Fatalf("expected folded wins=4 for A, got %d", out.Data.Rows[2].Wins)
	}
}

func TestRouter_UnknownDivisionIsNotFound(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	rec := f.do(t, http.MethodGet, "/v1/standings/nowhere", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_MatchesJoinTeamsAndHideUnstartedScores(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	rec := f.do(t, http.MethodGet, "/v1/matches", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out testEnvelope[[]matchDTO]
	decodeBody(t, rec, &out)
	if len(out.Data) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(out.Data))
	}
	finished, postponed, upcoming := out.Data[0], out.Data[1], out.Data[2]
	if finished.Category != string(match.CategoryFinished) || finished.HomeScore != 3 {
		t.Fatalf("unexpected finished match: %+v", finished)
	}
	if finished.Home.LogoURL == nil || *finished.Home.LogoURL != "https://cdn/a.png" {
		t.Fatalf("home logo not joined by id: %+v", finished.Home)
	}
	if postponed.Category != string(match.CategoryDefault) {
		t.Fatalf("unknown status should fall back to default, got %q", postponed.Category)
	}
	if !postponed.Started || postponed.HomeScore != 2 {
		t.Fatalf("unknown status should keep its score, got %+v", postponed)
	}
	if postponed.Away.Known || postponed.Away.Name != "Gone" {
		t.Fatalf("missing away team should keep denormalized name: %+v", postponed.Away)
	}
	if upcoming.Category != string(match.CategoryNeutral) || upcoming.Started {
		t.Fatalf("unexpected upcoming match: %+v", upcoming)
	}
	if upcoming.HomeScore != 0 || upcoming.AwayScore != 0 {
		t.Fatalf("score of unstarted match should be hidden, got %d:%d", upcoming.HomeScore, upcoming.AwayScore)
	}
}

func TestRouter_LeaderboardQueriesBackendOnceAndRanks(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	f.backend.On("ListPlayers", mock.Anything, "").Return([]player.Player{
		{ID: 1, Nickname: "low", Goals: 1, Assists: 9, TeamName: "A"},
		{ID: 2, Nickname: "high", Goals: 5, Assists: 0, TeamName: "B"},
	}, nil).Once()

	rec := f.do(t, http.MethodGet, "/v1/leaderboards/goals?division=all&limit=0", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out testEnvelope[leaderboardDTO]
	decodeBody(t, rec, &out)
	if len(out.Data.Players) != 2 || out.Data.Players[0].Nickname != "high" {
		t.Fatalf("unexpected goals ranking: %+v", out.Data.Players)
	}
	if out.Data.Players[1].Points != 10 {
		t.Fatalf("expected derived points=10, got %d", out.Data.Players[1].Points)
	}

	// served from cache
	rec = f.do(t, http.MethodGet, "/v1/leaderboards/assists?division=all", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from cache, got %d", rec.Code)
	}
}

func TestRouter_BackendFailureReturnsGenericUnavailable(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	f.backend.On("ListPlayers", mock.Anything, "A").
		Return(nil, fmt.Errorf("%w: GET https://backend.internal/players: timeout", usecase.ErrDependencyUnavailable)).Once()

	rec := f.do(t, http.MethodGet, "/v1/players?division=A", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "backend.internal") {
		t.Fatalf("backend url leaked: %s", rec.Body.String())
	}
}

func TestRouter_Readiness(t *testing.T) {
	t.Parallel()

	if rec := newRouterFixture(t, false).do(t, http.MethodGet, "/readyz", "", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first snapshot, got %d", rec.Code)
	}
	if rec := newRouterFixture(t, true).do(t, http.MethodGet, "/readyz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", rec.Code)
	}
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	rec := f.do(t, http.MethodPost, "/v1/admin/teams", `{"name":"X","division":"ПХЛ"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/v1/admin/teams", `{"name":"X","division":"ПХЛ"}`, map[string]string{adminTokenHeader: "forged"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/v1/admin/session", `{"password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
}

func TestRouter_AdminUpdateTeamRefreshesAndJournals(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	token := f.login(t)
	headers := map[string]string{adminTokenHeader: token}

	f.backend.On("UpdateTeam", mock.Anything, mock.MatchedBy(func(item team.Team) bool {
		return item.ID == 3 && item.Name == "C" && item.Points == 14 && item.LogoURL == nil
	})).Return(nil).Once()

	body := `{"name":" C ","division":"ПХЛ","games_played":7,"wins":7,"points":14,"logo_url":"  "}`
	rec := f.do(t, http.MethodPut, "/v1/admin/teams/3", body, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out testEnvelope[mutationResultDTO]
	decodeBody(t, rec, &out)
	if !out.Data.Refreshed || out.Data.Snapshot.Generation != 8 {
		t.Fatalf("unexpected mutation result: %+v", out.Data)
	}
	if f.refresher.calls != 1 {
		t.Fatalf("expected one refresh, got %d", f.refresher.calls)
	}

	rec = f.do(t, http.MethodGet, "/v1/admin/journal?resource=team", "", headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("journal: expected 200, got %d", rec.Code)
	}
	var entries testEnvelope[[]journalEntryDTO]
	decodeBody(t, rec, &entries)
	if len(entries.Data) != 1 || entries.Data[0].ResourceID != "3" || entries.Data[0].Outcome != "ok" {
		t.Fatalf("unexpected journal: %+v", entries.Data)
	}
}

func TestRouter_AdminValidationRejectsBeforeBackend(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	headers := map[string]string{adminTokenHeader: f.login(t)}

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "same teams", method: http.MethodPost, target: "/v1/admin/matches", body: `{"match_date":"2025-03-01","home_team_id":1,"away_team_id":1}`},
		{name: "unknown field", method: http.MethodPost, target: "/v1/admin/teams", body: `{"name":"X","division":"ПХЛ","captain":"me"}`},
		{name: "bad logo url", method: http.MethodPost, target: "/v1/admin/teams", body: `{"name":"X","division":"ПХЛ","logo_url":"not a url"}`},
		{name: "bad path id", method: http.MethodDelete, target: "/v1/admin/teams/abc"},
		{name: "empty body", method: http.MethodPut, target: "/v1/admin/regulations"},
		{name: "jersey out of range", method: http.MethodPost, target: "/v1/admin/players", body: `{"team_id":1,"nickname":"n","jersey_number":100,"position":"Нападающий"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.target, tt.body, headers)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_AdminImageUploadMultipart(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	token := f.login(t)
	f.backend.On("UploadImage", mock.Anything, mock.MatchedBy(func(dataURL string) bool {
		return strings.HasPrefix(dataURL, "data:image/png;base64,")
	})).Return("https://cdn/logo.png", nil).Once()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"))
	_ = form.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/images", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set(adminTokenHeader, token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var out testEnvelope[map[string]string]
	decodeBody(t, rec, &out)
	if out.Data["url"] != "https://cdn/logo.png" {
		t.Fatalf("unexpected url: %v", out.Data)
	}
}

func TestRouter_AdminLogoutRevokesToken(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	headers := map[string]string{adminTokenHeader: f.login(t)}

	if rec := f.do(t, http.MethodDelete, "/v1/admin/session", "", headers); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/v1/admin/refresh", "", headers); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestRouter_AdminStandingsSplitWins(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	headers := map[string]string{adminTokenHeader: f.login(t)}

	rec := f.do(t, http.MethodGet, "/v1/admin/standings/"+url.PathEscape(team.DivisionPHL), "", headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out testEnvelope[adminStandingsTableDTO]
	decodeBody(t, rec, &out)
	last := out.Data.Rows[len(out.Data.Rows)-1]
	if last.TeamName != "A" || last.Wins != 3 || last.WinsOT != 1 {
		t.Fatalf("expected split wins for A, got %+v", last)
	}
}

func TestRouter_PreferencesByClientID(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, true)
	client := map[string]string{clientIDHeader: "browser-1"}

	rec := f.do(t, http.MethodGet, "/v1/preferences", "", client)
	var got testEnvelope[preferencesDTO]
	decodeBody(t, rec, &got)
	if rec.Code != http.StatusOK || got.Data.Theme != "light" {
		t.Fatalf("expected default light theme, got %d %+v", rec.Code, got.Data)
	}

	if rec := f.do(t, http.MethodPut, "/v1/preferences", `{"theme":"Dark"}`, client); rec.Code != http.StatusOK {
		t.Fatalf("put: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = f.do(t, http.MethodGet, "/v1/preferences", "", client)
	decodeBody(t, rec, &got)
	if got.Data.Theme != "dark" {
		t.Fatalf("expected dark, got %q", got.Data.Theme)
	}

	if rec := f.do(t, http.MethodGet, "/v1/preferences", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without client id, got %d", rec.Code)
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/league", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

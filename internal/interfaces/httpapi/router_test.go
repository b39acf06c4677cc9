package httpapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"

	"github.com/riskibarqy/football-portal/internal/domain/upstream"
	"github.com/riskibarqy/football-portal/internal/domain/user"
	"github.com/riskibarqy/football-portal/internal/infrastructure/auth"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-portal/internal/platform/cache"
	"github.com/riskibarqy/football-portal/internal/platform/id"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

const testJWTSecret = "router-test-secret-with-enough-length"

type stubProvider struct {
	byDate map[string][]upstream.Fixture
	err    error

	mu    sync.Mutex
	dates []string
}

func (p *stubProvider) Fixtures(_ context.Context, q upstream.FixtureQuery) ([]upstream.Fixture, error) {
	p.mu.Lock()
	p.dates = append(p.dates, q.Date)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.byDate[q.Date], nil
}

func (p *stubProvider) Leagues(context.Context, upstream.LeagueQuery) ([]upstream.LeagueEntry, error) {
	return nil, p.err
}

func (p *stubProvider) Standings(context.Context, int64, int) ([]upstream.StandingsEntry, error) {
	return nil, p.err
}

func (p *stubProvider) TopScorers(context.Context, int64, int) ([]upstream.ScorerEntry, error) {
	return nil, p.err
}

func (p *stubProvider) Status(context.Context) (upstream.AccountStatus, error) {
	return upstream.AccountStatus{}, p.err
}

type routeObserver struct {
	mu     sync.Mutex
	routes []string
}

func (o *routeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	o.routes = append(o.routes, method+" "+route)
	o.mu.Unlock()
}

type routerFixture struct {
	router   http.Handler
	provider *stubProvider
	users    *memory.UserRepository
	issuer   *auth.JWTIssuer
	observer *routeObserver
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	provider := &stubProvider{byDate: map[string][]upstream.Fixture{}}
	idGen := id.NewUUIDGenerator()
	competitions := memory.NewCompetitionRepository(memory.SeedCompetitions())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	matches := memory.NewMatchRepository(memory.SeedMatches())
	transfers := memory.NewTransferRepository(memory.SeedTransfers())
	articles := memory.NewNewsRepository(memory.SeedNews())
	users := memory.NewUserRepository(nil)

	issuer, err := auth.NewJWTIssuer(testJWTSecret, time.Hour, "football-portal-test")
	if err != nil {
		t.Fatalf("new jwt issuer: %v", err)
	}
	logger := logging.NewNop()
	authService := usecase.NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), issuer, idGen)

	handler := NewHandler(Services{
		Feed: usecase.NewFeedService(
			provider,
			cache.NewStore(5*time.Minute),
			matches,
			teams,
			competitions,
			usecase.DefaultFeedConfig(),
			logger,
			nil,
		),
		Auth:         authService,
		Competitions: usecase.NewCompetitionService(competitions, idGen),
		Teams:        usecase.NewTeamService(teams, competitions, idGen),
		Players:      usecase.NewPlayerService(players, teams, idGen),
		Matches:      usecase.NewMatchService(matches, teams, competitions, idGen),
		Transfers:    usecase.NewTransferService(transfers, players, idGen),
		News:         usecase.NewNewsService(articles, idGen, logger),
		Users:        usecase.NewUserService(users),
	}, logger)

	observer := &routeObserver{}
	router := NewRouter(handler, authService, logger, RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		Metrics:            http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("# metrics\n")) }),
		Observer:           observer,
	})

	return &routerFixture{router: router, provider: provider, users: users, issuer: issuer, observer: observer}
}

func (f *routerFixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) tokenFor(t *testing.T, role user.Role) string {
	t.Helper()

	u := user.User{
		ID:        "user-" + string(role),
		Email:     string(role) + "@portal.test",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
		Role:      role,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, _, err := f.issuer.Issue(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return body.Data
}

func TestRouter_RegisterLoginAndMe(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/auth/register",
		`{"email":"Fan@Portal.test","password":"secret123","firstName":"Ana","lastName":"Silva"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	registered := decodeData[usecase.AuthResult](t, rec)
	if registered.Token == "" || registered.User.ID == "" {
		t.Fatalf("expected token and user id, got %+v", registered)
	}
	if registered.User.Email != "fan@portal.test" || registered.User.FirstName != "Ana" {
		t.Fatalf("unexpected profile %+v", registered.User)
	}

	rec = f.do(t, http.MethodPost, "/v1/auth/register",
		`{"email":"fan@portal.test","password":"another1","firstName":"A","lastName":"B"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/v1/auth/login", `{"email":"fan@portal.test","password":"wrong-pass"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/v1/auth/login", `{"email":"fan@portal.test","password":"secret123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	loggedIn := decodeData[usecase.AuthResult](t, rec)

	rec = f.do(t, http.MethodGet, "/v1/auth/me", "", loggedIn.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	if profile := decodeData[user.Profile](t, rec); profile.ID != registered.User.ID {
		t.Fatalf("me returned %+v, want id %s", profile, registered.User.ID)
	}
}

func TestRouter_RegisterRejectsInvalidPayload(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "bad email", body: `{"email":"nope","password":"secret123","firstName":"A","lastName":"B"}`},
		{name: "short password", body: `{"email":"a@b.test","password":"123","firstName":"A","lastName":"B"}`},
		{name: "unknown field", body: `{"email":"a@b.test","password":"secret123","firstName":"A","lastName":"B","admin":true}`},
		{name: "malformed", body: `{"email":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/v1/auth/register", tt.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/v1/teams", `{"name":"X","shortName":"X"}`, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: expected 401, got %d", rec.Code)
	}

	userToken := f.tokenFor(t, user.RoleUser)
	rec = f.do(t, http.MethodGet, "/v1/users", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin users list: expected 403, got %d", rec.Code)
	}

	adminToken := f.tokenFor(t, user.RoleAdmin)
	rec = f.do(t, http.MethodGet, "/v1/users", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin users list: expected 200, got %d", rec.Code)
	}
	if got := decodeData[[]userDTO](t, rec); len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}

func TestRouter_TeamCRUD(t *testing.T) {
	f := newRouterFixture(t)
	token := f.tokenFor(t, user.RoleUser)

	rec := f.do(t, http.MethodPost, "/v1/teams",
		`{"name":"Portal United","shortName":"PRU","country":"England","founded":1901,"competitionId":"`+memory.CompetitionIDPremierLeague+`"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	created := decodeData[teamDTO](t, rec)
	if created.ID == "" || created.Name != "Portal United" {
		t.Fatalf("unexpected created team %+v", created)
	}

	rec = f.do(t, http.MethodPatch, "/v1/teams/"+created.ID, `{"stadium":"Portal Park"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update team: expected 200, got %d", rec.Code)
	}
	if updated := decodeData[teamDTO](t, rec); updated.Stadium != "Portal Park" || updated.Name != "Portal United" {
		t.Fatalf("patch should only change stadium, got %+v", updated)
	}

	rec = f.do(t, http.MethodDelete, "/v1/teams/"+created.ID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete team: expected 204, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/v1/teams/"+created.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted team: expected 404, got %d", rec.Code)
	}
}

func TestRouter_LiveMatchesFallsBackToLocal(t *testing.T) {
	f := newRouterFixture(t)
	f.provider.err = upstream.Unavailable(errors.New("dial tcp: timeout"), "fixtures live")

	rec := f.do(t, http.MethodGet, "/v1/matches/live", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when provider is down, got %d", rec.Code)
	}
	got := decodeData[map[string]any](t, rec)
	if got["source"] != "local" {
		t.Fatalf("expected local source, got %v", got["source"])
	}
	if _, ok := got["items"].([]any); !ok {
		t.Fatalf("expected items array, got %T", got["items"])
	}
}

func TestRouter_MatchesByDateRoutesToRange(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/matches/date?start=2026-03-01&end=2026-03-03", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	f.provider.mu.Lock()
	dates := strings.Join(f.provider.dates, ",")
	f.provider.mu.Unlock()
	for _, day := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		if !strings.Contains(dates, day) {
			t.Fatalf("expected %s to be fetched, fetched=%s", day, dates)
		}
	}

	got := decodeData[map[string]any](t, rec)
	if got["source"] != "external" {
		t.Fatalf("empty provider result is still external, got %v", got["source"])
	}
}

func TestRouter_CompetitionViews(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/competitions/abc/standings", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric league: expected 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/v1/competitions/39/fixtures", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown view: expected 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/v1/competitions/slug/premier-league-2025-2026", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("slug lookup: expected 200, got %d", rec.Code)
	}
	if got := decodeData[competitionDTO](t, rec); got.ID != memory.CompetitionIDPremierLeague {
		t.Fatalf("unexpected competition %+v", got)
	}
}

func TestRouter_RecordsRoutePattern(t *testing.T) {
	f := newRouterFixture(t)

	f.do(t, http.MethodGet, "/v1/teams/"+"missing-team", "", "")
	f.do(t, http.MethodGet, "/nowhere", "", "")
	rec := f.do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}

	f.observer.mu.Lock()
	defer f.observer.mu.Unlock()
	want := []string{"GET GET /v1/teams/{teamID}", "GET unmatched", "GET GET /metrics"}
	if len(f.observer.routes) != len(want) {
		t.Fatalf("expected %d observations, got %v", len(want), f.observer.routes)
	}
	for i := range want {
		if f.observer.routes[i] != want[i] {
			t.Fatalf("observation %d = %q, want %q", i, f.observer.routes[i], want[i])
		}
	}
}

package httpapi

import "net/http"

// handle registers h under pattern and records the pattern for request
// logging and metrics.
func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := routeInfoFromContext(r.Context()); info != nil {
			info.pattern = pattern
		}
		h.ServeHTTP(w, r)
	}))
}

func authed(verifier TokenVerifier, fn http.HandlerFunc) http.Handler {
	return RequireAuth(verifier, fn)
}

func adminOnly(verifier TokenVerifier, fn http.HandlerFunc) http.Handler {
	return RequireAuth(verifier, RequireAdmin(fn))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	handle(mux, "GET /healthz", http.HandlerFunc(handler.Healthz))
	if metrics != nil {
		handle(mux, "GET /metrics", metrics)
	}
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "POST /v1/auth/register", http.HandlerFunc(handler.Register))
	handle(mux, "POST /v1/auth/login", http.HandlerFunc(handler.Login))
	handle(mux, "GET /v1/auth/me", authed(verifier, handler.Me))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/matches", http.HandlerFunc(handler.ListMatches))
	handle(mux, "GET /v1/matches/live", http.HandlerFunc(handler.LiveMatches))
	handle(mux, "GET /v1/matches/featured", http.HandlerFunc(handler.FeaturedMatches))
	handle(mux, "GET /v1/matches/date", http.HandlerFunc(handler.MatchesByDate))
	handle(mux, "GET /v1/matches/range", http.HandlerFunc(handler.MatchesByRange))
	handle(mux, "GET /v1/matches/test-api", http.HandlerFunc(handler.ProviderStatus))
	handle(mux, "GET /v1/matches/team/{teamID}", http.HandlerFunc(handler.ListMatchesByTeam))
	handle(mux, "GET /v1/matches/{matchID}", http.HandlerFunc(handler.GetMatch))
	handle(mux, "POST /v1/matches", authed(verifier, handler.CreateMatch))
	handle(mux, "PATCH /v1/matches/{matchID}", authed(verifier, handler.UpdateMatch))
	handle(mux, "DELETE /v1/matches/{matchID}", authed(verifier, handler.DeleteMatch))
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/competitions", http.HandlerFunc(handler.ListCompetitions))
	handle(mux, "GET /v1/competitions/active", http.HandlerFunc(handler.ListActiveCompetitions))
	handle(mux, "GET /v1/competitions/external", http.HandlerFunc(handler.ListExternalCompetitions))
	handle(mux, "GET /v1/competitions/slug/{slug}", http.HandlerFunc(handler.GetCompetitionBySlug))
	handle(mux, "GET /v1/competitions/{competitionID}", http.HandlerFunc(handler.GetCompetition))
	handle(mux, "GET /v1/competitions/{competitionID}/{view}", http.HandlerFunc(handler.CompetitionView))
	handle(mux, "POST /v1/competitions", authed(verifier, handler.CreateCompetition))
	handle(mux, "PATCH /v1/competitions/{competitionID}", authed(verifier, handler.UpdateCompetition))
	handle(mux, "DELETE /v1/competitions/{competitionID}", authed(verifier, handler.DeleteCompetition))
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/teams", http.HandlerFunc(handler.ListTeams))
	handle(mux, "GET /v1/teams/search", http.HandlerFunc(handler.SearchTeams))
	handle(mux, "GET /v1/teams/competition/{competitionID}", http.HandlerFunc(handler.ListTeamsByCompetition))
	handle(mux, "GET /v1/teams/{teamID}", http.HandlerFunc(handler.GetTeam))
	handle(mux, "POST /v1/teams", authed(verifier, handler.CreateTeam))
	handle(mux, "PATCH /v1/teams/{teamID}", authed(verifier, handler.UpdateTeam))
	handle(mux, "DELETE /v1/teams/{teamID}", authed(verifier, handler.DeleteTeam))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/players", http.HandlerFunc(handler.ListPlayers))
	handle(mux, "GET /v1/players/search", http.HandlerFunc(handler.SearchPlayers))
	handle(mux, "GET /v1/players/top-value", http.HandlerFunc(handler.TopPlayersByValue))
	handle(mux, "GET /v1/players/team/{teamID}", http.HandlerFunc(handler.ListPlayersByTeam))
	handle(mux, "GET /v1/players/{playerID}", http.HandlerFunc(handler.GetPlayer))
	handle(mux, "POST /v1/players", authed(verifier, handler.CreatePlayer))
	handle(mux, "PATCH /v1/players/{playerID}", authed(verifier, handler.UpdatePlayer))
	handle(mux, "DELETE /v1/players/{playerID}", authed(verifier, handler.DeletePlayer))
}

func registerTransferRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/transfers", http.HandlerFunc(handler.ListTransfers))
	handle(mux, "GET /v1/transfers/top", http.HandlerFunc(handler.TopTransfers))
	handle(mux, "GET /v1/transfers/season/{season}", http.HandlerFunc(handler.ListTransfersBySeason))
	handle(mux, "GET /v1/transfers/player/{playerID}", http.HandlerFunc(handler.ListTransfersByPlayer))
	handle(mux, "GET /v1/transfers/{transferID}", http.HandlerFunc(handler.GetTransfer))
	handle(mux, "POST /v1/transfers", authed(verifier, handler.CreateTransfer))
	handle(mux, "PATCH /v1/transfers/{transferID}", authed(verifier, handler.UpdateTransfer))
	handle(mux, "DELETE /v1/transfers/{transferID}", authed(verifier, handler.DeleteTransfer))
}

func registerNewsRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/news", http.HandlerFunc(handler.ListNews))
	handle(mux, "GET /v1/news/search", http.HandlerFunc(handler.SearchNews))
	handle(mux, "GET /v1/news/category/{category}", http.HandlerFunc(handler.ListNewsByCategory))
	handle(mux, "GET /v1/news/slug/{slug}", http.HandlerFunc(handler.GetNewsBySlug))
	handle(mux, "GET /v1/news/{newsID}", http.HandlerFunc(handler.GetNews))
	handle(mux, "POST /v1/news", authed(verifier, handler.CreateNews))
	handle(mux, "PATCH /v1/news/{newsID}", authed(verifier, handler.UpdateNews))
	handle(mux, "DELETE /v1/news/{newsID}", authed(verifier, handler.DeleteNews))
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	handle(mux, "GET /v1/users", adminOnly(verifier, handler.ListUsers))
	handle(mux, "GET /v1/users/{userID}", adminOnly(verifier, handler.GetUser))
	handle(mux, "PATCH /v1/users/{userID}", adminOnly(verifier, handler.UpdateUser))
	handle(mux, "DELETE /v1/users/{userID}", adminOnly(verifier, handler.DeleteUser))
}

package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.RegisterPlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PATCH /v1/players/{playerID}/contact", handler.UpdatePlayerContact)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.RemovePlayer)
	mux.HandleFunc("POST /v1/players/{playerID}/check-in", handler.CheckInPlayer)
	mux.HandleFunc("POST /v1/players/{playerID}/check-out", handler.CheckOutPlayer)
}

func registerFormationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("POST /v1/lineup", handler.GenerateLineup)
}

func registerSuggestionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/suggestion", handler.GetPlayerSuggestion)
	mux.HandleFunc("GET /v1/players/{playerID}/suggestion/history", handler.GetPlayerSuggestionHistory)
	mux.HandleFunc("GET /v1/suggestions", handler.ListSuggestions)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players/{playerID}/match-reports", handler.RecordMatchReport)
	mux.HandleFunc("POST /v1/match-reports/import", handler.ImportMatchReports)
}

// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily root word.
//   - GET  /daily     → today's date key (UTC)
//   - POST /daily/new → start a game whose root is the same for every
//                       player today (HMAC of the date and DAILY_SALT)
//
// Daily games are ordinary sessions afterwards: /game/submit etc. apply.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordscramble/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":      daily.DateKey(time.Now()),
		"available": s.deps.Daily != nil,
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	if s.deps.Daily == nil {
		http.Error(w, `{"error":"daily_disabled"}`, http.StatusNotFound)
		return
	}
	s.startGame(w, r, s.deps.Daily, "daily")
}

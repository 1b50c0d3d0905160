// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Game endpoints: POST /game/new (issues a session token), then
//     GET /game, POST /game/submit, POST /game/restart (token required).
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - A rejected word is a normal outcome and answers 200 with the reason,
//     title and message; only transport problems use error status codes.
//   - Session mutations go through store.Update, one evaluation at a time.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// Deps are the collaborators the server needs.
type Deps struct {
	Store   store.Store
	Roots   game.RootProvider // random root per game
	Daily   game.RootProvider // same root for everyone today
	Checker game.SpellChecker
	Lang    language.Tag

	// WordStats reports (roots, dictionary words) for /debug/words.
	WordStats func() (roots int, dictionary int)
}

// Server bundles router, session store and word oracles.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	deps    Deps
	reg     *prometheus.Registry
	metrics *metrics
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, deps Deps) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		deps:    deps,
		reg:     reg,
		metrics: newMetrics(reg),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordscramble","endpoints":["/health","POST /game/new","GET /game","POST /game/submit","POST /game/restart","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		roots, dict := 0, 0
		if s.deps.WordStats != nil {
			roots, dict = s.deps.WordStats()
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"roots":      roots,
			"dictionary": dict,
			"language":   s.deps.Lang.String(),
		})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/game", s.handleState)
		r.Post("/game/submit", s.handleSubmit)
		r.Post("/game/restart", s.handleRestart)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// stateRes is the public view of a session.
type stateRes struct {
	GameID    string   `json:"gameId"`
	RootWord  string   `json:"rootWord"`
	Score     int      `json:"score"`
	UsedWords []string `json:"usedWords"`
	Candidate string   `json:"candidate,omitempty"`
}

// newGameRes is returned by the endpoints that start a game.
type newGameRes struct {
	stateRes
	Token string `json:"token"`
}

func toState(g game.Session) stateRes {
	used := g.UsedWords
	if used == nil {
		used = []string{}
	}
	return stateRes{
		GameID:    g.ID,
		RootWord:  g.RootWord,
		Score:     g.Score,
		UsedWords: used,
		Candidate: g.Candidate,
	}
}

// handleNewGame starts a game with a random root word.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, s.deps.Roots, "random")
}

// startGame creates a session from p, stores it and issues its token.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, p game.RootProvider, mode string) {
	g, err := game.NewGame(p)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("new game")
		if errors.Is(err, game.ErrCorpusUnavailable) {
			http.Error(w, `{"error":"corpus_unavailable"}`, http.StatusServiceUnavailable)
			return
		}
		http.Error(w, `{"error":"new_game_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.deps.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signToken(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setSessionCookie(w, tok, exp)
	s.metrics.gamesStarted.WithLabelValues(mode).Inc()
	log.Info().Str("gameId", g.ID).Str("root", g.RootWord).Str("mode", mode).Msg("game started")

	_ = json.NewEncoder(w).Encode(newGameRes{stateRes: toState(*g), Token: tok})
}

// handleState returns the current session.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := s.deps.Store.Get(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(toState(g))
}

// submitReq/Res payloads for POST /game/submit.
type submitReq struct {
	Word string `json:"word"`
}
type submitRes struct {
	Result  string      `json:"result"` // "accepted" | "rejected"
	Word    string      `json:"word"`
	Reason  game.Reason `json:"reason,omitempty"`
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message,omitempty"`
	stateRes
}

// handleSubmit runs the validation pipeline for one word.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var (
		res  game.Result
		snap game.Session
	)
	err := s.deps.Store.Update(r.Context(), sessionID(r), func(g *game.Session) error {
		g.Candidate = req.Word
		res = g.Submit(req.Word, s.deps.Checker, s.deps.Lang)
		snap = *g
		snap.UsedWords = append([]string(nil), g.UsedWords...)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"update_failed"}`, http.StatusInternalServerError)
		return
	}
	s.metrics.observe(res)
	log.Debug().Str("gameId", snap.ID).Str("word", res.Word).Bool("accepted", res.Accepted).
		Str("reason", string(res.Reason)).Msg("submission")

	out := submitRes{
		Result:   "rejected",
		Word:     res.Word,
		Reason:   res.Reason,
		Title:    res.Title,
		Message:  res.Message,
		stateRes: toState(snap),
	}
	if res.Accepted {
		out.Result = "accepted"
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleRestart starts a new game in place; the token stays valid.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var snap game.Session
	err := s.deps.Store.Update(r.Context(), sessionID(r), func(g *game.Session) error {
		if err := g.Reset(s.deps.Roots); err != nil {
			return err
		}
		snap = *g
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	case errors.Is(err, game.ErrCorpusUnavailable):
		log.Error().Err(err).Msg("restart")
		http.Error(w, `{"error":"corpus_unavailable"}`, http.StatusServiceUnavailable)
		return
	default:
		http.Error(w, `{"error":"update_failed"}`, http.StatusInternalServerError)
		return
	}
	s.metrics.gamesStarted.WithLabelValues("restart").Inc()
	_ = json.NewEncoder(w).Encode(toState(snap))
}

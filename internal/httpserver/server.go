// internal/httpserver/server.go
//
// HTTP front end for the Wordle engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/state.
//   - Daily endpoint: POST /daily/new (routes_daily.go).
//
// Notes:
//   - Every game is single-player; a signed ticket (tokens.go) names the game.
//   - Sessions live in a store.Store; guesses go through Store.Update so two
//     requests for the same game are applied one after the other.
//   - The answer is only ever sent once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// Options configures a Server.
type Options struct {
	ClientOrigin     string        // CORS origin allowed with credentials
	TokenSecret      string        // HS256 key for game tickets
	TokenTTL         time.Duration // ticket lifetime
	DailySalt        string        // salt for the word of the day
	AllowFixedAnswer bool          // accept {"answer": "..."} on /game/new
	SecureCookies    bool          // Secure + SameSite=None on the ticket cookie
}

// Server bundles router, session store and word lists.
type Server struct {
	r       *chi.Mux
	store   store.Store
	words   *words.List
	tickets *tickets
	daily   daily.Picker
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, list *words.List, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		words:   list,
		tickets: &tickets{secret: []byte(opts.TokenSecret), ttl: opts.TokenTTL},
		daily:   daily.Picker{Salt: opts.DailySalt},
		opts:    opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(withRequestID)                   // req_id on every log line
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/state","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/state", s.handleState)
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests and http.Server).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
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
}

// withRequestID copies chi's request id into the request logger.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// writeError sends {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing); needs AllowFixedAnswer
}
type newGameRes struct {
	GameID      string    `json:"gameId"`
	Token       string    `json:"token"`
	Mode        game.Mode `json:"mode"`
	Date        string    `json:"date,omitempty"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
}

// handleNewGame creates a session with a random (or fixed) answer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req) // empty body is fine

	var (
		sess *game.Session
		err  error
	)
	switch {
	case req.Answer == "":
		sess, err = game.Start(s.words)
	case !s.opts.AllowFixedAnswer:
		writeError(w, http.StatusForbidden, "fixed_answer_disabled")
		return
	case !s.words.Contains(req.Answer):
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	default:
		sess, err = game.New(req.Answer, s.words, game.ModeFixed)
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	s.startGame(w, r, sess, "")
}

// startGame saves sess, issues its ticket and writes the newGameRes.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, sess *game.Session, date string) {
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", sess.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tickets.issue(sess.ID, sess.Mode)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign ticket")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	setGameCookie(w, tok, exp, s.opts.SecureCookies)
	hlog.FromRequest(r).Debug().Str("gameId", sess.ID).Str("mode", string(sess.Mode)).Msg("game started")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      sess.ID,
		Token:       tok,
		Mode:        sess.Mode,
		Date:        date,
		MaxAttempts: game.MaxAttempts,
		WordLength:  game.WordLength,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Marks     game.GuessResult `json:"marks"`
	State     game.Status      `json:"state"` // "in_progress" | "won" | "lost"
	Attempts  int              `json:"attempts"`
	Remaining int              `json:"remaining"`
	Answer    string           `json:"answer,omitempty"`
}

// handleGuess applies a guess to the ticket's session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	id, ok := s.gameID(w, r)
	if !ok {
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		marks game.GuessResult
		snap  game.Snapshot
	)
	err := s.store.Update(r.Context(), id, func(sess *game.Session) error {
		var err error
		marks, err = sess.SubmitGuess(req.Guess)
		snap = sess.Snapshot()
		return err
	})
	if err != nil {
		s.guessError(w, r, id, err)
		return
	}
	if snap.Status.Over() {
		hlog.FromRequest(r).Info().Str("gameId", id).Str("state", string(snap.Status)).Int("attempts", snap.Attempts).Msg("game finished")
	}

	_ = json.NewEncoder(w).Encode(guessRes{
		Marks:     marks,
		State:     snap.Status,
		Attempts:  snap.Attempts,
		Remaining: snap.Remaining,
		Answer:    snap.Answer,
	})
}

func (s *Server) guessError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if reason, ok := game.Rejection(err); ok {
		writeError(w, http.StatusUnprocessableEntity, string(reason))
		return
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
	default:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "save_failed")
	}
}

// handleState returns the ticket's session snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id, ok := s.gameID(w, r)
	if !ok {
		return
	}
	sess, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}

// gameID verifies the request's ticket. On failure it writes 401 and returns false.
func (s *Server) gameID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := bearerOrCookie(r)
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "missing_ticket")
		return "", false
	}
	id, err := s.tickets.parse(raw)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_ticket")
		return "", false
	}
	return id, true
}

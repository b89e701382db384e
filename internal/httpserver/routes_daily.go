// internal/httpserver/routes_daily.go
//
// HTTP route for the "word of the day" mode.
//   - POST /daily/new → start a game whose answer is today's daily word
//
// Deterministic word selection is based on date + salt, so every player gets
// the same answer on the same UTC date. The game itself is an ordinary session:
// guesses and state go through /game/guess and /game/state with the ticket.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew starts a session for today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, idx, answer := s.daily.Pick(s.words.Answers())
	if answer == "" {
		writeError(w, http.StatusServiceUnavailable, "no_answers")
		return
	}
	sess, err := game.New(answer, s.words, game.ModeDaily)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("date", date).Int("idx", idx).Msg("daily game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	s.startGame(w, r, sess, date)
}

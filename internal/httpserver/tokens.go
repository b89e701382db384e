// internal/httpserver/tokens.go
//
// Game tickets: an HS256 JWT naming one game. A client receives it from
// POST /game/new (or /daily/new) and presents it on every later request,
// either as "Authorization: Bearer <token>" or in the wordle_game cookie.
// The ticket carries no secret material; the answer stays on the server.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

const gameCookieName = "wordle_game"

var errBadTicket = errors.New("invalid game ticket")

// ticketClaims are the JWT claims of a game ticket.
type ticketClaims struct {
	GameID string    `json:"gid"`
	Mode   game.Mode `json:"mode"`
	jwt.RegisteredClaims
}

type tickets struct {
	secret []byte
	ttl    time.Duration
}

// issue signs a ticket for gameID valid for t.ttl.
func (t *tickets) issue(gameID string, mode game.Mode) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, ticketClaims{
		GameID: gameID,
		Mode:   mode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse verifies a ticket and returns the game id it names.
func (t *tickets) parse(raw string) (string, error) {
	var claims ticketClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.GameID == "" {
		return "", errBadTicket
	}
	return claims.GameID, nil
}

// bearerOrCookie extracts a ticket from the Authorization header or the game cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(gameCookieName); err == nil {
		return c.Value
	}
	return ""
}

// setGameCookie writes the ticket cookie with appropriate security attributes.
func setGameCookie(w http.ResponseWriter, token string, exp time.Time, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     gameCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// Package session implements the cookie codec identifying the logged-in
// user. The payload is a compact JSON object with the three public user
// fields. When a signing secret is configured the value carries an
// HMAC-SHA256 tag so a forged or edited cookie reads as no session; with an
// empty secret the codec degrades to the bare JSON value of the legacy app.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/pkg/config"
)

// Codec reads and writes the session cookie.
type Codec struct {
	name   string
	maxAge time.Duration
	secret []byte
	secure bool
}

// NewCodec builds a codec from session config. secure marks the cookie
// transport-only, which is off in local development.
func NewCodec(cfg config.SessionConfig, secure bool) *Codec {
	var secret []byte
	if cfg.SigningSecret != "" {
		secret = []byte(cfg.SigningSecret)
	}
	name := cfg.CookieName
	if name == "" {
		name = "user"
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Codec{name: name, maxAge: maxAge, secret: secret, secure: secure}
}

// Write issues the session cookie for the user.
func (c *Codec) Write(ctx *gin.Context, user models.User) error {
	value, err := c.encode(user)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.name, value, int(c.maxAge.Seconds()), "/", "", c.secure, true)
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.name, "", -1, "/", "", c.secure, true)
}

// Read returns the user from the request's session cookie. An absent,
// malformed, or tampered cookie yields nil; Read never fails.
func (c *Codec) Read(ctx *gin.Context) *models.User {
	value, err := ctx.Cookie(c.name)
	if err != nil || value == "" {
		return nil
	}
	user, err := c.decode(value)
	if err != nil {
		return nil
	}
	return user
}

func (c *Codec) encode(user models.User) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	if len(c.secret) == 0 {
		return string(payload), nil
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(payload), nil
}

func (c *Codec) decode(value string) (*models.User, error) {
	var payload []byte
	if len(c.secret) == 0 {
		payload = []byte(value)
	} else {
		encoded, tag, found := strings.Cut(value, ".")
		if !found {
			return nil, errInvalidCookie
		}
		decoded, err := base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return nil, errInvalidCookie
		}
		if !hmac.Equal([]byte(c.sign(decoded)), []byte(tag)) {
			return nil, errInvalidCookie
		}
		payload = decoded
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, errInvalidCookie
	}
	if !user.Role.Valid() {
		return nil, errInvalidCookie
	}
	return &user, nil
}

func (c *Codec) sign(payload []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

type cookieError string

func (e cookieError) Error() string { return string(e) }

const errInvalidCookie = cookieError("invalid session cookie")

package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "gatepost_session"

	// SecretEnvVar is the default environment variable holding the
	// cookie signing secret.
	SecretEnvVar = "GATEPOST_SESSION_SECRET"

	minSecretLen = 16
)

type (
	// cookieCodec signs session tokens before they leave the process and
	// refuses any cookie whose signature does not check out. The token
	// itself stays opaque, tampering just turns the cookie into garbage.
	cookieCodec struct {
		secret []byte
	}
)

// SecretFromEnv reads the signing secret from varname and blanks the
// variable so the secret does not linger in the process environment.
// getfn/setfn default to os.Getenv/os.Setenv.
func SecretFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	if len(val) < minSecretLen {
		return nil, fmt.Errorf("web: session secret from %v must have at least %v bytes", varname, minSecretLen)
	}
	return []byte(val), nil
}

func newCookieCodec(secret []byte) *cookieCodec {
	return &cookieCodec{secret: secret}
}

func (c *cookieCodec) sign(token string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func (c *cookieCodec) encode(token string) string {
	return token + "." + base64.RawURLEncoding.EncodeToString(c.sign(token))
}

func (c *cookieCodec) decode(value string) (string, bool) {
	idx := strings.LastIndexByte(value, '.')
	if idx < 0 {
		return "", false
	}
	token, sig := value[:idx], value[idx+1:]
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(got, c.sign(token)) {
		return "", false
	}
	return token, true
}

// sessionTokenFrom extracts the raw session token from the request
// cookie, rejecting values with a broken signature.
func sessionTokenFrom(r *http.Request, codec *cookieCodec) (string, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	return codec.decode(cookie.Value)
}

func setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roulette_bot/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("secret")

func echoSession(w http.ResponseWriter, r *http.Request) {
	id, _ := SessionIDFromContext(r.Context())
	_, _ = w.Write([]byte(id))
}

func TestAuthHeader(t *testing.T) {
	tok, err := token.GenerateAccessToken("chat-7", secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	Auth(secret)(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chat-7", rec.Body.String())
}

func TestAuthQueryParam(t *testing.T) {
	tok, err := token.GenerateAccessToken("chat-8", secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ws?access_token="+tok, nil)
	rec := httptest.NewRecorder()

	Auth(secret)(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

	assert.Equal(t, "chat-8", rec.Body.String())
}

func TestAuthRejects(t *testing.T) {
	other, err := token.GenerateAccessToken("chat-7", []byte("other"), time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"bad secret":   "Bearer " + other,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			Auth(secret)(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

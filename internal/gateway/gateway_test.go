package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsappSender_PostsPayload(t *testing.T) {
	var got map[string]string
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewWhatsappSender(srv.URL, "secret-token")
	err := s.Send(context.Background(), "+5511999990000", "Olá João")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "+5511999990000", got["phone"])
	assert.Equal(t, "Olá João", got["text"])
}

func TestWhatsappSender_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewWhatsappSender(srv.URL, "")
	assert.Error(t, s.Send(context.Background(), "+5511999990000", "oi"))
}

func TestWhatsappSender_MissingURL(t *testing.T) {
	s := NewWhatsappSender("", "")
	assert.Error(t, s.Send(context.Background(), "+5511999990000", "oi"))
}

func TestNew_FallsBackToNoop(t *testing.T) {
	_, ok := New("", "token").(NoopSender)
	assert.True(t, ok)

	_, ok = New("https://api.example.com/send", "token").(*WhatsappSender)
	assert.True(t, ok)
}

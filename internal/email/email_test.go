package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantType any
		wantNil  bool
		wantErr  bool
	}{
		{name: "none", cfg: config.Config{EmailProvider: "none"}, wantNil: true},
		{name: "log", cfg: config.Config{EmailProvider: "log"}, wantType: &LogSender{}},
		{name: "resend", cfg: config.Config{EmailProvider: "resend", EmailAPIKey: "k"}, wantType: &ResendSender{}},
		{name: "resend without key", cfg: config.Config{EmailProvider: "resend"}, wantErr: true},
		{name: "unknown", cfg: config.Config{EmailProvider: "pigeon"}, wantErr: true},
		{name: "empty means none", cfg: config.Config{}, wantNil: true},
		{name: "name is case-insensitive", cfg: config.Config{EmailProvider: " Log "}, wantType: &LogSender{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewEmailService(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, sender)
				return
			}
			assert.IsType(t, tt.wantType, sender)
		})
	}
}

func TestNewEmailService_UnknownProvider(t *testing.T) {
	_, err := NewEmailService(&config.Config{EmailProvider: "pigeon"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.ErrorContains(t, err, `"pigeon"`)
}

func TestResendSender_Send(t *testing.T) {
	var got resendPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := &ResendSender{apiKey: "secret", endpoint: srv.URL, client: srv.Client()}
	err := s.Send(context.Background(), "owner@example.com", "Novo Contato", "<p>oi</p>")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, defaultResendSender, got.From)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "Novo Contato", got.Subject)
}

func TestResendSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}` + "\n"))
	}))
	defer srv.Close()

	s := &ResendSender{apiKey: "secret", senderAddress: "me@example.com", endpoint: srv.URL, client: srv.Client()}
	err := s.Send(context.Background(), "owner@example.com", "x", "y")

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorContains(t, err, `status 422: {"message":"invalid from"}`)
}

package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mdchat/internal/infrastructure/config"
)

func TestNew_ConfiguresServer(t *testing.T) {
	cfg := config.ServerConfig{
		Addr:         "127.0.0.1:18080",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	}
	handler := http.NewServeMux()

	s := New(cfg, handler, nil)

	require.NotNil(t, s)
	assert.Equal(t, "127.0.0.1:18080", s.Addr())
	assert.Equal(t, time.Second, s.http.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.http.WriteTimeout)
	assert.Equal(t, 3*time.Second, s.http.IdleTimeout)
	assert.NotNil(t, s.http.Handler)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong")) //nolint:errcheck
	})
	s := New(config.Default().Server, mux, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String() + "/ping")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestStart_InvalidAddress(t *testing.T) {
	s := New(config.ServerConfig{Addr: "not-an-address"}, http.NewServeMux(), nil)

	err := s.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
)

var teapot = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestFilterInvalidHosts(t *testing.T) {
	tests := []struct {
		name         string
		allowedHosts []string
		host         string
		wantCode     int
	}{
		{
			name:         "wildcard",
			allowedHosts: []string{"*"},
			host:         "example.com",
			wantCode:     http.StatusTeapot,
		},
		{
			name:         "allowed host",
			allowedHosts: []string{"localhost"},
			host:         "localhost:9650",
			wantCode:     http.StatusTeapot,
		},
		{
			name:         "case insensitive",
			allowedHosts: []string{"LocalHost"},
			host:         "localhost",
			wantCode:     http.StatusTeapot,
		},
		{
			name:         "ip address",
			allowedHosts: []string{"localhost"},
			host:         "127.0.0.1:9650",
			wantCode:     http.StatusTeapot,
		},
		{
			name:         "unknown host",
			allowedHosts: []string{"localhost"},
			host:         "example.com",
			wantCode:     http.StatusForbidden,
		},
		{
			name:     "no allowed hosts",
			host:     "example.com:80",
			wantCode: http.StatusForbidden,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = test.host

			w := httptest.NewRecorder()
			filterInvalidHosts(teapot, test.allowedHosts).ServeHTTP(w, req)
			require.Equal(t, test.wantCode, w.Code)
		})
	}
}

func TestWrapHandler(t *testing.T) {
	require := require.New(t)

	chainID := ids.GenerateTestID()
	h := wrapHandler(teapot, chainID, []string{"https://example.com"}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(http.StatusTeapot, w.Code)
	require.Equal(chainID.String(), w.Header().Get(HTTPHeaderChainID))
	require.Equal("https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPHeaderChainIDIsCanonical(t *testing.T) {
	require.Equal(t, http.CanonicalHeaderKey(HTTPHeaderChainID), HTTPHeaderChainID)
}

func newTestServer(t *testing.T, registry metric.Registry) (*server, net.Listener) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s, err := New(
		log.NewNoOpLogger(),
		listener,
		[]string{"*"},
		time.Second,
		ids.GenerateTestID(),
		registry,
		DefaultHTTPConfig,
		[]string{"localhost"},
	)
	require.NoError(t, err)
	return s.(*server), listener
}

func TestAddRoute(t *testing.T) {
	require := require.New(t)

	registry := metric.NewRegistry()
	s, listener := newTestServer(t, registry)
	require.NoError(listener.Close())

	require.NoError(s.AddRoute(teapot, "bc/mint", ""))
	err := s.AddRoute(teapot, "bc/mint", "")
	require.ErrorIs(err, errDuplicateRoute)
	require.NoError(s.AddRoute(teapot, "bc/mint", "/ws"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ext/bc/mint", nil))
	require.Equal(http.StatusTeapot, w.Code)

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ext/bc/other", nil))
	require.Equal(http.StatusNotFound, w.Code)

	require.Equal(1.0, gathered(t, registry, "api_requests_total", metric.Labels{"method": http.MethodPost, "endpoint": "bc/mint"}))
	require.Zero(gathered(t, registry, "api_requests_inflight", nil))
}

func TestDispatchAndShutdown(t *testing.T) {
	require := require.New(t)

	s, listener := newTestServer(t, metric.NewRegistry())
	require.NoError(s.AddRoute(teapot, "health", ""))

	dispatched := make(chan error, 1)
	go func() {
		dispatched <- s.Dispatch()
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get(fmt.Sprintf("http://%s/ext/health", listener.Addr()))
	require.NoError(err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusTeapot, resp.StatusCode)

	require.NoError(s.Shutdown())
	require.ErrorIs(<-dispatched, http.ErrServerClosed)
}

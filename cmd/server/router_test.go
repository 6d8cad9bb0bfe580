package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/platform/servicetoken"
	"worktime/pkg/platform/httputil"
	"worktime/pkg/requestcontext"
	"worktime/pkg/testutil"
)

type callerProbe struct{}

func (callerProbe) Register(r chi.Router) {
	r.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"caller":     requestcontext.Caller(r.Context()),
			"request_id": requestcontext.RequestID(r.Context()),
		})
	})
}

func newTestRouter(checks ...healthCheck) (http.Handler, *servicetoken.Service) {
	tokens := servicetoken.New("test-signing-key", "worktime")
	return newRouter(routerConfig{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokens:   tokens,
		health:   checks,
		handlers: []registrar{callerProbe{}},
	}), tokens
}

func TestRouter_Healthz(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		router, _ := newTestRouter(healthCheck{name: "postgres", check: func(context.Context) error { return nil }})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("failing dependency is reported", func(t *testing.T) {
		router, _ := newTestRouter(
			healthCheck{name: "postgres", check: func(context.Context) error { return nil }},
			healthCheck{name: "redis", check: func(context.Context) error { return errors.New("connection refused") }},
		)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, map[string]string{"redis": "connection refused"}, resp.Checks)
	})

	t.Run("needs no token", func(t *testing.T) {
		router, _ := newTestRouter()
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}

func TestRouter_ServiceToken(t *testing.T) {
	router, tokens := newTestRouter()

	t.Run("missing token", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/probe"))
		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("token from another key", func(t *testing.T) {
		foreign, err := servicetoken.New("other-key", "worktime").Issue("scheduler", "scheduler", time.Minute)
		require.NoError(t, err)
		req := testutil.NewRequest(t, http.MethodGet, "/probe")
		req.Header.Set("Authorization", "Bearer "+foreign)

		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("valid token records the caller", func(t *testing.T) {
		token, err := tokens.Issue("nightly-cron", "scheduler", time.Minute)
		require.NoError(t, err)
		req := testutil.NewRequest(t, http.MethodGet, "/probe")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Request-ID", "req-42")

		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		body := testutil.UnmarshalResponse[map[string]string](t, rr)
		assert.Equal(t, "nightly-cron", (*body)["caller"])
		assert.Equal(t, "req-42", (*body)["request_id"])
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})
}

func TestJobContext(t *testing.T) {
	ctx := jobContext(context.Background(), "daily-root")

	assert.Equal(t, "cli:daily-root", requestcontext.Caller(ctx))
	assert.NotEmpty(t, requestcontext.RequestID(ctx))
	assert.WithinDuration(t, time.Now().UTC(), requestcontext.Now(ctx), time.Minute)
}

func TestParseOptionalFlags(t *testing.T) {
	d, err := parseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseOptionalDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	_, err = parseOptionalDate("05/03/2024")
	assert.Error(t, err)

	e, err := parseOptionalEmployee("")
	require.NoError(t, err)
	assert.Nil(t, e)

	_, err = parseOptionalEmployee("not-a-uuid")
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, map[string]int{"processed": 2}))
	assert.Equal(t, "{\n  \"processed\": 2\n}\n", buf.String())
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{
		"serve", "evaluate", "daily-root", "reconcile", "manifest", "vacation", "escalate", "issue-token",
	}, names)
}

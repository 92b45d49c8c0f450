package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blooddonor/internal/infrastructure/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	e := echo.New()

	t.Run("store reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewHealthHandler(pingFunc(func(context.Context) error { return nil }))

		if assert.NoError(t, h.CheckHealth(c)) {
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Server is running")
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewHealthHandler(pingFunc(func(context.Context) error { return stderrors.New("no route to host") }))

		if assert.NoError(t, h.CheckHealth(c)) {
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAVAILABLE")
		}
	})
}

func helloSchema(t *testing.T) *graphql.Schema {
	t.Helper()

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"hello": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return "world", nil
					},
				},
			},
		}),
	})
	require.NoError(t, err)
	return &schema
}

func TestGraphQLHandler(t *testing.T) {
	e := echo.New()
	h := NewGraphQLHandler(helloSchema(t), true)

	t.Run("post query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ hello }"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Serve(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "world", body.Data["hello"])
	})

	t.Run("graphiql for browsers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()

		require.NoError(t, h.Serve(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "graphiql")
	})
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	recorder.ObserveResolver("users", time.Now(), nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewMetricsHandler(recorder).Serve(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `blooddonor_graphql_resolver_calls_total{field="users",outcome="ok"} 1`)
}

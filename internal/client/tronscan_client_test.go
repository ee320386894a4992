package client

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "token_verifier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetAccount_PassesBodyThroughUntouched(t *testing.T) {
	body := `{"address":"TAbc123","balance":42000000,"totalTransactionCount":17}`
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewTronscanClient(srv.URL, 2*time.Second, zap.NewNop())
	data, err := c.GetAccount(context.Background(), "TAbc123")
	require.NoError(t, err)

	assert.Equal(t, "/api/accountv2", gotPath)
	assert.Equal(t, "address=TAbc123", gotQuery)
	assert.Equal(t, stdjson.RawMessage(body), data)
}

func TestGetAccountTokens_SendsPagingParameters(t *testing.T) {
	var gotPath string
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"total":0}`))
	}))
	defer srv.Close()

	c := NewTronscanClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetAccountTokens(context.Background(), "TAbc123")
	require.NoError(t, err)

	assert.Equal(t, "/api/account/tokens", gotPath)
	assert.Contains(t, gotQuery, "address=TAbc123")
	assert.Contains(t, gotQuery, "start=0")
	assert.Contains(t, gotQuery, "limit=20")
}

func TestGetAccount_NullBodyIsFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c := NewTronscanClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetAccount(context.Background(), "bogus")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorFormat, qe.Kind)
	assert.Equal(t, "Invalid address or no data available", err.Error())
}

func TestGetAccount_EmptyBodyIsFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
	}))
	defer srv.Close()

	c := NewTronscanClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetAccount(context.Background(), "bogus")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorFormat, qe.Kind)
}

func TestGetAccount_ServerErrorIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewTronscanClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetAccount(context.Background(), "TAbc123")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorHTTP, qe.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, qe.Status)
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "token_verifier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func jsonResponse(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestGetTokenDetail_ParsesAttributesAndPools(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "tron_TAbc123",
				"type": "token",
				"attributes": {
					"name": "Foo",
					"symbol": "FOO",
					"decimals": 6,
					"price_usd": "1.23",
					"total_supply": 1000000,
					"volume_usd": {"h24": "42000.5"}
				},
				"relationships": {
					"top_pools": {"data": [{"id": "tron_pool1", "type": "pool"}]}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	resp, err := c.GetTokenDetail(context.Background(), domain.NetworkTron, "TAbc123")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.Equal(t, "/networks/tron/tokens/TAbc123", gotPath)
	assert.Equal(t, "Foo", resp.Data.Attributes.Name)
	require.NotNil(t, resp.Data.Attributes.Decimals)
	assert.Equal(t, int64(6), *resp.Data.Attributes.Decimals)
	assert.Equal(t, "1.23", string(resp.Data.Attributes.PriceUSD))
	assert.Equal(t, "1000000", string(resp.Data.Attributes.TotalSupply))
	assert.Equal(t, "42000.5", string(resp.Data.Attributes.VolumeUSD.H24))
	assert.Equal(t, []string{"tron_pool1"}, resp.TopPoolIDs())
}

func TestGetTokenInfo_HitsInfoPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "x", "type": "token", "attributes": {"description": "A token"}}}`))
	}))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	resp, err := c.GetTokenInfo(context.Background(), domain.NetworkSolana, "So1abc")
	require.NoError(t, err)

	assert.Equal(t, "/networks/solana/tokens/So1abc/info", gotPath)
	assert.Equal(t, "A token", resp.Data.Attributes.Description)
}

func TestGetTokenDetail_NonSuccessStatusIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetTokenDetail(context.Background(), domain.NetworkTron, "unknown")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorHTTP, qe.Kind)
	assert.Equal(t, http.StatusNotFound, qe.Status)
	assert.Equal(t, "Not Found", qe.StatusText)
	assert.Equal(t, "HTTP error! status: 404", err.Error())
}

func TestGetTokenDetail_MalformedBodyIsFormatError(t *testing.T) {
	srv := httptest.NewServer(jsonResponse(t, `{"data": `))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetTokenDetail(context.Background(), domain.NetworkTron, "TAbc123")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorFormat, qe.Kind)
	assert.Equal(t, "Invalid data structure", qe.Message)
}

func TestGetTokenDetail_MissingDataObjectIsFormatError(t *testing.T) {
	srv := httptest.NewServer(jsonResponse(t, `{"data": null}`))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.GetTokenDetail(context.Background(), domain.NetworkTron, "TAbc123")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorFormat, qe.Kind)
}

func TestGetTokenDetail_UnreachableHostIsTransportError(t *testing.T) {
	c := NewGeckoTerminalClient("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())
	_, err := c.GetTokenDetail(context.Background(), domain.NetworkTron, "TAbc123")
	require.Error(t, err)

	qe, ok := err.(*domain.QueryError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorTransport, qe.Kind)
}

func TestGetRecentlyUpdated_ParsesListWithNetworks(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "tron_TAbc123",
					"attributes": {"name": "Recent", "symbol": "RCT", "price_usd": 0.5},
					"relationships": {"network": {"data": {"id": "tron", "type": "network"}}}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	resp, err := c.GetRecentlyUpdated(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/tokens/info_recently_updated", gotPath)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Recent", resp.Data[0].Attributes.Name)
	assert.Equal(t, "0.5", string(resp.Data[0].Attributes.PriceUSD))
	assert.Equal(t, "tron", resp.Data[0].Relationships.Network.Data.ID)
}

func TestGetTrendingPools_ParsesTimeframeBreakdowns(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "tron_pool1",
					"attributes": {
						"name": "FOO / WTRX",
						"address": "pooladdr",
						"base_token_price_usd": "1.5",
						"price_change_percentage": {"h1": "0.4", "h24": "-3.2"},
						"volume_usd": {"h24": "9000"}
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewGeckoTerminalClient(srv.URL, 2*time.Second, zap.NewNop())
	resp, err := c.GetTrendingPools(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "include=network&page=1", gotQuery)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "FOO / WTRX", resp.Data[0].Attributes.Name)
	assert.Equal(t, "-3.2", string(resp.Data[0].Attributes.PriceChangePercentage["h24"]))
	assert.Equal(t, "9000", string(resp.Data[0].Attributes.VolumeUSD.H24))
}

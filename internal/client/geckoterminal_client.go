package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/entity"
	"token_verifier/internal/pkg/metrics"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const providerGeckoTerminal = "geckoterminal"

// geckoTerminalClientImpl is the implementation of port.GeckoTerminalClient.
type geckoTerminalClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeckoTerminalClient creates a new instance of geckoTerminalClientImpl.
func NewGeckoTerminalClient(baseURL string, timeout time.Duration, logger *zap.Logger) port.GeckoTerminalClient {
	return &geckoTerminalClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("GeckoTerminalClient"),
	}
}

// GetTokenDetail implements port.GeckoTerminalClient.
func (c *geckoTerminalClientImpl) GetTokenDetail(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error) {
	requestURL := fmt.Sprintf("%s/networks/%s/tokens/%s", c.baseURL, network, address)
	return c.fetchTokenDetail(ctx, requestURL)
}

// GetTokenInfo implements port.GeckoTerminalClient.
func (c *geckoTerminalClientImpl) GetTokenInfo(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error) {
	requestURL := fmt.Sprintf("%s/networks/%s/tokens/%s/info", c.baseURL, network, address)
	return c.fetchTokenDetail(ctx, requestURL)
}

func (c *geckoTerminalClientImpl) fetchTokenDetail(ctx context.Context, requestURL string) (*entity.TokenDetailResponse, error) {
	c.logger.Debug("Requesting token data from GeckoTerminal", zap.String("url", requestURL))

	body, err := doGet(ctx, c.client, requestURL, c.timeout)
	if err != nil {
		c.observeFailure(requestURL, err)
		return nil, err
	}

	var resp entity.TokenDetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to unmarshal GeckoTerminal token response",
			zap.String("url", requestURL), zap.Error(err))
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", err)
	}
	if resp.Data == nil {
		c.logger.Warn("GeckoTerminal token response has no data object", zap.String("url", requestURL))
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", nil)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeSuccess).Inc()
	return &resp, nil
}

// GetRecentlyUpdated implements port.GeckoTerminalClient.
func (c *geckoTerminalClientImpl) GetRecentlyUpdated(ctx context.Context) (*entity.TokenListResponse, error) {
	requestURL := fmt.Sprintf("%s/tokens/info_recently_updated", c.baseURL)
	c.logger.Debug("Requesting recently updated tokens", zap.String("url", requestURL))

	body, err := doGet(ctx, c.client, requestURL, c.timeout)
	if err != nil {
		c.observeFailure(requestURL, err)
		return nil, err
	}

	var resp entity.TokenListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", err)
	}
	if resp.Data == nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", nil)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Recently updated tokens fetched", zap.Int("count", len(resp.Data)))
	return &resp, nil
}

// GetTrendingPools implements port.GeckoTerminalClient.
func (c *geckoTerminalClientImpl) GetTrendingPools(ctx context.Context) (*entity.PoolListResponse, error) {
	requestURL := fmt.Sprintf("%s/networks/trending_pools?include=network&page=1", c.baseURL)
	c.logger.Debug("Requesting trending pools", zap.String("url", requestURL))

	body, err := doGet(ctx, c.client, requestURL, c.timeout)
	if err != nil {
		c.observeFailure(requestURL, err)
		return nil, err
	}

	var resp entity.PoolListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", err)
	}
	if resp.Data == nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid data structure", nil)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Trending pools fetched", zap.Int("count", len(resp.Data)))
	return &resp, nil
}

func (c *geckoTerminalClientImpl) observeFailure(requestURL string, err error) {
	outcome := metrics.OutcomeTransport
	if qe, ok := err.(*domain.QueryError); ok {
		switch qe.Kind {
		case domain.ErrorHTTP:
			outcome = metrics.OutcomeHTTP
		case domain.ErrorFormat:
			outcome = metrics.OutcomeFormat
		}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(providerGeckoTerminal, outcome).Inc()
	c.logger.Error("GeckoTerminal API request failed", zap.String("url", requestURL), zap.Error(err))
}

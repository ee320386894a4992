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

const providerDEXScreener = "dexscreener"

// dexScreenerClientImpl is the implementation of port.DEXScreenerClient.
type dexScreenerClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewDEXScreenerClient creates a new instance of dexScreenerClientImpl.
func NewDEXScreenerClient(baseURL string, timeout time.Duration, logger *zap.Logger) port.DEXScreenerClient {
	return &dexScreenerClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("DEXScreenerClient"),
	}
}

// GetLatestBoosts implements port.DEXScreenerClient. The endpoint returns a
// bare JSON array of boost entries.
func (c *dexScreenerClientImpl) GetLatestBoosts(ctx context.Context) ([]entity.BoostedTokenPayload, error) {
	requestURL := fmt.Sprintf("%s/token-boosts/latest/v1", c.baseURL)
	c.logger.Debug("Requesting latest token boosts from DEX Screener", zap.String("url", requestURL))

	body, err := doGet(ctx, c.client, requestURL, c.timeout)
	if err != nil {
		outcome := metrics.OutcomeTransport
		if qe, ok := err.(*domain.QueryError); ok && qe.Kind == domain.ErrorHTTP {
			outcome = metrics.OutcomeHTTP
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(providerDEXScreener, outcome).Inc()
		c.logger.Error("DEX Screener API request failed", zap.String("url", requestURL), zap.Error(err))
		return nil, err
	}

	var boosts []entity.BoostedTokenPayload
	if err := json.Unmarshal(body, &boosts); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerDEXScreener, metrics.OutcomeFormat).Inc()
		c.logger.Error("Failed to unmarshal DEX Screener boosts response",
			zap.String("url", requestURL), zap.Error(err))
		return nil, domain.NewFormatError("Invalid data structure", err)
	}

	if len(boosts) == 0 {
		c.logger.Warn("DEX Screener returned 200 OK with 0 boosted tokens", zap.String("url", requestURL))
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerDEXScreener, metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Latest token boosts fetched", zap.Int("count", len(boosts)))
	return boosts, nil
}

package client

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const providerTronscan = "tronscan"

// tronscanClientImpl is the implementation of port.TronscanClient. Payloads
// are returned as raw JSON; the account views render them untouched.
type tronscanClientImpl struct {
	http    *resty.Client
	baseURL string
	logger  *zap.Logger
}

// NewTronscanClient creates a new instance of tronscanClientImpl.
func NewTronscanClient(baseURL string, timeout time.Duration, logger *zap.Logger) port.TronscanClient {
	return &tronscanClientImpl{
		http: resty.New().
			SetTransport(&http.Transport{Proxy: http.ProxyFromEnvironment}).
			SetTimeout(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("TronscanClient"),
	}
}

// GetAccount implements port.TronscanClient.
func (c *tronscanClientImpl) GetAccount(ctx context.Context, address string) (stdjson.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/api/accountv2?address=%s", c.baseURL, address)
	return c.fetch(ctx, requestURL)
}

// GetAccountTokens implements port.TronscanClient.
func (c *tronscanClientImpl) GetAccountTokens(ctx context.Context, address string) (stdjson.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/api/account/tokens?address=%s&start=0&limit=20&hidden=0&show=0&sortType=0&sortBy=0&token=", c.baseURL, address)
	return c.fetch(ctx, requestURL)
}

func (c *tronscanClientImpl) fetch(ctx context.Context, requestURL string) (stdjson.RawMessage, error) {
	c.logger.Debug("Requesting account data from Tronscan", zap.String("url", requestURL))

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(requestURL)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerTronscan, metrics.OutcomeTransport).Inc()
		c.logger.Error("Failed to execute request to Tronscan", zap.String("url", requestURL), zap.Error(err))
		return nil, domain.NewTransportError(fmt.Errorf("failed to execute request to %s: %w", requestURL, err))
	}

	if resp.StatusCode() != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerTronscan, metrics.OutcomeHTTP).Inc()
		c.logger.Error("Tronscan API request failed",
			zap.String("url", requestURL), zap.Int("statusCode", resp.StatusCode()))
		return nil, domain.NewHTTPError(resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || string(body) == "null" || !stdjson.Valid(body) {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerTronscan, metrics.OutcomeFormat).Inc()
		return nil, domain.NewFormatError("Invalid address or no data available", nil)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerTronscan, metrics.OutcomeSuccess).Inc()
	return stdjson.RawMessage(body), nil
}

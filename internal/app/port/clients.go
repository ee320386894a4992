package port

import (
	"context"
	"encoding/json"

	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/entity"
)

// GeckoTerminalClient defines the interface for the GeckoTerminal data API.
type GeckoTerminalClient interface {
	// GetTokenDetail fetches the primary (market data) attributes of a token.
	GetTokenDetail(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error)

	// GetTokenInfo fetches the supplementary attributes of a token
	// (description, social links).
	GetTokenInfo(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error)

	// GetRecentlyUpdated fetches the bulk recently-updated token list.
	GetRecentlyUpdated(ctx context.Context) (*entity.TokenListResponse, error)

	// GetTrendingPools fetches the bulk trending-pools list.
	GetTrendingPools(ctx context.Context) (*entity.PoolListResponse, error)
}

// DEXScreenerClient defines the interface for the DEX Screener boosts API.
type DEXScreenerClient interface {
	GetLatestBoosts(ctx context.Context) ([]entity.BoostedTokenPayload, error)
}

// TronscanClient defines the interface for the Tronscan account API.
// Payloads are passed through untouched; the caller decides how to render them.
type TronscanClient interface {
	GetAccount(ctx context.Context, address string) (json.RawMessage, error)
	GetAccountTokens(ctx context.Context, address string) (json.RawMessage, error)
}

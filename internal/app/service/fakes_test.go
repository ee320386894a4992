package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/entity"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

type recordedNotification struct {
	Message string
	Kind    port.NotifyKind
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []recordedNotification
}

func (n *fakeNotifier) Notify(message string, kind port.NotifyKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, recordedNotification{Message: message, Kind: kind})
}

func (n *fakeNotifier) last() (recordedNotification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notifications) == 0 {
		return recordedNotification{}, false
	}
	return n.notifications[len(n.notifications)-1], true
}

type fakeWhitelistStore struct {
	mu     sync.Mutex
	tokens []domain.WhitelistedToken
	saves  int
}

func (s *fakeWhitelistStore) LoadWhitelist() ([]domain.WhitelistedToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WhitelistedToken, len(s.tokens))
	copy(out, s.tokens)
	return out, nil
}

func (s *fakeWhitelistStore) SaveWhitelist(tokens []domain.WhitelistedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make([]domain.WhitelistedToken, len(tokens))
	copy(s.tokens, tokens)
	s.saves++
	return nil
}

type fakeNotesStore struct {
	mu    sync.Mutex
	notes []domain.Note
}

func (s *fakeNotesStore) LoadNotes() ([]domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *fakeNotesStore) SaveNotes(notes []domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = make([]domain.Note, len(notes))
	copy(s.notes, notes)
	return nil
}

var errFakeNotImplemented = errors.New("not implemented in this test")

type fakeGeckoClient struct {
	mu          sync.Mutex
	detailCalls int
	infoCalls   int

	tokenDetail     func(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error)
	tokenInfo       func(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error)
	recentlyUpdated func(ctx context.Context) (*entity.TokenListResponse, error)
	trendingPools   func(ctx context.Context) (*entity.PoolListResponse, error)
}

func (c *fakeGeckoClient) GetTokenDetail(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error) {
	c.mu.Lock()
	c.detailCalls++
	c.mu.Unlock()
	if c.tokenDetail == nil {
		return nil, errFakeNotImplemented
	}
	return c.tokenDetail(ctx, network, address)
}

func (c *fakeGeckoClient) GetTokenInfo(ctx context.Context, network domain.Network, address string) (*entity.TokenDetailResponse, error) {
	c.mu.Lock()
	c.infoCalls++
	c.mu.Unlock()
	if c.tokenInfo == nil {
		return nil, errFakeNotImplemented
	}
	return c.tokenInfo(ctx, network, address)
}

func (c *fakeGeckoClient) GetRecentlyUpdated(ctx context.Context) (*entity.TokenListResponse, error) {
	if c.recentlyUpdated == nil {
		return nil, errFakeNotImplemented
	}
	return c.recentlyUpdated(ctx)
}

func (c *fakeGeckoClient) GetTrendingPools(ctx context.Context) (*entity.PoolListResponse, error) {
	if c.trendingPools == nil {
		return nil, errFakeNotImplemented
	}
	return c.trendingPools(ctx)
}

func (c *fakeGeckoClient) calls() (detail, info int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detailCalls, c.infoCalls
}

type fakeDexClient struct {
	latestBoosts func(ctx context.Context) ([]entity.BoostedTokenPayload, error)
}

func (c *fakeDexClient) GetLatestBoosts(ctx context.Context) ([]entity.BoostedTokenPayload, error) {
	if c.latestBoosts == nil {
		return nil, errFakeNotImplemented
	}
	return c.latestBoosts(ctx)
}

type fakeTronscanClient struct {
	account       func(ctx context.Context, address string) (json.RawMessage, error)
	accountTokens func(ctx context.Context, address string) (json.RawMessage, error)
}

func (c *fakeTronscanClient) GetAccount(ctx context.Context, address string) (json.RawMessage, error) {
	if c.account == nil {
		return nil, errFakeNotImplemented
	}
	return c.account(ctx, address)
}

func (c *fakeTronscanClient) GetAccountTokens(ctx context.Context, address string) (json.RawMessage, error) {
	if c.accountTokens == nil {
		return nil, errFakeNotImplemented
	}
	return c.accountTokens(ctx, address)
}

func tokenDetailFixture(name, symbol, price string, pools ...string) *entity.TokenDetailResponse {
	refs := make([]entity.RelationshipRef, 0, len(pools))
	for _, p := range pools {
		refs = append(refs, entity.RelationshipRef{ID: p, Type: "pool"})
	}
	return &entity.TokenDetailResponse{
		Data: &entity.TokenData{
			ID:   "token-fixture",
			Type: "token",
			Attributes: entity.TokenAttributes{
				Name:     name,
				Symbol:   symbol,
				PriceUSD: entity.FlexString(price),
			},
			Relationships: entity.TokenRelationships{
				TopPools: entity.RelationshipList{Data: refs},
			},
		},
	}
}

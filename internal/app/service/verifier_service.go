package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/entity"
	"token_verifier/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

const emptyAddressMessage = "Please enter a contract address"

// VerifierServiceImpl implements port.VerifierService. It owns the
// verification state and the three discovery lists; callers never mutate them
// directly. At most one result category is populated at a time.
type VerifierServiceImpl struct {
	gecko          port.GeckoTerminalClient
	dexscreener    port.DEXScreenerClient
	whitelistStore port.WhitelistStore
	notifier       port.Notifier
	logger         port.Logger
	now            func() time.Time

	mu             sync.Mutex
	attemptSeq     uint64
	verification   domain.VerificationState
	recentTokens   []domain.RecentToken
	trendingPools  []domain.TrendingEntry
	boostedTokens  []domain.BoostedToken
	discoveryError string
}

// NewVerifierService creates a new instance of VerifierServiceImpl.
func NewVerifierService(
	gecko port.GeckoTerminalClient,
	dexscreener port.DEXScreenerClient,
	ws port.WhitelistStore,
	notifier port.Notifier,
	l port.Logger,
) *VerifierServiceImpl {
	return &VerifierServiceImpl{
		gecko:          gecko,
		dexscreener:    dexscreener,
		whitelistStore: ws,
		notifier:       notifier,
		logger:         l,
		now:            time.Now,
		verification:   domain.VerificationState{Status: domain.VerificationIdle},
	}
}

// Verify runs one verification attempt: input check, concurrent fan-out to
// the two token-detail endpoints, join, reconcile, terminal state. Upstream
// failures are converted into a Failed state and never propagated raw.
//
// Attempts are numbered; a completion is applied only while its attempt is
// still the latest, so a slow superseded attempt cannot overwrite the result
// of a newer one.
func (s *VerifierServiceImpl) Verify(ctx context.Context, address string, network domain.Network) domain.VerificationState {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		s.logger.Warn("Verification requested without a contract address")
		metrics.VerificationAttemptsTotal.WithLabelValues("invalid_input").Inc()
		state := domain.VerificationState{
			Status:  domain.VerificationFailed,
			Network: network,
			Reason:  emptyAddressMessage,
		}
		s.mu.Lock()
		s.attemptSeq++
		s.verification = state
		s.mu.Unlock()
		return state
	}

	s.mu.Lock()
	s.attemptSeq++
	attempt := s.attemptSeq
	s.verification = domain.VerificationState{
		Status:  domain.VerificationPending,
		Network: network,
		Address: trimmed,
	}
	s.mu.Unlock()

	s.logger.Debug("Verifying token", "address", trimmed, "network", network)

	// Join, not race: the reconciler never sees one response without the
	// other. The goroutines return nil so that both outcomes are collected;
	// failures are classified after the join.
	var (
		detail    *entity.TokenDetailResponse
		info      *entity.TokenDetailResponse
		detailErr error
		infoErr   error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		detail, detailErr = s.gecko.GetTokenDetail(gctx, network, trimmed)
		return nil
	})
	g.Go(func() error {
		info, infoErr = s.gecko.GetTokenInfo(gctx, network, trimmed)
		return nil
	})
	_ = g.Wait()

	if detailErr != nil || infoErr != nil {
		reason := fmt.Sprintf("Error fetching data: %s / %s",
			domain.StatusTextOf(detailErr), domain.StatusTextOf(infoErr))
		s.logger.Error("Token verification failed",
			"address", trimmed, "network", network, "reason", reason)
		metrics.VerificationAttemptsTotal.WithLabelValues("failed").Inc()
		return s.finishAttempt(attempt, domain.VerificationState{
			Status:  domain.VerificationFailed,
			Network: network,
			Address: trimmed,
			Reason:  reason,
		})
	}

	var primary, secondary *entity.TokenAttributes
	if detail != nil && detail.Data != nil {
		primary = &detail.Data.Attributes
	}
	if info != nil && info.Data != nil {
		secondary = &info.Data.Attributes
	}
	record := ReconcileToken(trimmed, primary, secondary, detail.TopPoolIDs())

	metrics.VerificationAttemptsTotal.WithLabelValues("succeeded").Inc()
	s.logger.Info("Token verified", "address", trimmed, "network", network, "symbol", record.Symbol)
	return s.finishAttempt(attempt, domain.VerificationState{
		Status:  domain.VerificationSucceeded,
		Network: network,
		Address: trimmed,
		Record:  &record,
	})
}

// finishAttempt applies a terminal state if the attempt is still the latest.
// Stale completions are returned to their caller but do not touch shared state.
func (s *VerifierServiceImpl) finishAttempt(attempt uint64, state domain.VerificationState) domain.VerificationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attemptSeq {
		s.logger.Debug("Discarding superseded verification result",
			"attempt", attempt, "latest", s.attemptSeq)
		return state
	}
	s.verification = state
	if state.Status == domain.VerificationSucceeded {
		// Only one result panel is visible at a time.
		s.recentTokens = nil
		s.trendingPools = nil
		s.boostedTokens = nil
		s.discoveryError = ""
	}
	return state
}

// FetchRecentTokens implements port.VerifierService.
func (s *VerifierServiceImpl) FetchRecentTokens(ctx context.Context) ([]domain.RecentToken, error) {
	resp, err := s.gecko.GetRecentlyUpdated(ctx)
	if err != nil {
		s.setDiscoveryError(err)
		return nil, err
	}

	tokens := make([]domain.RecentToken, 0, len(resp.Data))
	for _, item := range resp.Data {
		tokens = append(tokens, domain.RecentToken{
			ID:        item.ID,
			Name:      item.Attributes.Name,
			Symbol:    item.Attributes.Symbol,
			Network:   item.Relationships.Network.Data.ID,
			PriceUSD:  textOrNA(item.Attributes.PriceUSD),
			Volume24h: textOrNA(item.Attributes.VolumeUSD.H24),
		})
	}

	s.mu.Lock()
	s.recentTokens = tokens
	s.trendingPools = nil
	s.boostedTokens = nil
	s.verification = domain.VerificationState{Status: domain.VerificationIdle}
	s.discoveryError = ""
	s.mu.Unlock()

	s.logger.Info("Recently updated tokens fetched", "count", len(tokens))
	return tokens, nil
}

// FetchTrendingTokens implements port.VerifierService.
func (s *VerifierServiceImpl) FetchTrendingTokens(ctx context.Context) ([]domain.TrendingEntry, error) {
	resp, err := s.gecko.GetTrendingPools(ctx)
	if err != nil {
		s.setDiscoveryError(err)
		return nil, err
	}

	entries := make([]domain.TrendingEntry, 0, len(resp.Data))
	for _, item := range resp.Data {
		changes := make(map[string]string, len(item.Attributes.PriceChangePercentage))
		for timeframe, v := range item.Attributes.PriceChangePercentage {
			changes[timeframe] = string(v)
		}
		entries = append(entries, domain.TrendingEntry{
			ID:                    item.ID,
			Name:                  item.Attributes.Name,
			Address:               item.Attributes.Address,
			BaseTokenPriceUSD:     textOrNA(item.Attributes.BaseTokenPriceUSD),
			QuoteTokenPriceUSD:    textOrNA(item.Attributes.QuoteTokenPriceUSD),
			MarketCapUSD:          textOrNA(item.Attributes.MarketCapUSD),
			PriceChangePercentage: changes,
			Volume24h:             textOrNA(item.Attributes.VolumeUSD.H24),
		})
	}

	s.mu.Lock()
	s.trendingPools = entries
	s.recentTokens = nil
	s.boostedTokens = nil
	s.verification = domain.VerificationState{Status: domain.VerificationIdle}
	s.discoveryError = ""
	s.mu.Unlock()

	s.logger.Info("Trending pools fetched", "count", len(entries))
	return entries, nil
}

// FetchBoostedTokens implements port.VerifierService.
func (s *VerifierServiceImpl) FetchBoostedTokens(ctx context.Context) ([]domain.BoostedToken, error) {
	boosts, err := s.dexscreener.GetLatestBoosts(ctx)
	if err != nil {
		s.setDiscoveryError(err)
		return nil, err
	}

	tokens := make([]domain.BoostedToken, 0, len(boosts))
	for _, b := range boosts {
		links := make([]domain.BoostLink, 0, len(b.Links))
		for _, l := range b.Links {
			links = append(links, domain.BoostLink{Type: l.Type, Label: l.Label, URL: l.URL})
		}
		tokens = append(tokens, domain.BoostedToken{
			URL:          b.URL,
			ChainID:      b.ChainID,
			TokenAddress: b.TokenAddress,
			Icon:         b.Icon,
			Name:         b.Name,
			Symbol:       b.Symbol,
			Description:  b.Description,
			Links:        links,
			Amount:       string(b.Amount),
			TotalAmount:  string(b.TotalAmount),
		})
	}

	s.mu.Lock()
	s.boostedTokens = tokens
	s.recentTokens = nil
	s.trendingPools = nil
	s.verification = domain.VerificationState{Status: domain.VerificationIdle}
	s.discoveryError = ""
	s.mu.Unlock()

	s.logger.Info("Boosted tokens fetched", "count", len(tokens))
	return tokens, nil
}

// setDiscoveryError records a discovery-list failure without disturbing a
// currently displayed token record.
func (s *VerifierServiceImpl) setDiscoveryError(err error) {
	s.mu.Lock()
	s.discoveryError = err.Error()
	s.mu.Unlock()
}

// State implements port.VerifierService.
func (s *VerifierServiceImpl) State() domain.ResultView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := domain.ResultView{
		Verification:   s.verification,
		RecentTokens:   make([]domain.RecentToken, len(s.recentTokens)),
		TrendingPools:  make([]domain.TrendingEntry, len(s.trendingPools)),
		BoostedTokens:  make([]domain.BoostedToken, len(s.boostedTokens)),
		DiscoveryError: s.discoveryError,
	}
	copy(view.RecentTokens, s.recentTokens)
	copy(view.TrendingPools, s.trendingPools)
	copy(view.BoostedTokens, s.boostedTokens)
	return view
}

// ToggleWhitelist implements port.VerifierService. The whitelist is owned by
// the persistence collaborator; the full collection is written back on every
// toggle. The (address-lowercased, network) pair stays unique.
func (s *VerifierServiceImpl) ToggleWhitelist(record domain.TokenRecord, network domain.Network) (bool, error) {
	tokens, err := s.whitelistStore.LoadWhitelist()
	if err != nil {
		return false, fmt.Errorf("failed to load whitelist: %w", err)
	}

	kept := make([]domain.WhitelistedToken, 0, len(tokens))
	removed := false
	for _, t := range tokens {
		if t.Matches(record.Address, network) {
			removed = true
			continue
		}
		kept = append(kept, t)
	}

	if removed {
		if err := s.whitelistStore.SaveWhitelist(kept); err != nil {
			return true, fmt.Errorf("failed to save whitelist: %w", err)
		}
		s.notifier.Notify("Token removed from whitelist", port.NotifySuccess)
		s.logger.Info("Token removed from whitelist", "address", record.Address, "network", network)
		return false, nil
	}

	kept = append(kept, domain.WhitelistedToken{
		Address: record.Address,
		Name:    record.Name,
		Symbol:  record.Symbol,
		Network: network,
		AddedAt: s.now().UTC().Format(time.RFC3339),
	})
	if err := s.whitelistStore.SaveWhitelist(kept); err != nil {
		return false, fmt.Errorf("failed to save whitelist: %w", err)
	}
	s.notifier.Notify("Token added to whitelist", port.NotifySuccess)
	s.logger.Info("Token added to whitelist", "address", record.Address, "network", network)
	return true, nil
}

// Whitelist implements port.VerifierService.
func (s *VerifierServiceImpl) Whitelist() ([]domain.WhitelistedToken, error) {
	return s.whitelistStore.LoadWhitelist()
}

// IsWhitelisted implements port.VerifierService.
func (s *VerifierServiceImpl) IsWhitelisted(address string, network domain.Network) bool {
	tokens, err := s.whitelistStore.LoadWhitelist()
	if err != nil {
		s.logger.Error("Failed to load whitelist", "error", err)
		return false
	}
	for _, t := range tokens {
		if t.Matches(address, network) {
			return true
		}
	}
	return false
}

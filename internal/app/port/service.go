package port

import (
	"context"
	"encoding/json"

	domain "token_verifier/internal/domain/entity"
)

// VerifierService drives token verification attempts and the discovery lists.
type VerifierService interface {
	// Verify runs one verification attempt and returns the resulting state.
	Verify(ctx context.Context, address string, network domain.Network) domain.VerificationState

	// FetchRecentTokens replaces the discovery view with the
	// recently-updated token list.
	FetchRecentTokens(ctx context.Context) ([]domain.RecentToken, error)

	// FetchTrendingTokens replaces the discovery view with the trending pools.
	FetchTrendingTokens(ctx context.Context) ([]domain.TrendingEntry, error)

	// FetchBoostedTokens replaces the discovery view with the boosted tokens.
	FetchBoostedTokens(ctx context.Context) ([]domain.BoostedToken, error)

	// State returns a consistent snapshot of the current result view.
	State() domain.ResultView

	// ToggleWhitelist adds the token to the whitelist or removes it if
	// already present. It reports whether the token ended up whitelisted.
	ToggleWhitelist(record domain.TokenRecord, network domain.Network) (bool, error)

	// Whitelist returns the current whitelist collection.
	Whitelist() ([]domain.WhitelistedToken, error)

	// IsWhitelisted reports whether (address, network) is whitelisted.
	IsWhitelisted(address string, network domain.Network) bool
}

// AccountQueryType selects which Tronscan endpoint an account query hits.
type AccountQueryType string

const (
	AccountQueryAccount AccountQueryType = "account"
	AccountQueryTokens  AccountQueryType = "tokens"
)

// AccountService answers address/account lookups.
type AccountService interface {
	FetchAddressData(ctx context.Context, address string, queryType AccountQueryType) (json.RawMessage, error)
}

// NotesService manages the notes book.
type NotesService interface {
	AddNote(address, text string, category domain.NoteCategory) (domain.Note, error)
	DeleteNote(id string) error
	ListNotes() ([]domain.Note, error)
	SearchNotes(query string) ([]domain.Note, error)
}

package port

import domain "token_verifier/internal/domain/entity"

// WhitelistStore persists the user-curated token whitelist. The full
// collection is written back on every change (read-modify-write).
type WhitelistStore interface {
	LoadWhitelist() ([]domain.WhitelistedToken, error)
	SaveWhitelist(tokens []domain.WhitelistedToken) error
}

// NotesStore persists the notes book.
type NotesStore interface {
	LoadNotes() ([]domain.Note, error)
	SaveNotes(notes []domain.Note) error
}

// NotifyKind distinguishes success from error notifications.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier delivers fire-and-forget user notifications.
type Notifier interface {
	Notify(message string, kind NotifyKind)
}

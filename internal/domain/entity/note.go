package entity

// NoteCategory classifies what kind of address a note is attached to.
type NoteCategory string

const (
	NoteCategoryWallet   NoteCategory = "wallet"
	NoteCategoryToken    NoteCategory = "token"
	NoteCategoryContract NoteCategory = "contract"
)

// Note is one free-text note keyed by a blockchain address.
type Note struct {
	ID        string       `json:"id"`
	Address   string       `json:"address"`
	Note      string       `json:"note"`
	Category  NoteCategory `json:"category"`
	Timestamp int64        `json:"timestamp"`
}

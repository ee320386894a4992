package service

import (
	"strconv"
	"strings"
	"time"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
)

// NotesServiceImpl implements port.NotesService on top of an injected store.
type NotesServiceImpl struct {
	store  port.NotesStore
	logger port.Logger
	now    func() time.Time
}

// NewNotesService creates a new instance of NotesServiceImpl.
func NewNotesService(store port.NotesStore, l port.Logger) *NotesServiceImpl {
	return &NotesServiceImpl{store: store, logger: l, now: time.Now}
}

// AddNote implements port.NotesService.
func (s *NotesServiceImpl) AddNote(address, text string, category domain.NoteCategory) (domain.Note, error) {
	address = strings.TrimSpace(address)
	text = strings.TrimSpace(text)
	if address == "" {
		return domain.Note{}, domain.NewValidationError("Please enter an address.")
	}
	if text == "" {
		return domain.Note{}, domain.NewValidationError("Please enter a note.")
	}
	switch category {
	case domain.NoteCategoryWallet, domain.NoteCategoryToken, domain.NoteCategoryContract:
	default:
		return domain.Note{}, domain.NewValidationError("Unknown note category.")
	}

	notes, err := s.store.LoadNotes()
	if err != nil {
		return domain.Note{}, err
	}

	ts := s.now().UnixMilli()
	note := domain.Note{
		ID:        strconv.FormatInt(ts, 10),
		Address:   address,
		Note:      text,
		Category:  category,
		Timestamp: ts,
	}
	if err := s.store.SaveNotes(append(notes, note)); err != nil {
		return domain.Note{}, err
	}

	s.logger.Info("Note added", "address", address, "category", category)
	return note, nil
}

// DeleteNote implements port.NotesService. Deleting an unknown id is a no-op.
func (s *NotesServiceImpl) DeleteNote(id string) error {
	notes, err := s.store.LoadNotes()
	if err != nil {
		return err
	}

	kept := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID == id {
			continue
		}
		kept = append(kept, n)
	}
	if len(kept) == len(notes) {
		return nil
	}

	s.logger.Info("Note deleted", "id", id)
	return s.store.SaveNotes(kept)
}

// ListNotes implements port.NotesService.
func (s *NotesServiceImpl) ListNotes() ([]domain.Note, error) {
	return s.store.LoadNotes()
}

// SearchNotes implements port.NotesService. The query matches either the
// address or the note text, case-insensitively.
func (s *NotesServiceImpl) SearchNotes(query string) ([]domain.Note, error) {
	notes, err := s.store.LoadNotes()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes, nil
	}

	matched := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Address), q) ||
			strings.Contains(strings.ToLower(n.Note), q) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

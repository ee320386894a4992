package service

import (
	"testing"
	"time"

	domain "token_verifier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotesForTest() (*NotesServiceImpl, *fakeNotesStore) {
	store := &fakeNotesStore{}
	svc := NewNotesService(store, noopLogger{})
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, store
}

func TestAddNote_AssignsIDFromTimestamp(t *testing.T) {
	svc, store := newNotesForTest()

	note, err := svc.AddNote("  TAbc123  ", " payroll wallet ", domain.NoteCategoryWallet)
	require.NoError(t, err)

	assert.Equal(t, "1700000000000", note.ID)
	assert.Equal(t, int64(1700000000000), note.Timestamp)
	assert.Equal(t, "TAbc123", note.Address)
	assert.Equal(t, "payroll wallet", note.Note)
	assert.Equal(t, domain.NoteCategoryWallet, note.Category)
	require.Len(t, store.notes, 1)
}

func TestAddNote_RejectsBlankInput(t *testing.T) {
	svc, store := newNotesForTest()

	_, err := svc.AddNote("   ", "text", domain.NoteCategoryToken)
	require.Error(t, err)
	assert.Equal(t, "Please enter an address.", err.Error())

	_, err = svc.AddNote("TAbc123", "   ", domain.NoteCategoryToken)
	require.Error(t, err)
	assert.Equal(t, "Please enter a note.", err.Error())

	_, err = svc.AddNote("TAbc123", "text", domain.NoteCategory("bogus"))
	require.Error(t, err)
	assert.Equal(t, "Unknown note category.", err.Error())

	assert.Empty(t, store.notes)
}

func TestDeleteNote_UnknownIDIsNoOp(t *testing.T) {
	svc, store := newNotesForTest()
	store.notes = []domain.Note{{ID: "1", Address: "TAbc", Note: "keep me"}}

	require.NoError(t, svc.DeleteNote("does-not-exist"))
	assert.Len(t, store.notes, 1)

	require.NoError(t, svc.DeleteNote("1"))
	assert.Empty(t, store.notes)
}

func TestSearchNotes_MatchesAddressOrTextCaseInsensitively(t *testing.T) {
	svc, store := newNotesForTest()
	store.notes = []domain.Note{
		{ID: "1", Address: "TPayroll", Note: "monthly salary"},
		{ID: "2", Address: "TTrading", Note: "DEX arbitrage bot"},
		{ID: "3", Address: "TCold", Note: "long term storage"},
	}

	matched, err := svc.SearchNotes("PAYROLL")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)

	matched, err = svc.SearchNotes("arbitrage")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)

	matched, err = svc.SearchNotes("  ")
	require.NoError(t, err)
	assert.Len(t, matched, 3)

	matched, err = svc.SearchNotes("nothing-here")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

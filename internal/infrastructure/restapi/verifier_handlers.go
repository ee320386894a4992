package restapi

import (
	"net/http"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// Handler holds the services behind the verifier API endpoints.
type Handler struct {
	verifier port.VerifierService
	accounts port.AccountService
	notes    port.NotesService
}

// NewHandler creates a new Handler.
func NewHandler(vs port.VerifierService, as port.AccountService, ns port.NotesService) *Handler {
	return &Handler{verifier: vs, accounts: as, notes: ns}
}

// VerifyRequest is the body of POST /verify.
type VerifyRequest struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// ToggleWhitelistRequest is the body of POST /whitelist/toggle.
type ToggleWhitelistRequest struct {
	Record  domain.TokenRecord `json:"record"`
	Network string             `json:"network"`
}

// AddNoteRequest is the body of POST /notes.
type AddNoteRequest struct {
	Address  string `json:"address"`
	Note     string `json:"note"`
	Category string `json:"category"`
}

// VerifyHandler runs one verification attempt and returns the terminal state.
// Failures are part of the state, not HTTP errors: the caller renders them as
// an inline banner.
func (h *Handler) VerifyHandler(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	network, ok := domain.ParseNetwork(req.Network)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown network: " + req.Network})
		return
	}

	state := h.verifier.Verify(c.Request.Context(), req.Address, network)
	c.JSON(http.StatusOK, state)
}

// StateHandler returns the current result view snapshot.
func (h *Handler) StateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.verifier.State())
}

// DiscoveryHandler fetches one of the bulk discovery lists
// (recent, trending or boosted) and returns the refreshed view.
func (h *Handler) DiscoveryHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	switch c.Param("kind") {
	case "recent":
		_, err = h.verifier.FetchRecentTokens(ctx)
	case "trending":
		_, err = h.verifier.FetchTrendingTokens(ctx)
	case "boosted":
		_, err = h.verifier.FetchBoostedTokens(ctx)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown discovery kind: " + c.Param("kind")})
		return
	}
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.verifier.State())
}

// WhitelistHandler returns the whitelist collection.
func (h *Handler) WhitelistHandler(c *gin.Context) {
	tokens, err := h.verifier.Whitelist()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// ToggleWhitelistHandler adds or removes one token from the whitelist.
func (h *Handler) ToggleWhitelistHandler(c *gin.Context) {
	var req ToggleWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	network, ok := domain.ParseNetwork(req.Network)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown network: " + req.Network})
		return
	}

	whitelisted, err := h.verifier.ToggleWhitelist(req.Record, network)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"whitelisted": whitelisted})
}

// AccountHandler answers a Tron address lookup, passing the upstream payload
// through untouched.
func (h *Handler) AccountHandler(c *gin.Context) {
	address := c.Query("address")
	queryType := port.AccountQueryType(c.Query("type"))

	data, err := h.accounts.FetchAddressData(c.Request.Context(), address, queryType)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// ListNotesHandler lists the notes book, optionally filtered by ?q=.
func (h *Handler) ListNotesHandler(c *gin.Context) {
	notes, err := h.notes.SearchNotes(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// AddNoteHandler appends a note to the notes book.
func (h *Handler) AddNoteHandler(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	note, err := h.notes.AddNote(req.Address, req.Note, domain.NoteCategory(req.Category))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

// DeleteNoteHandler removes a note by id.
func (h *Handler) DeleteNoteHandler(c *gin.Context) {
	if err := h.notes.DeleteNote(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// statusForError maps the query error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	qe, ok := err.(*domain.QueryError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch qe.Kind {
	case domain.ErrorValidation:
		return http.StatusBadRequest
	case domain.ErrorTransport:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

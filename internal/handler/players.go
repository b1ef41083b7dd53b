package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/filter"
	"github.com/ashkanani/agency/internal/store"
)

// PlayerHandler serves the authenticated player read endpoints.
type PlayerHandler struct {
	players   store.PlayerStore
	contracts store.ContractStore
	engine    *filter.Engine
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(players store.PlayerStore, contracts store.ContractStore, engine *filter.Engine) *PlayerHandler {
	return &PlayerHandler{players: players, contracts: contracts, engine: engine}
}

// ListPlayers handles GET /api/players. The full filter vocabulary is
// accepted as query parameters; agent accounts are pinned to their own
// roster regardless of what they ask for.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	f, err := ParsePlayerFilters(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil && claims.Role == auth.RoleAgent {
		f.AgentID = claims.AgentID
	}

	players, err := h.players.List(r.Context())
	if err != nil {
		RespondError(w, domain.ErrInternal("list players", err))
		return
	}

	var contracts []domain.Contract
	if f.HasContractDimensions() {
		contracts, err = h.contracts.List(r.Context())
		if err != nil {
			RespondError(w, domain.ErrInternal("list contracts", err))
			return
		}
	}

	result := h.engine.FilterPlayers(players, f, contracts)
	if result == nil {
		result = []domain.Player{}
	}
	RespondJSON(w, http.StatusOK, result)
}

// GetPlayer handles GET /api/players/{id}.
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if player == nil {
		RespondError(w, domain.ErrNotFound("player", id))
		return
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil &&
		claims.Role == auth.RoleAgent && player.AgentID != claims.AgentID {
		RespondError(w, domain.ErrNotFound("player", id))
		return
	}

	RespondJSON(w, http.StatusOK, player)
}

// ListPlayerContracts handles GET /api/players/{id}/contracts.
func (h *PlayerHandler) ListPlayerContracts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if player == nil {
		RespondError(w, domain.ErrNotFound("player", id))
		return
	}

	contracts, err := h.contracts.ListByPlayer(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("list contracts", err))
		return
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	RespondJSON(w, http.StatusOK, contracts)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/filter"
	"github.com/ashkanani/agency/internal/projection"
	"github.com/ashkanani/agency/internal/store"
)

// PublicHandler serves the unauthenticated showcase endpoints. Only
// players toggled public are listed, and every record goes through the
// visibility projection before leaving the process.
type PublicHandler struct {
	players   store.PlayerStore
	contracts store.ContractStore
	engine    *filter.Engine
	projector *projection.Projector
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(players store.PlayerStore, contracts store.ContractStore, engine *filter.Engine, projector *projection.Projector) *PublicHandler {
	return &PublicHandler{players: players, contracts: contracts, engine: engine, projector: projector}
}

// ListPublicPlayers handles GET /public/players.
func (h *PublicHandler) ListPublicPlayers(w http.ResponseWriter, r *http.Request) {
	f, err := ParsePlayerFilters(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	players, err := h.players.List(r.Context())
	if err != nil {
		RespondError(w, domain.ErrInternal("list players", err))
		return
	}

	visible := players[:0:0]
	for _, p := range players {
		if p.Public {
			visible = append(visible, p)
		}
	}

	var contracts []domain.Contract
	if f.HasContractDimensions() {
		contracts, err = h.contracts.List(r.Context())
		if err != nil {
			RespondError(w, domain.ErrInternal("list contracts", err))
			return
		}
	}

	projected := []domain.PublicPlayer{}
	for _, p := range h.engine.FilterPlayers(visible, f, contracts) {
		projected = append(projected, h.projector.Project(p))
	}
	RespondJSON(w, http.StatusOK, projected)
}

// GetPublicPlayer handles GET /public/players/{id}.
func (h *PublicHandler) GetPublicPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if player == nil || !player.Public {
		RespondError(w, domain.ErrNotFound("player", id))
		return
	}

	RespondJSON(w, http.StatusOK, h.projector.Project(*player))
}

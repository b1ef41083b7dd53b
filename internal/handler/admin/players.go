// Package admin holds the write-side handlers of the console. Every
// route in here sits behind RequireRole(owner, admin) in the router.
package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/handler"
	"github.com/ashkanani/agency/internal/service"
	"github.com/ashkanani/agency/internal/store"
)

// PlayerAdminHandler handles player management.
type PlayerAdminHandler struct {
	players store.PlayerStore
	agents  store.AgentStore
	audit   *service.AuditPublisher
}

// NewPlayerAdminHandler creates a new PlayerAdminHandler.
func NewPlayerAdminHandler(players store.PlayerStore, agents store.AgentStore, audit *service.AuditPublisher) *PlayerAdminHandler {
	return &PlayerAdminHandler{players: players, agents: agents, audit: audit}
}

// CreatePlayer handles POST /api/players.
func (h *PlayerAdminHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var player domain.Player
	if err := handler.DecodeJSON(r, &player); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := player.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now

	if err := h.cacheAgentName(r, &player); err != nil {
		handler.RespondError(w, err)
		return
	}

	if err := h.players.Create(r.Context(), &player); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "created", "player", player.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusCreated, player)
}

// UpdatePlayer handles PUT /api/players/{id}.
func (h *PlayerAdminHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.players.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if existing == nil {
		handler.RespondError(w, domain.ErrNotFound("player", id))
		return
	}

	var player domain.Player
	if err := handler.DecodeJSON(r, &player); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	player.ID = id
	player.CreatedAt = existing.CreatedAt
	player.UpdatedAt = time.Now().UTC()

	if err := player.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}
	if err := h.cacheAgentName(r, &player); err != nil {
		handler.RespondError(w, err)
		return
	}

	if err := h.players.Update(r.Context(), &player); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "updated", "player", player.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusOK, player)
}

// DeletePlayer handles DELETE /api/players/{id}.
func (h *PlayerAdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.players.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "deleted", "player", id, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

// cacheAgentName resolves the assigned agent and refreshes the cached
// display name on the player record.
func (h *PlayerAdminHandler) cacheAgentName(r *http.Request, player *domain.Player) error {
	if player.AgentID == "" {
		player.AgentName = ""
		return nil
	}
	agent, err := h.agents.Get(r.Context(), player.AgentID)
	if err != nil {
		return domain.ErrInternal("find agent", err)
	}
	if agent == nil {
		return domain.ErrValidation("unknown agent: " + player.AgentID)
	}
	player.AgentName = agent.Name
	return nil
}

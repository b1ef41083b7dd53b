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

// AgentAdminHandler handles agent management.
type AgentAdminHandler struct {
	agents store.AgentStore
	audit  *service.AuditPublisher
}

// NewAgentAdminHandler creates a new AgentAdminHandler.
func NewAgentAdminHandler(agents store.AgentStore, audit *service.AuditPublisher) *AgentAdminHandler {
	return &AgentAdminHandler{agents: agents, audit: audit}
}

// CreateAgent handles POST /api/agents.
func (h *AgentAdminHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var agent domain.Agent
	if err := handler.DecodeJSON(r, &agent); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := agent.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if agent.ID == "" {
		agent.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	agent.CreatedAt = now
	agent.UpdatedAt = now

	if err := h.agents.Create(r.Context(), &agent); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "created", "agent", agent.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusCreated, agent)
}

// UpdateAgent handles PUT /api/agents/{id}.
func (h *AgentAdminHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.agents.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find agent", err))
		return
	}
	if existing == nil {
		handler.RespondError(w, domain.ErrNotFound("agent", id))
		return
	}

	var agent domain.Agent
	if err := handler.DecodeJSON(r, &agent); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	agent.ID = id
	agent.CreatedAt = existing.CreatedAt
	agent.UpdatedAt = time.Now().UTC()

	if err := agent.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if err := h.agents.Update(r.Context(), &agent); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "updated", "agent", agent.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusOK, agent)
}

// DeleteAgent handles DELETE /api/agents/{id}.
func (h *AgentAdminHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.agents.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "deleted", "agent", id, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

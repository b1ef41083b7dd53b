package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/store"
)

// AgentHandler serves the authenticated agent read endpoints.
type AgentHandler struct {
	agents store.AgentStore
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agents store.AgentStore) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// ListAgents handles GET /api/agents.
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agents.List(r.Context())
	if err != nil {
		RespondError(w, domain.ErrInternal("list agents", err))
		return
	}
	if agents == nil {
		agents = []domain.Agent{}
	}
	RespondJSON(w, http.StatusOK, agents)
}

// GetAgent handles GET /api/agents/{id}.
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	agent, err := h.agents.Get(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find agent", err))
		return
	}
	if agent == nil {
		RespondError(w, domain.ErrNotFound("agent", id))
		return
	}
	RespondJSON(w, http.StatusOK, agent)
}

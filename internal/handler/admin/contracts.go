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

// ContractAdminHandler handles contract management.
type ContractAdminHandler struct {
	contracts store.ContractStore
	players   store.PlayerStore
	audit     *service.AuditPublisher
}

// NewContractAdminHandler creates a new ContractAdminHandler.
func NewContractAdminHandler(contracts store.ContractStore, players store.PlayerStore, audit *service.AuditPublisher) *ContractAdminHandler {
	return &ContractAdminHandler{contracts: contracts, players: players, audit: audit}
}

// CreateContract handles POST /api/contracts. The player's display name
// and agent assignment are cached onto the contract at write time.
func (h *ContractAdminHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var contract domain.Contract
	if err := handler.DecodeJSON(r, &contract); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := contract.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	player, err := h.players.Get(r.Context(), contract.PlayerID)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if player == nil {
		handler.RespondError(w, domain.ErrValidation("unknown player: "+contract.PlayerID))
		return
	}
	contract.PlayerName = player.Name
	contract.AgentID = player.AgentID

	if contract.ID == "" {
		contract.ID = uuid.New().String()
	}
	if contract.Status == "" {
		contract.Status = domain.ContractPending
	}
	now := time.Now().UTC()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	if err := h.contracts.Create(r.Context(), &contract); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "created", "contract", contract.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusCreated, contract)
}

// UpdateContract handles PUT /api/contracts/{id}.
func (h *ContractAdminHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.contracts.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find contract", err))
		return
	}
	if existing == nil {
		handler.RespondError(w, domain.ErrNotFound("contract", id))
		return
	}

	var contract domain.Contract
	if err := handler.DecodeJSON(r, &contract); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	contract.ID = id
	contract.CreatedAt = existing.CreatedAt
	contract.UpdatedAt = time.Now().UTC()

	if err := contract.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	player, err := h.players.Get(r.Context(), contract.PlayerID)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find player", err))
		return
	}
	if player == nil {
		handler.RespondError(w, domain.ErrValidation("unknown player: "+contract.PlayerID))
		return
	}
	contract.PlayerName = player.Name
	contract.AgentID = player.AgentID

	if err := h.contracts.Update(r.Context(), &contract); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "updated", "contract", contract.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusOK, contract)
}

// DeleteContract handles DELETE /api/contracts/{id}.
func (h *ContractAdminHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.contracts.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "deleted", "contract", id, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/store"
)

// ContractHandler serves the authenticated contract read endpoints.
type ContractHandler struct {
	contracts store.ContractStore
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contracts store.ContractStore) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// ListContracts handles GET /api/contracts. Agent accounts only see
// contracts they brokered.
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contracts.List(r.Context())
	if err != nil {
		RespondError(w, domain.ErrInternal("list contracts", err))
		return
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil && claims.Role == auth.RoleAgent {
		scoped := contracts[:0:0]
		for _, c := range contracts {
			if c.AgentID == claims.AgentID {
				scoped = append(scoped, c)
			}
		}
		contracts = scoped
	}

	if contracts == nil {
		contracts = []domain.Contract{}
	}
	RespondJSON(w, http.StatusOK, contracts)
}

// GetContract handles GET /api/contracts/{id}.
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	contract, err := h.contracts.Get(r.Context(), id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find contract", err))
		return
	}
	if contract == nil {
		RespondError(w, domain.ErrNotFound("contract", id))
		return
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil &&
		claims.Role == auth.RoleAgent && contract.AgentID != claims.AgentID {
		RespondError(w, domain.ErrNotFound("contract", id))
		return
	}

	RespondJSON(w, http.StatusOK, contract)
}

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

// OperationsHandler covers the agency's internal books: staff records
// and the finance ledger. Finance routes sit behind RequireRole(owner)
// in the router; staff routes behind RequireRole(owner, admin).
type OperationsHandler struct {
	employees store.EmployeeStore
	finance   store.FinanceStore
	audit     *service.AuditPublisher
}

// NewOperationsHandler creates a new OperationsHandler.
func NewOperationsHandler(employees store.EmployeeStore, finance store.FinanceStore, audit *service.AuditPublisher) *OperationsHandler {
	return &OperationsHandler{employees: employees, finance: finance, audit: audit}
}

// ListEmployees handles GET /api/employees.
func (h *OperationsHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("list employees", err))
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	handler.RespondJSON(w, http.StatusOK, employees)
}

// CreateEmployee handles POST /api/employees.
func (h *OperationsHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee domain.Employee
	if err := handler.DecodeJSON(r, &employee); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := employee.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if err := h.employees.Create(r.Context(), &employee); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "created", "employee", employee.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/employees/{id}.
func (h *OperationsHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.employees.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find employee", err))
		return
	}
	if existing == nil {
		handler.RespondError(w, domain.ErrNotFound("employee", id))
		return
	}

	var employee domain.Employee
	if err := handler.DecodeJSON(r, &employee); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	employee.ID = id
	employee.CreatedAt = existing.CreatedAt
	employee.UpdatedAt = time.Now().UTC()

	if err := employee.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if err := h.employees.Update(r.Context(), &employee); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "updated", "employee", employee.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/employees/{id}.
func (h *OperationsHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employees.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "deleted", "employee", id, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

// ListFinanceRecords handles GET /api/finance.
func (h *OperationsHandler) ListFinanceRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.finance.List(r.Context())
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("list finance records", err))
		return
	}
	if records == nil {
		records = []domain.FinancialRecord{}
	}
	handler.RespondJSON(w, http.StatusOK, records)
}

// CreateFinanceRecord handles POST /api/finance.
func (h *OperationsHandler) CreateFinanceRecord(w http.ResponseWriter, r *http.Request) {
	var record domain.FinancialRecord
	if err := handler.DecodeJSON(r, &record); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := record.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := h.finance.Create(r.Context(), &record); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "created", "finance_record", record.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusCreated, record)
}

// UpdateFinanceRecord handles PUT /api/finance/{id}.
func (h *OperationsHandler) UpdateFinanceRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.finance.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("find finance record", err))
		return
	}
	if existing == nil {
		handler.RespondError(w, domain.ErrNotFound("finance record", id))
		return
	}

	var record domain.FinancialRecord
	if err := handler.DecodeJSON(r, &record); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	record.ID = id
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now().UTC()

	if err := record.Validate(); err != nil {
		handler.RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	if err := h.finance.Update(r.Context(), &record); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "updated", "finance_record", record.ID, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusOK, record)
}

// DeleteFinanceRecord handles DELETE /api/finance/{id}.
func (h *OperationsHandler) DeleteFinanceRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.finance.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}

	h.audit.Record(r.Context(), "deleted", "finance_record", id, auth.SubjectFromContext(r.Context()))
	handler.RespondJSON(w, http.StatusNoContent, nil)
}

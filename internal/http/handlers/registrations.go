package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regdesk/regdesk/internal/dispatch"
	"github.com/regdesk/regdesk/internal/domain/registration"
)

type RegistrationStore interface {
	Create(kind registration.Kind, f registration.Fields) (registration.Registration, error)
	GetByID(id string) (registration.Registration, error)
	List() []registration.Registration
}

type Dispatcher interface {
	Dispatch(ctx context.Context, id string) (dispatch.Result, error)
	Resend(ctx context.Context, id string) (dispatch.Result, error)
}

type RegistrationHandler struct {
	repo RegistrationStore
	svc  Dispatcher
}

func NewRegistrationHandler(repo RegistrationStore, svc Dispatcher) *RegistrationHandler {
	return &RegistrationHandler{repo: repo, svc: svc}
}

// SubmitRegistrationRequest is the flat form payload. Type selects the kind;
// the domain validator decides which of the remaining fields matter.
type SubmitRegistrationRequest struct {
	Type string `json:"type" binding:"required,oneof=attendee business"`
	registration.Fields
}

func (h *RegistrationHandler) Submit(ctx *gin.Context) {
	var req SubmitRegistrationRequest

	if !BindJSON(ctx, &req) {
		return
	}

	kind := registration.Kind(req.Type)

	if fieldErrs := registration.Validate(kind, req.Fields); len(fieldErrs) > 0 {
		// returned as data; nothing was stored
		RespondValidationFailed(ctx, fieldErrs)
		return
	}

	reg, err := h.repo.Create(kind, req.Fields)

	if err != nil {
		RespondInternal(ctx, "Could not create registration")
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

func (h *RegistrationHandler) Dispatch(ctx *gin.Context) {
	id := ctx.Param("id")

	if !registration.IsID(id) {
		RespondBadRequest(ctx, "registration id must look like REG-001", nil)
		return
	}

	result, err := h.svc.Dispatch(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			RespondNotFound(ctx, "Registration not found")
			return
		}

		RespondInternal(ctx, "Could not dispatch confirmation")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *RegistrationHandler) Resend(ctx *gin.Context) {
	id := ctx.Param("id")

	if !registration.IsID(id) {
		RespondBadRequest(ctx, "registration id must look like REG-001", nil)
		return
	}

	result, err := h.svc.Resend(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			RespondNotFound(ctx, "Registration not found")
			return
		}

		RespondInternal(ctx, "Could not resend confirmation")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *RegistrationHandler) List(ctx *gin.Context) {
	regs := h.repo.List()

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"count":         len(regs),
		"registrations": regs,
	})
}

func (h *RegistrationHandler) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	if !registration.IsID(id) {
		RespondBadRequest(ctx, "registration id must look like REG-001", nil)
		return
	}

	reg, err := h.repo.GetByID(id)

	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			RespondNotFound(ctx, "Registration not found")
			return
		}

		RespondInternal(ctx, "Could not load registration")
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Stats(ctx *gin.Context) {
	summary := registration.Aggregate(h.repo.List())

	RespondJSONWithETag(ctx, http.StatusOK, summary)
}

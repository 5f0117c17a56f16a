package contracts

import (
	"errors"

	contractsvc "funeraria-backend/internal/application/contracts"
	"funeraria-backend/internal/application/inventory"
	"funeraria-backend/internal/domain"
	"funeraria-backend/internal/middleware"
	"funeraria-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *contractsvc.Service
}

// actor reads the identity resolved by middleware.RequireActor. Authentication
// itself happens upstream; requests without identity never reach the handlers.
func actor(c *fiber.Ctx) (contractsvc.ActorContext, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		return contractsvc.ActorContext{}, false
	}
	return contractsvc.ActorContext{UserID: a.UserID, BranchID: a.BranchID}, true
}

// POST /api/v1/contracts
func (h *Handlers) Create(c *fiber.Ctx) error {
	act, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Missing identity headers")
	}

	var req contractsvc.Request
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	contract, err := h.Service.Finalize(c.Context(), act, &req)
	if err != nil {
		return writeError(c, err)
	}
	return response.SuccessCreated(c, "Contract finalized successfully", contract, nil)
}

// GET /api/v1/contracts/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid contract id", fiber.StatusBadRequest, nil)
	}
	contract, err := h.Service.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Contract fetched successfully", contract, nil)
}

// PUT /api/v1/contracts/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	act, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Missing identity headers")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid contract id", fiber.StatusBadRequest, nil)
	}

	var req contractsvc.Request
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	contract, err := h.Service.Update(c.Context(), act, id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Contract updated successfully", contract, nil)
}

// POST /api/v1/contracts/:id/convert
func (h *Handlers) Convert(c *fiber.Ctx) error {
	act, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Missing identity headers")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid contract id", fiber.StatusBadRequest, nil)
	}

	var body struct {
		Deceased *contractsvc.DeceasedInput `json:"deceased"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	contract, err := h.Service.Convert(c.Context(), act, id, body.Deceased)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Contract converted successfully", contract, nil)
}

// PATCH /api/v1/contracts/:id/status
func (h *Handlers) ChangeStatus(c *fiber.Ctx) error {
	act, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Missing identity headers")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid contract id", fiber.StatusBadRequest, nil)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	status, err := domain.ParseContractStatus(body.Status)
	if err != nil {
		return response.Error(c, "Invalid status", fiber.StatusBadRequest, nil)
	}

	contract, err := h.Service.ChangeStatus(c.Context(), act, id, status)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Contract status updated successfully", contract, nil)
}

// DELETE /api/v1/contracts/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	act, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Missing identity headers")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid contract id", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.SoftDelete(c.Context(), act, id); err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Contract deleted successfully", nil, nil)
}

// writeError maps engine errors onto the response envelope: field-level
// validation → 400, stock conflict → 409, missing aggregate → 404.
func writeError(c *fiber.Ctx, err error) error {
	var verr *contractsvc.ValidationError
	if errors.As(err, &verr) {
		return response.ValidationFailed(c, verr.Fields)
	}
	var stockErr *inventory.ErrInsufficientStock
	if errors.As(err, &stockErr) {
		return response.Conflict(c, stockErr.Error())
	}
	switch {
	case errors.Is(err, contractsvc.ErrContractNotFound):
		return response.Error(c, "Contract not found", fiber.StatusNotFound, nil)
	case errors.Is(err, contractsvc.ErrInvalidTransition), errors.Is(err, contractsvc.ErrAlreadyImmediate):
		return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
	}
	return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
}

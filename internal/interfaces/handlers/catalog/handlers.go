package catalog

import (
	catalogsvc "funeraria-backend/internal/application/catalog"
	"funeraria-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *catalogsvc.Service
}

// GET /api/v1/catalog/services
func (h *Handlers) GetServices(c *fiber.Ctx) error {
	items, err := h.Service.ListServices(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Services fetched successfully", items, nil)
}

// GET /api/v1/catalog/products
func (h *Handlers) GetProducts(c *fiber.Ctx) error {
	items, err := h.Service.ListProducts(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Products fetched successfully", items, nil)
}

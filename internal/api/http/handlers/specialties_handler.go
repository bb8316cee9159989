package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/medcore/auth-service/internal/api/dto"
	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/service"
)

// SpecialtiesHandler exposes specialty CRUD endpoints.
type SpecialtiesHandler struct {
	specialties *service.SpecialtyService
}

// NewSpecialtiesHandler constructs handler.
func NewSpecialtiesHandler(specialties *service.SpecialtyService) *SpecialtiesHandler {
	return &SpecialtiesHandler{specialties: specialties}
}

// Create handles POST /specialties.
func (h *SpecialtiesHandler) Create(c *fiber.Ctx) error {
	var req dto.SpecialtyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	spec, err := h.specialties.Create(c.UserContext(), req.Name, req.Description, req.DepartmentID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewSpecialtyResponse(spec),
	})
}

// List handles GET /specialties.
func (h *SpecialtiesHandler) List(c *fiber.Ctx) error {
	specs, err := h.specialties.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": specialtyResponses(specs)})
}

// ListByDepartment handles GET /specialties/department/:departmentId.
func (h *SpecialtiesHandler) ListByDepartment(c *fiber.Ctx) error {
	specs, err := h.specialties.ListByDepartment(c.UserContext(), c.Params("departmentId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": specialtyResponses(specs)})
}

// Get handles GET /specialties/:id.
func (h *SpecialtiesHandler) Get(c *fiber.Ctx) error {
	spec, err := h.specialties.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSpecialtyResponse(spec)})
}

// Update handles PUT /specialties/:id.
func (h *SpecialtiesHandler) Update(c *fiber.Ctx) error {
	var req dto.SpecialtyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	spec, err := h.specialties.Update(c.UserContext(), c.Params("id"), service.SpecialtyInput{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSpecialtyResponse(spec)})
}

// Delete handles DELETE /specialties/:id.
func (h *SpecialtiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.specialties.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "specialty deleted successfully"},
	})
}

func specialtyResponses(specs []domain.Specialty) []dto.SpecialtyResponse {
	resp := make([]dto.SpecialtyResponse, 0, len(specs))
	for i := range specs {
		resp = append(resp, dto.NewSpecialtyResponse(&specs[i]))
	}
	return resp
}

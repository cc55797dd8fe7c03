package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// ForkliftController handles the fleet asset endpoints
type ForkliftController struct {
	DB *gorm.DB
}

func NewForkliftController(db *gorm.DB) *ForkliftController {
	return &ForkliftController{DB: db}
}

// forkliftCode derives the display code from the type and the row id, e.g.
// "G001" for the first gas forklift.
func forkliftCode(forkliftType string, id uint) string {
	prefix := "G"
	switch forkliftType {
	case Models.ForkliftTypeElectric:
		prefix = "E"
	case Models.ForkliftTypeRetractable:
		prefix = "R"
	}
	return fmt.Sprintf("%s%03d", prefix, id)
}

// GetForklifts lists forklifts filtered by search, status and type
func (c *ForkliftController) GetForklifts(ctx *fiber.Ctx) error {
	var forklifts []Models.Forklift
	if err := c.DB.Order("id").Find(&forklifts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve forklifts"})
	}

	filtered := Calculations.FilterForklifts(forklifts, Calculations.ForkliftFilter{
		Query:  ctx.Query("search"),
		Status: ctx.Query("status"),
		Type:   ctx.Query("type"),
	})

	return ctx.JSON(filtered)
}

// GetForklift retrieves a single forklift by ID
func (c *ForkliftController) GetForklift(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid forklift ID"})
	}

	var forklift Models.Forklift
	if err := c.DB.First(&forklift, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	return ctx.JSON(forklift)
}

// CreateForklift creates a new forklift
func (c *ForkliftController) CreateForklift(ctx *fiber.Ctx) error {
	var req Models.ForkliftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	forklift := Models.Forklift{
		ModelName:       req.ModelName,
		Type:            req.Type,
		Capacity:        req.Capacity,
		AcquisitionDate: req.AcquisitionDate,
		LastMaintenance: req.LastMaintenance,
		Status:          req.Status,
		HourMeter:       req.HourMeter,
	}

	if err := c.DB.Create(&forklift).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create forklift"})
	}

	forklift.Code = forkliftCode(forklift.Type, forklift.ID)
	if err := c.DB.Model(&forklift).Update("code", forklift.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create forklift"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  fmt.Sprintf("%s foi adicionada com sucesso!", forklift.ModelName),
		"forklift": forklift,
	})
}

// UpdateForklift replaces the editable fields of an existing forklift
func (c *ForkliftController) UpdateForklift(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid forklift ID"})
	}

	var forklift Models.Forklift
	if err := c.DB.First(&forklift, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	var req Models.ForkliftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	forklift.ModelName = req.ModelName
	forklift.Type = req.Type
	forklift.Capacity = req.Capacity
	forklift.AcquisitionDate = req.AcquisitionDate
	forklift.LastMaintenance = req.LastMaintenance
	forklift.Status = req.Status
	forklift.HourMeter = req.HourMeter

	if err := c.DB.Save(&forklift).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update forklift"})
	}

	return ctx.JSON(fiber.Map{
		"message":  fmt.Sprintf("%s foi atualizada com sucesso!", forklift.ModelName),
		"forklift": forklift,
	})
}

// DeleteForklift removes a forklift after explicit confirmation. Operations
// and supply records that reference it keep their denormalized display
// fields; there is no cascading cleanup.
func (c *ForkliftController) DeleteForklift(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid forklift ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir esta empilhadeira?",
		})
	}

	var forklift Models.Forklift
	if err := c.DB.First(&forklift, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	if err := c.DB.Delete(&forklift).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete forklift"})
	}

	return ctx.JSON(fiber.Map{"message": "A empilhadeira foi excluída com sucesso."})
}

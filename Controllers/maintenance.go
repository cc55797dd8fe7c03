package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// MaintenanceController handles maintenance records. CompletedDate tracks
// the status: stamped on the transition into Concluído, cleared on the way
// out.
type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

// forkliftCodes maps forklift row ids to display codes for the filter layer.
func (c *MaintenanceController) forkliftCodes() map[uint]string {
	var forklifts []Models.Forklift
	c.DB.Find(&forklifts)
	codes := make(map[uint]string, len(forklifts))
	for _, forklift := range forklifts {
		codes[forklift.ID] = forklift.Code
	}
	return codes
}

// GetMaintenances lists maintenance records filtered by search, status and forklift
func (c *MaintenanceController) GetMaintenances(ctx *fiber.Ctx) error {
	var maintenances []Models.Maintenance
	if err := c.DB.Order("id").Find(&maintenances).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve maintenances"})
	}

	filtered := Calculations.FilterMaintenances(maintenances, c.forkliftCodes(), Calculations.MaintenanceFilter{
		Query:    ctx.Query("search"),
		Status:   ctx.Query("status"),
		Forklift: ctx.Query("forklift"),
	})

	return ctx.JSON(filtered)
}

// GetMaintenance retrieves a single maintenance record by ID
func (c *MaintenanceController) GetMaintenance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	var maintenance Models.Maintenance
	if err := c.DB.First(&maintenance, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Manutenção não encontrada"})
	}

	return ctx.JSON(maintenance)
}

// applyCompletion keeps CompletedDate consistent with the status.
func applyCompletion(maintenance *Models.Maintenance, status string, now time.Time) {
	if status == Models.MaintenanceCompleted {
		if maintenance.Status != Models.MaintenanceCompleted || maintenance.CompletedDate == "" {
			maintenance.CompletedDate = Calculations.FormatDateBR(now)
		}
	} else {
		maintenance.CompletedDate = ""
	}
	maintenance.Status = status
}

// CreateMaintenance registers a reported issue
func (c *MaintenanceController) CreateMaintenance(ctx *fiber.Ctx) error {
	var req Models.MaintenanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	var forklift Models.Forklift
	if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	now := time.Now()
	maintenance := Models.Maintenance{
		ForkliftID:    forklift.ID,
		ForkliftModel: forklift.ModelName,
		Issue:         req.Issue,
		ReportedBy:    req.ReportedBy,
		ReportedDate:  Calculations.FormatDateBR(now),
	}
	applyCompletion(&maintenance, req.Status, now)

	if err := c.DB.Create(&maintenance).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create maintenance"})
	}

	maintenance.Code = fmt.Sprintf("MNT%03d", maintenance.ID)
	if err := c.DB.Model(&maintenance).Update("code", maintenance.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create maintenance"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "A manutenção foi registrada com sucesso.",
		"maintenance": maintenance,
	})
}

// UpdateMaintenance replaces the editable fields of a maintenance record
func (c *MaintenanceController) UpdateMaintenance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	var maintenance Models.Maintenance
	if err := c.DB.First(&maintenance, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Manutenção não encontrada"})
	}

	var req Models.MaintenanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	if req.ForkliftID != maintenance.ForkliftID {
		var forklift Models.Forklift
		if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
		}
		maintenance.ForkliftID = forklift.ID
		maintenance.ForkliftModel = forklift.ModelName
	}

	maintenance.Issue = req.Issue
	maintenance.ReportedBy = req.ReportedBy
	applyCompletion(&maintenance, req.Status, time.Now())

	if err := c.DB.Save(&maintenance).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update maintenance"})
	}

	return ctx.JSON(fiber.Map{
		"message":     "A manutenção foi atualizada com sucesso.",
		"maintenance": maintenance,
	})
}

// DeleteMaintenance removes a maintenance record after explicit confirmation
func (c *MaintenanceController) DeleteMaintenance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir esta manutenção?",
		})
	}

	var maintenance Models.Maintenance
	if err := c.DB.First(&maintenance, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Manutenção não encontrada"})
	}

	if err := c.DB.Delete(&maintenance).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete maintenance"})
	}

	return ctx.JSON(fiber.Map{"message": "A manutenção foi excluída com sucesso."})
}

package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// BillingController handles service-billing entries. TotalAmount is a
// derived field: both create and update recompute it from hours and rate,
// ignoring whatever the client sent.
type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

// GetBillings lists billing entries with total and average amounts
func (c *BillingController) GetBillings(ctx *fiber.Ctx) error {
	var billings []Models.Billing
	if err := c.DB.Order("id").Find(&billings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve billings"})
	}

	return ctx.JSON(fiber.Map{
		"billings":       billings,
		"total_billed":   Calculations.TotalBilled(billings),
		"average_billed": Calculations.AverageBilled(billings),
	})
}

// GetBilling retrieves a single billing entry by ID
func (c *BillingController) GetBilling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid billing ID"})
	}

	var billing Models.Billing
	if err := c.DB.First(&billing, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faturamento não encontrado"})
	}

	return ctx.JSON(billing)
}

// CreateBilling registers a billing entry
func (c *BillingController) CreateBilling(ctx *fiber.Ctx) error {
	var req Models.BillingRequest
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

	billing := Models.Billing{
		Date:          req.Date,
		ForkliftID:    forklift.ID,
		ForkliftModel: forklift.ModelName,
		OperatorName:  req.OperatorName,
		Description:   req.Description,
		Hours:         req.Hours,
		HourlyRate:    req.HourlyRate,
		TotalAmount:   Calculations.BillingTotal(req.Hours, req.HourlyRate),
	}

	if err := c.DB.Create(&billing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create billing"})
	}

	billing.Code = fmt.Sprintf("FAT%03d", billing.ID)
	if err := c.DB.Model(&billing).Update("code", billing.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create billing"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "O faturamento foi registrado com sucesso.",
		"billing": billing,
	})
}

// UpdateBilling replaces the editable fields of a billing entry
func (c *BillingController) UpdateBilling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid billing ID"})
	}

	var billing Models.Billing
	if err := c.DB.First(&billing, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faturamento não encontrado"})
	}

	var req Models.BillingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	if req.ForkliftID != billing.ForkliftID {
		var forklift Models.Forklift
		if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
		}
		billing.ForkliftID = forklift.ID
		billing.ForkliftModel = forklift.ModelName
	}

	billing.Date = req.Date
	billing.OperatorName = req.OperatorName
	billing.Description = req.Description
	billing.Hours = req.Hours
	billing.HourlyRate = req.HourlyRate
	billing.TotalAmount = Calculations.BillingTotal(req.Hours, req.HourlyRate)

	if err := c.DB.Save(&billing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update billing"})
	}

	return ctx.JSON(fiber.Map{
		"message": "O faturamento foi atualizado com sucesso.",
		"billing": billing,
	})
}

// DeleteBilling removes a billing entry after explicit confirmation
func (c *BillingController) DeleteBilling(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid billing ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir este faturamento?",
		})
	}

	var billing Models.Billing
	if err := c.DB.First(&billing, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faturamento não encontrado"})
	}

	if err := c.DB.Delete(&billing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete billing"})
	}

	return ctx.JSON(fiber.Map{"message": "O faturamento foi excluído com sucesso."})
}

package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// GasSupplyController handles refueling records. Efficiency is derived on
// every read, never stored.
type GasSupplyController struct {
	DB *gorm.DB
}

func NewGasSupplyController(db *gorm.DB) *GasSupplyController {
	return &GasSupplyController{DB: db}
}

func (c *GasSupplyController) forkliftCodes() map[uint]string {
	var forklifts []Models.Forklift
	c.DB.Find(&forklifts)
	codes := make(map[uint]string, len(forklifts))
	for _, forklift := range forklifts {
		codes[forklift.ID] = forklift.Code
	}
	return codes
}

// GetGasSupplies lists refuels filtered by search, forklift and date, with a
// totals block for the page's counter cards
func (c *GasSupplyController) GetGasSupplies(ctx *fiber.Ctx) error {
	var supplies []Models.GasSupply
	if err := c.DB.Order("id").Find(&supplies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve gas supplies"})
	}

	filtered := Calculations.FilterGasSupplies(supplies, c.forkliftCodes(), Calculations.GasSupplyFilter{
		Query:    ctx.Query("search"),
		Forklift: ctx.Query("forklift"),
		Date:     ctx.Query("date"),
	})

	for i := range filtered {
		filtered[i].Efficiency = Calculations.SupplyEfficiency(filtered[i].Quantity, filtered[i].HourMeterBefore, filtered[i].HourMeterAfter)
	}

	return ctx.JSON(fiber.Map{
		"supplies":            filtered,
		"total_supplies":      len(filtered),
		"total_consumption":   Calculations.TotalQuantity(filtered),
		"average_consumption": Calculations.AverageQuantity(filtered),
	})
}

// GetGasSupply retrieves a single refuel by ID
func (c *GasSupplyController) GetGasSupply(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid gas supply ID"})
	}

	var supply Models.GasSupply
	if err := c.DB.First(&supply, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Abastecimento não encontrado"})
	}

	supply.Efficiency = Calculations.SupplyEfficiency(supply.Quantity, supply.HourMeterBefore, supply.HourMeterAfter)
	return ctx.JSON(supply)
}

// CreateGasSupply registers a refuel. The hour-meter pair is validated here:
// the reading after refueling must exceed the one before.
func (c *GasSupplyController) CreateGasSupply(ctx *fiber.Ctx) error {
	var req Models.GasSupplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}
	if req.HourMeterAfter <= req.HourMeterBefore {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Erro de validação",
			"message": "O horímetro final deve ser maior que o inicial",
		})
	}

	var forklift Models.Forklift
	if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	supply := Models.GasSupply{
		Date:            req.Date,
		ForkliftID:      forklift.ID,
		ForkliftModel:   forklift.ModelName,
		Quantity:        req.Quantity,
		HourMeterBefore: req.HourMeterBefore,
		HourMeterAfter:  req.HourMeterAfter,
		Operator:        req.Operator,
	}

	if err := c.DB.Create(&supply).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create gas supply"})
	}

	supply.Code = fmt.Sprintf("GS%03d", supply.ID)
	if err := c.DB.Model(&supply).Update("code", supply.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create gas supply"})
	}

	supply.Efficiency = Calculations.SupplyEfficiency(supply.Quantity, supply.HourMeterBefore, supply.HourMeterAfter)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "O abastecimento foi registrado com sucesso.",
		"supply":  supply,
	})
}

// UpdateGasSupply replaces the editable fields of a refuel
func (c *GasSupplyController) UpdateGasSupply(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid gas supply ID"})
	}

	var supply Models.GasSupply
	if err := c.DB.First(&supply, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Abastecimento não encontrado"})
	}

	var req Models.GasSupplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}
	if req.HourMeterAfter <= req.HourMeterBefore {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Erro de validação",
			"message": "O horímetro final deve ser maior que o inicial",
		})
	}

	if req.ForkliftID != supply.ForkliftID {
		var forklift Models.Forklift
		if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
		}
		supply.ForkliftID = forklift.ID
		supply.ForkliftModel = forklift.ModelName
	}

	supply.Date = req.Date
	supply.Quantity = req.Quantity
	supply.HourMeterBefore = req.HourMeterBefore
	supply.HourMeterAfter = req.HourMeterAfter
	supply.Operator = req.Operator

	if err := c.DB.Save(&supply).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update gas supply"})
	}

	supply.Efficiency = Calculations.SupplyEfficiency(supply.Quantity, supply.HourMeterBefore, supply.HourMeterAfter)
	return ctx.JSON(fiber.Map{
		"message": "O abastecimento foi atualizado com sucesso.",
		"supply":  supply,
	})
}

// DeleteGasSupply removes a refuel after explicit confirmation
func (c *GasSupplyController) DeleteGasSupply(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid gas supply ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir este abastecimento?",
		})
	}

	var supply Models.GasSupply
	if err := c.DB.First(&supply, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Abastecimento não encontrado"})
	}

	if err := c.DB.Delete(&supply).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete gas supply"})
	}

	return ctx.JSON(fiber.Map{"message": "O abastecimento foi excluído com sucesso."})
}

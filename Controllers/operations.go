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

// OperationController handles the assignment of operators to forklifts.
// The invariant held here: EndTime is set if and only if the operation is
// completed.
type OperationController struct {
	DB *gorm.DB
}

func NewOperationController(db *gorm.DB) *OperationController {
	return &OperationController{DB: db}
}

// GetOperations lists operations filtered by search, status and sector,
// each carrying its formatted duration
func (c *OperationController) GetOperations(ctx *fiber.Ctx) error {
	var operations []Models.Operation
	if err := c.DB.Order("id").Find(&operations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve operations"})
	}

	filtered := Calculations.FilterOperations(operations, Calculations.OperationFilter{
		Query:  ctx.Query("search"),
		Status: ctx.Query("status"),
		Sector: ctx.Query("sector"),
	})

	now := time.Now()
	for i := range filtered {
		filtered[i].Duration = Calculations.FormatOperationDuration(filtered[i].StartTime, filtered[i].EndTime, now)
	}

	return ctx.JSON(filtered)
}

// GetOperation retrieves a single operation by ID
func (c *OperationController) GetOperation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operation ID"})
	}

	var operation Models.Operation
	if err := c.DB.First(&operation, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operação não encontrada"})
	}

	operation.Duration = Calculations.FormatOperationDuration(operation.StartTime, operation.EndTime, time.Now())
	return ctx.JSON(operation)
}

// applyTimes enforces the status/end-time invariant: a completed operation
// gets an end bound (the submitted one, or now), an active one has none.
func applyTimes(operation *Models.Operation, req Models.OperationRequest) error {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return fmt.Errorf("start_time must be RFC 3339")
	}
	operation.StartTime = start
	operation.Status = req.Status

	if req.Status == Models.OperationCompleted {
		end := time.Now()
		if req.EndTime != "" {
			end, err = time.Parse(time.RFC3339, req.EndTime)
			if err != nil {
				return fmt.Errorf("end_time must be RFC 3339")
			}
		}
		operation.EndTime = &end
	} else {
		operation.EndTime = nil
	}
	return nil
}

// CreateOperation creates a new operation, denormalizing the operator name
// and forklift model at creation time
func (c *OperationController) CreateOperation(ctx *fiber.Ctx) error {
	var req Models.OperationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	var operator Models.Operator
	if err := c.DB.First(&operator, req.OperatorID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operador não encontrado"})
	}
	var forklift Models.Forklift
	if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
	}

	operation := Models.Operation{
		OperatorID:       operator.ID,
		OperatorName:     operator.Name,
		ForkliftID:       forklift.ID,
		ForkliftModel:    forklift.ModelName,
		Sector:           req.Sector,
		InitialHourMeter: req.InitialHourMeter,
		CurrentHourMeter: req.CurrentHourMeter,
		GasConsumption:   req.GasConsumption,
	}
	if err := applyTimes(&operation, req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Create(&operation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create operation"})
	}

	operation.Code = fmt.Sprintf("OPE%03d", operation.ID)
	if err := c.DB.Model(&operation).Update("code", operation.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create operation"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "A operação foi criada com sucesso.",
		"operation": operation,
	})
}

// UpdateOperation replaces the editable fields of an existing operation.
// The denormalized operator/forklift display fields are refreshed only when
// the reference itself changes.
func (c *OperationController) UpdateOperation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operation ID"})
	}

	var operation Models.Operation
	if err := c.DB.First(&operation, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operação não encontrada"})
	}

	var req Models.OperationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	if req.OperatorID != operation.OperatorID {
		var operator Models.Operator
		if err := c.DB.First(&operator, req.OperatorID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operador não encontrado"})
		}
		operation.OperatorID = operator.ID
		operation.OperatorName = operator.Name
	}
	if req.ForkliftID != operation.ForkliftID {
		var forklift Models.Forklift
		if err := c.DB.First(&forklift, req.ForkliftID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empilhadeira não encontrada"})
		}
		operation.ForkliftID = forklift.ID
		operation.ForkliftModel = forklift.ModelName
	}

	operation.Sector = req.Sector
	operation.InitialHourMeter = req.InitialHourMeter
	operation.CurrentHourMeter = req.CurrentHourMeter
	operation.GasConsumption = req.GasConsumption
	if err := applyTimes(&operation, req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Save(&operation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update operation"})
	}

	return ctx.JSON(fiber.Map{
		"message":   "A operação foi atualizada com sucesso.",
		"operation": operation,
	})
}

// DeleteOperation removes an operation after explicit confirmation
func (c *OperationController) DeleteOperation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operation ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir esta operação?",
		})
	}

	var operation Models.Operation
	if err := c.DB.First(&operation, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operação não encontrada"})
	}

	if err := c.DB.Delete(&operation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete operation"})
	}

	return ctx.JSON(fiber.Map{"message": "A operação foi excluída com sucesso."})
}

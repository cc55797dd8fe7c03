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

// OperatorController handles operator endpoints. Certificate statuses are
// derived fields: every write path recomputes them from the expiration
// dates before the row is stored.
type OperatorController struct {
	DB *gorm.DB
}

func NewOperatorController(db *gorm.DB) *OperatorController {
	return &OperatorController{DB: db}
}

// GetOperators lists operators filtered by search, role and certificate bucket
func (c *OperatorController) GetOperators(ctx *fiber.Ctx) error {
	var operators []Models.Operator
	if err := c.DB.Order("id").Find(&operators).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve operators"})
	}

	filtered := Calculations.FilterOperators(operators, Calculations.OperatorFilter{
		Query:        ctx.Query("search"),
		Role:         ctx.Query("role"),
		Certificates: ctx.Query("certificates"),
	})

	return ctx.JSON(filtered)
}

// GetOperator retrieves a single operator by ID
func (c *OperatorController) GetOperator(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	var operator Models.Operator
	if err := c.DB.First(&operator, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operador não encontrado"})
	}

	return ctx.JSON(operator)
}

// CreateOperator creates a new operator
func (c *OperatorController) CreateOperator(ctx *fiber.Ctx) error {
	var req Models.OperatorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	registration := req.RegistrationDate
	if registration == "" {
		registration = Calculations.FormatDateBR(time.Now())
	}

	operator := Models.Operator{
		Name:              req.Name,
		Role:              req.Role,
		CPF:               req.CPF,
		Contact:           req.Contact,
		Shift:             req.Shift,
		RegistrationDate:  registration,
		ASOExpirationDate: req.ASOExpirationDate,
		NRExpirationDate:  req.NRExpirationDate,
	}
	Calculations.RefreshCertificates(&operator, time.Now())

	if err := c.DB.Create(&operator).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create operator"})
	}

	operator.Code = fmt.Sprintf("OP%03d", operator.ID)
	if err := c.DB.Model(&operator).Update("code", operator.Code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create operator"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  fmt.Sprintf("%s foi adicionado com sucesso!", operator.Name),
		"operator": operator,
	})
}

// UpdateOperator replaces the editable fields of an existing operator
func (c *OperatorController) UpdateOperator(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	var operator Models.Operator
	if err := c.DB.First(&operator, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operador não encontrado"})
	}

	var req Models.OperatorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	operator.Name = req.Name
	operator.Role = req.Role
	operator.CPF = req.CPF
	operator.Contact = req.Contact
	operator.Shift = req.Shift
	if req.RegistrationDate != "" {
		operator.RegistrationDate = req.RegistrationDate
	}
	operator.ASOExpirationDate = req.ASOExpirationDate
	operator.NRExpirationDate = req.NRExpirationDate
	Calculations.RefreshCertificates(&operator, time.Now())

	if err := c.DB.Save(&operator).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update operator"})
	}

	return ctx.JSON(fiber.Map{
		"message":  fmt.Sprintf("%s foi atualizado com sucesso!", operator.Name),
		"operator": operator,
	})
}

// DeleteOperator removes an operator after explicit confirmation
func (c *OperatorController) DeleteOperator(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	if confirmRequired(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Confirmação necessária",
			"message": "Tem certeza que deseja excluir este operador?",
		})
	}

	var operator Models.Operator
	if err := c.DB.First(&operator, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Operador não encontrado"})
	}

	if err := c.DB.Delete(&operator).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete operator"})
	}

	return ctx.JSON(fiber.Map{"message": "O operador foi excluído com sucesso."})
}

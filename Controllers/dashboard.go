package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// DashboardController serves the overview counters
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats tallies the collections into the dashboard counter cards
func (c *DashboardController) GetStats(ctx *fiber.Ctx) error {
	var forklifts []Models.Forklift
	var operators []Models.Operator
	var operations []Models.Operation
	var maintenances []Models.Maintenance

	if err := c.DB.Find(&forklifts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dashboard data"})
	}
	if err := c.DB.Find(&operators).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dashboard data"})
	}
	if err := c.DB.Find(&operations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dashboard data"})
	}
	if err := c.DB.Find(&maintenances).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dashboard data"})
	}

	stats := Calculations.BuildDashboardStats(forklifts, operators, operations, maintenances)
	return ctx.JSON(stats)
}

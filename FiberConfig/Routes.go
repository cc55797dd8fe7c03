package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Frota/Controllers"
	"Frota/middleware"
)

// SetupRoutes registers the API surface on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	forkliftController := Controllers.NewForkliftController(db)
	operatorController := Controllers.NewOperatorController(db)
	operationController := Controllers.NewOperationController(db)
	maintenanceController := Controllers.NewMaintenanceController(db)
	gasSupplyController := Controllers.NewGasSupplyController(db)
	billingController := Controllers.NewBillingController(db)
	dashboardController := Controllers.NewDashboardController(db)
	reportController := Controllers.NewReportController(db)

	api := app.Group("/api")

	forklifts := api.Group("/forklifts")
	forklifts.Get("/", forkliftController.GetForklifts)
	forklifts.Post("/", forkliftController.CreateForklift)
	forklifts.Get("/:id", forkliftController.GetForklift)
	forklifts.Put("/:id", forkliftController.UpdateForklift)
	forklifts.Delete("/:id", forkliftController.DeleteForklift)

	operators := api.Group("/operators")
	operators.Get("/", operatorController.GetOperators)
	operators.Post("/", operatorController.CreateOperator)
	operators.Get("/:id", operatorController.GetOperator)
	operators.Put("/:id", operatorController.UpdateOperator)
	operators.Delete("/:id", operatorController.DeleteOperator)

	operations := api.Group("/operations")
	operations.Get("/", operationController.GetOperations)
	operations.Post("/", operationController.CreateOperation)
	operations.Get("/:id", operationController.GetOperation)
	operations.Put("/:id", operationController.UpdateOperation)
	operations.Delete("/:id", operationController.DeleteOperation)

	maintenances := api.Group("/maintenances")
	maintenances.Get("/", maintenanceController.GetMaintenances)
	maintenances.Post("/", maintenanceController.CreateMaintenance)
	maintenances.Get("/:id", maintenanceController.GetMaintenance)
	maintenances.Put("/:id", maintenanceController.UpdateMaintenance)
	maintenances.Delete("/:id", maintenanceController.DeleteMaintenance)

	gasSupplies := api.Group("/gas-supplies")
	gasSupplies.Get("/", gasSupplyController.GetGasSupplies)
	gasSupplies.Post("/", gasSupplyController.CreateGasSupply)
	gasSupplies.Get("/:id", gasSupplyController.GetGasSupply)
	gasSupplies.Put("/:id", gasSupplyController.UpdateGasSupply)
	gasSupplies.Delete("/:id", gasSupplyController.DeleteGasSupply)

	billings := api.Group("/billings")
	billings.Get("/", billingController.GetBillings)
	billings.Post("/", billingController.CreateBilling)
	billings.Get("/:id", billingController.GetBilling)
	billings.Put("/:id", billingController.UpdateBilling)
	billings.Delete("/:id", billingController.DeleteBilling)

	api.Get("/dashboard", dashboardController.GetStats)
	api.Get("/reports/fleet", reportController.ExportFleetReport)

	// Unmatched routes get a static not-found body instead of an error page
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Página não encontrada",
		})
	})
}

// NewApp builds the Fiber app with the shared middleware stack.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db)
	return app
}

// Listen starts the app on the configured port.
func Listen(app *fiber.App) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	logrus.WithField("port", port).Info("Server Up...")
	return app.Listen(fmt.Sprintf(":%s", port))
}

package Controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/Models"
)

// ReportController exports the fleet report as a spreadsheet
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportFleetReport builds an .xlsx with one sheet per collection plus the
// dashboard tallies. Dates stay dd/mm/yyyy and amounts are rendered as
// Brazilian Real.
func (c *ReportController) ExportFleetReport(ctx *fiber.Ctx) error {
	var forklifts []Models.Forklift
	var operators []Models.Operator
	var operations []Models.Operation
	var maintenances []Models.Maintenance
	var supplies []Models.GasSupply
	var billings []Models.Billing

	for _, query := range []error{
		c.DB.Order("id").Find(&forklifts).Error,
		c.DB.Order("id").Find(&operators).Error,
		c.DB.Order("id").Find(&operations).Error,
		c.DB.Order("id").Find(&maintenances).Error,
		c.DB.Order("id").Find(&supplies).Error,
		c.DB.Order("id").Find(&billings).Error,
	} {
		if query != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
		}
	}

	file := excelize.NewFile()
	defer file.Close()

	writeRow := func(sheet string, row int, values ...interface{}) {
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			file.SetCellValue(sheet, cell, value)
		}
	}

	sheet := "Empilhadeiras"
	file.SetSheetName("Sheet1", sheet)
	writeRow(sheet, 1, "Código", "Modelo", "Tipo", "Capacidade", "Aquisição", "Última Manutenção", "Status", "Horímetro")
	for i, forklift := range forklifts {
		writeRow(sheet, i+2, forklift.Code, forklift.ModelName, forklift.Type, forklift.Capacity,
			forklift.AcquisitionDate, forklift.LastMaintenance, forklift.Status, forklift.HourMeter)
	}

	sheet = "Operadores"
	file.NewSheet(sheet)
	writeRow(sheet, 1, "Código", "Nome", "Função", "CPF", "Turno", "Validade ASO", "Status ASO", "Validade NR", "Status NR")
	for i, operator := range operators {
		writeRow(sheet, i+2, operator.Code, operator.Name, operator.Role, operator.CPF, operator.Shift,
			operator.ASOExpirationDate, operator.ASOStatus, operator.NRExpirationDate, operator.NRStatus)
	}

	sheet = "Abastecimentos"
	file.NewSheet(sheet)
	writeRow(sheet, 1, "Código", "Data", "Empilhadeira", "Quantidade (L)", "Horímetro Inicial", "Horímetro Final", "Operador", "Eficiência (L/h)")
	for i, supply := range supplies {
		efficiency := Calculations.SupplyEfficiency(supply.Quantity, supply.HourMeterBefore, supply.HourMeterAfter)
		writeRow(sheet, i+2, supply.Code, supply.Date, supply.ForkliftModel, supply.Quantity,
			supply.HourMeterBefore, supply.HourMeterAfter, supply.Operator, fmt.Sprintf("%.2f", efficiency))
	}

	sheet = "Faturamento"
	file.NewSheet(sheet)
	writeRow(sheet, 1, "Código", "Data", "Empilhadeira", "Operador", "Horas", "Valor por Hora", "Valor Total")
	for i, billing := range billings {
		writeRow(sheet, i+2, billing.Code, billing.Date, billing.ForkliftModel, billing.OperatorName,
			billing.Hours, Calculations.FormatBRL(billing.HourlyRate), Calculations.FormatBRL(billing.TotalAmount))
	}
	writeRow(sheet, len(billings)+3, "Total Faturado", Calculations.FormatBRL(Calculations.TotalBilled(billings)))

	stats := Calculations.BuildDashboardStats(forklifts, operators, operations, maintenances)
	sheet = "Resumo"
	file.NewSheet(sheet)
	summary := [][]interface{}{
		{"Total de Empilhadeiras", stats.TotalForklifts},
		{"Em Operação", stats.OperationalForklifts},
		{"Paradas", stats.StoppedForklifts},
		{"Aguardando Manutenção", stats.MaintenanceForklifts},
		{"Total de Operadores", stats.TotalOperators},
		{"Certificados Regulares", stats.OperatorsWithValidCertificates},
		{"Próximos do Vencimento", stats.OperatorsWithWarningCertificates},
		{"Certificados Vencidos", stats.OperatorsWithExpiredCertificates},
		{"Operações Ativas", stats.ActiveOperations},
		{"Manutenções Pendentes", stats.PendingMaintenances},
	}
	for i, row := range summary {
		writeRow(sheet, i+1, row...)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-frota.xlsx"`)
	return ctx.Send(buffer.Bytes())
}

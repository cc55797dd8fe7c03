package Models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const dateLayoutBR = "02/01/2006"

// Seed loads the initial fleet data. Certificate dates are generated relative
// to the current day so the seeded statuses always agree with the dates.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&Forklift{}).Count(&count)
	if count > 0 {
		return nil
	}

	now := time.Now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dateLayoutBR)
	}

	forklifts := []Forklift{
		{Code: "G001", ModelName: "Toyota 8FGU25", Type: ForkliftTypeGas, Capacity: "2.500 kg", AcquisitionDate: "10/05/2022", LastMaintenance: "15/09/2023", Status: ForkliftStatusOperational, HourMeter: 12583},
		{Code: "E002", ModelName: "Hyster E50XN", Type: ForkliftTypeElectric, Capacity: "2.250 kg", AcquisitionDate: "22/11/2021", LastMaintenance: "30/10/2023", Status: ForkliftStatusOperational, HourMeter: 8452},
		{Code: "R003", ModelName: "Crown RR5725", Type: ForkliftTypeRetractable, Capacity: "1.800 kg", AcquisitionDate: "04/03/2022", LastMaintenance: "12/08/2023", Status: ForkliftStatusMaintenance, HourMeter: 10974},
		{Code: "G004", ModelName: "Yale GLP050", Type: ForkliftTypeGas, Capacity: "2.200 kg", AcquisitionDate: "18/07/2022", LastMaintenance: "05/11/2023", Status: ForkliftStatusStopped, HourMeter: 6782},
		{Code: "E005", ModelName: "Toyota 8FBMT30", Type: ForkliftTypeElectric, Capacity: "3.000 kg", AcquisitionDate: "25/02/2023", LastMaintenance: "10/11/2023", Status: ForkliftStatusOperational, HourMeter: 3209},
	}
	if err := db.Create(&forklifts).Error; err != nil {
		return fmt.Errorf("seeding forklifts: %w", err)
	}

	operators := []Operator{
		{Code: "OP001", Name: "Carlos Silva", Role: RoleOperator, CPF: "123.456.789-00", Contact: "(11) 98765-4321", Shift: "Manhã", RegistrationDate: "15/03/2022",
			ASOExpirationDate: day(200), NRExpirationDate: day(250), ASOStatus: CertificateRegular, NRStatus: CertificateRegular},
		{Code: "OP002", Name: "Maria Oliveira", Role: RoleOperator, CPF: "987.654.321-00", Contact: "(11) 91234-5678", Shift: "Tarde", RegistrationDate: "10/06/2022",
			ASOExpirationDate: day(-30), NRExpirationDate: day(-10), ASOStatus: CertificateExpired, NRStatus: CertificateExpired},
		{Code: "OP003", Name: "João Pereira", Role: RoleSupervisor, CPF: "456.789.123-00", Contact: "(11) 97654-3210", Shift: "Manhã", RegistrationDate: "05/01/2020",
			ASOExpirationDate: day(15), NRExpirationDate: day(90), ASOStatus: CertificateWarning, NRStatus: CertificateRegular},
		{Code: "OP004", Name: "Ana Costa", Role: RoleOperator, CPF: "789.123.456-00", Contact: "(11) 94321-8765", Shift: "Noite", RegistrationDate: "20/04/2023",
			ASOExpirationDate: day(300), NRExpirationDate: day(20), ASOStatus: CertificateRegular, NRStatus: CertificateWarning},
	}
	if err := db.Create(&operators).Error; err != nil {
		return fmt.Errorf("seeding operators: %w", err)
	}

	completed := now.Add(-22 * time.Hour)
	operations := []Operation{
		{Code: "OPE001", OperatorID: 1, OperatorName: "Carlos Silva", ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", Sector: "Armazém A",
			InitialHourMeter: 12500, CurrentHourMeter: 12583, GasConsumption: 12.5, StartTime: now.Add(-2 * time.Hour), Status: OperationActive},
		{Code: "OPE002", OperatorID: 3, OperatorName: "João Pereira", ForkliftID: 2, ForkliftModel: "Hyster E50XN", Sector: "Expedição",
			InitialHourMeter: 8400, CurrentHourMeter: 8452, StartTime: now.Add(-24 * time.Hour), EndTime: &completed, Status: OperationCompleted},
	}
	if err := db.Create(&operations).Error; err != nil {
		return fmt.Errorf("seeding operations: %w", err)
	}

	maintenances := []Maintenance{
		{Code: "MNT001", ForkliftID: 3, ForkliftModel: "Crown RR5725", Issue: "Vazamento de óleo no mastro", ReportedBy: "Carlos Silva", ReportedDate: day(-5), Status: MaintenanceWaiting},
		{Code: "MNT002", ForkliftID: 4, ForkliftModel: "Yale GLP050", Issue: "Ruído anormal no motor", ReportedBy: "João Pereira", ReportedDate: day(-12), Status: MaintenanceInProgress},
		{Code: "MNT003", ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", Issue: "Troca de pneus dianteiros", ReportedBy: "Ana Costa", ReportedDate: day(-20), Status: MaintenanceCompleted, CompletedDate: day(-15)},
	}
	if err := db.Create(&maintenances).Error; err != nil {
		return fmt.Errorf("seeding maintenances: %w", err)
	}

	supplies := []GasSupply{
		{Code: "GS001", Date: "20/11/2023", ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", Quantity: 30.5, HourMeterBefore: 12500, HourMeterAfter: 12583, Operator: "Carlos Silva"},
		{Code: "GS002", Date: "18/11/2023", ForkliftID: 4, ForkliftModel: "Yale GLP050", Quantity: 25.2, HourMeterBefore: 6700, HourMeterAfter: 6782, Operator: "João Pereira"},
		{Code: "GS003", Date: "15/11/2023", ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", Quantity: 32.8, HourMeterBefore: 12400, HourMeterAfter: 12500, Operator: "Maria Oliveira"},
		{Code: "GS004", Date: "12/11/2023", ForkliftID: 4, ForkliftModel: "Yale GLP050", Quantity: 28.5, HourMeterBefore: 6600, HourMeterAfter: 6700, Operator: "Pedro Santos"},
		{Code: "GS005", Date: "10/11/2023", ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", Quantity: 29.7, HourMeterBefore: 12300, HourMeterAfter: 12400, Operator: "Carlos Silva"},
	}
	if err := db.Create(&supplies).Error; err != nil {
		return fmt.Errorf("seeding gas supplies: %w", err)
	}

	billings := []Billing{
		{Code: "FAT001", Date: day(-1), ForkliftID: 1, ForkliftModel: "Toyota 8FGU25", OperatorName: "Carlos Silva", Description: "Movimentação de cargas - Armazém A", Hours: 2.5, HourlyRate: 300, TotalAmount: 750},
		{Code: "FAT002", Date: day(-3), ForkliftID: 2, ForkliftModel: "Hyster E50XN", OperatorName: "João Pereira", Description: "Carga e descarga - Expedição", Hours: 4, HourlyRate: 250, TotalAmount: 1000},
	}
	if err := db.Create(&billings).Error; err != nil {
		return fmt.Errorf("seeding billings: %w", err)
	}

	return nil
}

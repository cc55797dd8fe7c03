package Calculations

import (
	"Frota/Models"
)

// SupplyEfficiency is liters consumed per hour-meter hour. A refuel whose
// hour-meter readings do not advance yields 0 rather than dividing by zero
// or by a negative interval.
func SupplyEfficiency(quantity float64, hourMeterBefore, hourMeterAfter int) float64 {
	hours := hourMeterAfter - hourMeterBefore
	if hours <= 0 {
		return 0
	}
	return quantity / float64(hours)
}

// BillingTotal is the derived invoice amount.
func BillingTotal(hours, hourlyRate float64) float64 {
	return hours * hourlyRate
}

// TotalQuantity sums the liters of a supply list.
func TotalQuantity(supplies []Models.GasSupply) float64 {
	var total float64
	for _, supply := range supplies {
		total += supply.Quantity
	}
	return total
}

// AverageQuantity is the mean liters per refuel, 0 for an empty list.
func AverageQuantity(supplies []Models.GasSupply) float64 {
	if len(supplies) == 0 {
		return 0
	}
	return TotalQuantity(supplies) / float64(len(supplies))
}

// TotalBilled sums the derived totals of a billing list.
func TotalBilled(billings []Models.Billing) float64 {
	var total float64
	for _, billing := range billings {
		total += billing.TotalAmount
	}
	return total
}

// AverageBilled is the mean invoice amount, 0 for an empty list.
func AverageBilled(billings []Models.Billing) float64 {
	if len(billings) == 0 {
		return 0
	}
	return TotalBilled(billings) / float64(len(billings))
}

// BuildDashboardStats tallies the collections into the overview counters.
func BuildDashboardStats(forklifts []Models.Forklift, operators []Models.Operator, operations []Models.Operation, maintenances []Models.Maintenance) Models.DashboardStats {
	var stats Models.DashboardStats

	stats.TotalForklifts = int64(len(forklifts))
	for _, forklift := range forklifts {
		switch forklift.Status {
		case Models.ForkliftStatusOperational:
			stats.OperationalForklifts++
		case Models.ForkliftStatusStopped:
			stats.StoppedForklifts++
		case Models.ForkliftStatusMaintenance:
			stats.MaintenanceForklifts++
		}
	}

	stats.TotalOperators = int64(len(operators))
	for _, operator := range operators {
		switch {
		case matchesCertificates(operator, CertificateFilterExpired):
			stats.OperatorsWithExpiredCertificates++
		case matchesCertificates(operator, CertificateFilterWarning):
			stats.OperatorsWithWarningCertificates++
		case matchesCertificates(operator, CertificateFilterRegular):
			stats.OperatorsWithValidCertificates++
		}
	}

	for _, operation := range operations {
		if operation.Status == Models.OperationActive {
			stats.ActiveOperations++
		}
	}

	for _, maintenance := range maintenances {
		if maintenance.Status != Models.MaintenanceCompleted {
			stats.PendingMaintenances++
		}
	}

	return stats
}

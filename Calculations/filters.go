package Calculations

import (
	"strings"

	"Frota/Models"
)

// The sentinel "all" (or an empty value) disables a categorical dimension;
// an empty query disables the text match. All active dimensions must match.
// Filters never mutate their input and keep the input order.

func dimensionActive(value string) bool {
	return value != "" && value != "all"
}

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

type ForkliftFilter struct {
	Query  string
	Status string
	Type   string
}

func FilterForklifts(forklifts []Models.Forklift, filter ForkliftFilter) []Models.Forklift {
	matched := make([]Models.Forklift, 0, len(forklifts))
	for _, forklift := range forklifts {
		if dimensionActive(filter.Status) && forklift.Status != filter.Status {
			continue
		}
		if dimensionActive(filter.Type) && forklift.Type != filter.Type {
			continue
		}
		if !matchesQuery(filter.Query, forklift.Code, forklift.ModelName) {
			continue
		}
		matched = append(matched, forklift)
	}
	return matched
}

// Certificate filter buckets, matching the UI select values.
const (
	CertificateFilterRegular = "regular"
	CertificateFilterWarning = "warning"
	CertificateFilterExpired = "expired"
)

type OperatorFilter struct {
	Query        string
	Role         string
	Certificates string
}

// matchesCertificates applies the combined-credential rule: "regular" wants
// both credentials Regular, "warning" and "expired" match if either
// credential is in that state.
func matchesCertificates(operator Models.Operator, bucket string) bool {
	switch bucket {
	case CertificateFilterRegular:
		return operator.ASOStatus == Models.CertificateRegular && operator.NRStatus == Models.CertificateRegular
	case CertificateFilterWarning:
		return operator.ASOStatus == Models.CertificateWarning || operator.NRStatus == Models.CertificateWarning
	case CertificateFilterExpired:
		return operator.ASOStatus == Models.CertificateExpired || operator.NRStatus == Models.CertificateExpired
	default:
		return false
	}
}

func FilterOperators(operators []Models.Operator, filter OperatorFilter) []Models.Operator {
	matched := make([]Models.Operator, 0, len(operators))
	for _, operator := range operators {
		if dimensionActive(filter.Role) && operator.Role != filter.Role {
			continue
		}
		if dimensionActive(filter.Certificates) && !matchesCertificates(operator, filter.Certificates) {
			continue
		}
		if !matchesQuery(filter.Query, operator.Code, operator.Name, operator.CPF) {
			continue
		}
		matched = append(matched, operator)
	}
	return matched
}

type OperationFilter struct {
	Query  string
	Status string
	Sector string
}

func FilterOperations(operations []Models.Operation, filter OperationFilter) []Models.Operation {
	matched := make([]Models.Operation, 0, len(operations))
	for _, operation := range operations {
		if dimensionActive(filter.Status) && operation.Status != filter.Status {
			continue
		}
		if dimensionActive(filter.Sector) && operation.Sector != filter.Sector {
			continue
		}
		if !matchesQuery(filter.Query, operation.Code, operation.OperatorName, operation.ForkliftModel, operation.Sector) {
			continue
		}
		matched = append(matched, operation)
	}
	return matched
}

type MaintenanceFilter struct {
	Query    string
	Status   string
	Forklift string // forklift code
}

func FilterMaintenances(maintenances []Models.Maintenance, forkliftCodes map[uint]string, filter MaintenanceFilter) []Models.Maintenance {
	matched := make([]Models.Maintenance, 0, len(maintenances))
	for _, maintenance := range maintenances {
		if dimensionActive(filter.Status) && maintenance.Status != filter.Status {
			continue
		}
		if dimensionActive(filter.Forklift) && forkliftCodes[maintenance.ForkliftID] != filter.Forklift {
			continue
		}
		if !matchesQuery(filter.Query, maintenance.Code, maintenance.ForkliftModel, maintenance.Issue, maintenance.ReportedBy) {
			continue
		}
		matched = append(matched, maintenance)
	}
	return matched
}

type GasSupplyFilter struct {
	Query    string
	Forklift string // forklift code
	Date     string // dd/mm/yyyy
}

func FilterGasSupplies(supplies []Models.GasSupply, forkliftCodes map[uint]string, filter GasSupplyFilter) []Models.GasSupply {
	matched := make([]Models.GasSupply, 0, len(supplies))
	for _, supply := range supplies {
		if dimensionActive(filter.Forklift) && forkliftCodes[supply.ForkliftID] != filter.Forklift {
			continue
		}
		if filter.Date != "" && supply.Date != filter.Date {
			continue
		}
		if !matchesQuery(filter.Query, supply.Code, supply.ForkliftModel, supply.Operator) {
			continue
		}
		matched = append(matched, supply)
	}
	return matched
}

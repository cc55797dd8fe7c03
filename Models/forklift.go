package Models

import (
	"gorm.io/gorm"
)

// Forklift types
const (
	ForkliftTypeGas         = "Gás"
	ForkliftTypeElectric    = "Elétrica"
	ForkliftTypeRetractable = "Retrátil"
)

// Forklift lifecycle statuses
const (
	ForkliftStatusOperational = "Em Operação"
	ForkliftStatusStopped     = "Parada"
	ForkliftStatusMaintenance = "Aguardando Manutenção"
)

// ForkliftTypes lists the accepted values for the type field.
var ForkliftTypes = []string{ForkliftTypeGas, ForkliftTypeElectric, ForkliftTypeRetractable}

// ForkliftStatuses lists the accepted values for the status field.
var ForkliftStatuses = []string{ForkliftStatusOperational, ForkliftStatusStopped, ForkliftStatusMaintenance}

type Forklift struct {
	gorm.Model
	Code            string `json:"code" gorm:"size:20;uniqueIndex"`
	ModelName       string `json:"model" gorm:"size:255;not null"`
	Type            string `json:"type" gorm:"size:50;not null"`
	Capacity        string `json:"capacity" gorm:"size:50"`
	AcquisitionDate string `json:"acquisition_date" gorm:"size:10"` // dd/mm/yyyy
	LastMaintenance string `json:"last_maintenance" gorm:"size:10"` // dd/mm/yyyy
	Status          string `json:"status" gorm:"size:50;not null"`
	HourMeter       int    `json:"hour_meter" gorm:"not null;default:0"`
}

func (Forklift) TableName() string {
	return "forklifts"
}

type ForkliftRequest struct {
	ModelName       string `json:"model" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=Gás Elétrica Retrátil"`
	Capacity        string `json:"capacity" validate:"required"`
	AcquisitionDate string `json:"acquisition_date" validate:"omitempty,datebr"`
	LastMaintenance string `json:"last_maintenance" validate:"omitempty,datebr"`
	Status          string `json:"status" validate:"required,oneof='Em Operação' Parada 'Aguardando Manutenção'"`
	HourMeter       int    `json:"hour_meter" validate:"min=0"`
}

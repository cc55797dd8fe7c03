package Models

import (
	"gorm.io/gorm"
)

// Maintenance statuses
const (
	MaintenanceWaiting    = "Aguardando"
	MaintenanceInProgress = "Em andamento"
	MaintenanceCompleted  = "Concluído"
)

// Maintenance records a reported issue on a forklift. CompletedDate is
// stamped when the status reaches Concluído and cleared when it leaves it.
type Maintenance struct {
	gorm.Model
	Code          string `json:"code" gorm:"size:20;uniqueIndex"`
	ForkliftID    uint   `json:"forklift_id" gorm:"index"`
	ForkliftModel string `json:"forklift_model" gorm:"size:255"`
	Issue         string `json:"issue" gorm:"type:text;not null"`
	ReportedBy    string `json:"reported_by" gorm:"size:255"`
	ReportedDate  string `json:"reported_date" gorm:"size:10"` // dd/mm/yyyy
	Status        string `json:"status" gorm:"size:50;not null"`
	CompletedDate string `json:"completed_date" gorm:"size:10"` // dd/mm/yyyy, set iff completed
}

func (Maintenance) TableName() string {
	return "maintenances"
}

type MaintenanceRequest struct {
	ForkliftID uint   `json:"forklift_id" validate:"required"`
	Issue      string `json:"issue" validate:"required"`
	ReportedBy string `json:"reported_by" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Aguardando 'Em andamento' Concluído"`
}

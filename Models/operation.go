package Models

import (
	"time"

	"gorm.io/gorm"
)

// Operation statuses
const (
	OperationActive    = "active"
	OperationCompleted = "completed"
)

// Operation is a time-bounded assignment of an operator to a forklift.
// OperatorName and ForkliftModel are denormalized at creation time and are
// intentionally not kept in sync with later edits or deletions of the
// referenced rows.
type Operation struct {
	gorm.Model
	Code             string     `json:"code" gorm:"size:20;uniqueIndex"`
	OperatorID       uint       `json:"operator_id" gorm:"index"`
	OperatorName     string     `json:"operator_name" gorm:"size:255"`
	ForkliftID       uint       `json:"forklift_id" gorm:"index"`
	ForkliftModel    string     `json:"forklift_model" gorm:"size:255"`
	Sector           string     `json:"sector" gorm:"size:100"`
	InitialHourMeter int        `json:"initial_hour_meter"`
	CurrentHourMeter int        `json:"current_hour_meter"`
	GasConsumption   float64    `json:"gas_consumption"`
	StartTime        time.Time  `json:"start_time" gorm:"not null"`
	EndTime          *time.Time `json:"end_time"`
	Status           string     `json:"status" gorm:"size:20;not null"`

	// Calculated on read, not stored
	Duration string `json:"duration,omitempty" gorm:"-"`
}

func (Operation) TableName() string {
	return "operations"
}

type OperationRequest struct {
	OperatorID       uint    `json:"operator_id" validate:"required"`
	ForkliftID       uint    `json:"forklift_id" validate:"required"`
	Sector           string  `json:"sector" validate:"required"`
	InitialHourMeter int     `json:"initial_hour_meter" validate:"min=0"`
	CurrentHourMeter int     `json:"current_hour_meter" validate:"min=0"`
	GasConsumption   float64 `json:"gas_consumption" validate:"min=0"`
	StartTime        string  `json:"start_time" validate:"required"` // RFC 3339
	EndTime          string  `json:"end_time"`                       // RFC 3339, empty while active
	Status           string  `json:"status" validate:"required,oneof=active completed"`
}

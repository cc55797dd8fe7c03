package Models

import (
	"gorm.io/gorm"
)

// Billing is a service-billing entry for forklift usage. TotalAmount is
// always recomputed from Hours and HourlyRate on create and update; the
// client-sent value, if any, is discarded.
type Billing struct {
	gorm.Model
	Code          string  `json:"code" gorm:"size:20;uniqueIndex"`
	Date          string  `json:"date" gorm:"size:10"` // dd/mm/yyyy
	ForkliftID    uint    `json:"forklift_id" gorm:"index"`
	ForkliftModel string  `json:"forklift_model" gorm:"size:255"`
	OperatorName  string  `json:"operator_name" gorm:"size:255"`
	Description   string  `json:"description" gorm:"type:text"`
	Hours         float64 `json:"hours" gorm:"not null"`
	HourlyRate    float64 `json:"hourly_rate" gorm:"not null"`
	TotalAmount   float64 `json:"total_amount" gorm:"not null"`
}

func (Billing) TableName() string {
	return "billings"
}

type BillingRequest struct {
	Date         string  `json:"date" validate:"required,datebr"`
	ForkliftID   uint    `json:"forklift_id" validate:"required"`
	OperatorName string  `json:"operator_name" validate:"required"`
	Description  string  `json:"description"`
	Hours        float64 `json:"hours" validate:"required,gt=0"`
	HourlyRate   float64 `json:"hourly_rate" validate:"required,gt=0"`
}

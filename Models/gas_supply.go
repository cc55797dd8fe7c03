package Models

import (
	"gorm.io/gorm"
)

// GasSupply is one refueling event. Efficiency (liters per hour-meter hour)
// is derived on read and never stored.
type GasSupply struct {
	gorm.Model
	Code           string  `json:"code" gorm:"size:20;uniqueIndex"`
	Date           string  `json:"date" gorm:"size:10"` // dd/mm/yyyy
	ForkliftID     uint    `json:"forklift_id" gorm:"index"`
	ForkliftModel  string  `json:"forklift_model" gorm:"size:255"`
	Quantity       float64 `json:"quantity" gorm:"not null"`
	HourMeterBefore int    `json:"hour_meter_before"`
	HourMeterAfter  int    `json:"hour_meter_after"`
	Operator       string  `json:"operator" gorm:"size:255"`

	Efficiency float64 `json:"efficiency" gorm:"-"`
}

func (GasSupply) TableName() string {
	return "gas_supplies"
}

type GasSupplyRequest struct {
	Date            string  `json:"date" validate:"required,datebr"`
	ForkliftID      uint    `json:"forklift_id" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	HourMeterBefore int     `json:"hour_meter_before" validate:"min=0"`
	HourMeterAfter  int     `json:"hour_meter_after" validate:"min=0"`
	Operator        string  `json:"operator" validate:"required"`
}

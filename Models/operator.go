package Models

import (
	"gorm.io/gorm"
)

// Operator roles
const (
	RoleOperator   = "Operador"
	RoleSupervisor = "Supervisor"
	RoleAdmin      = "Administrador"
)

// Certificate statuses derived from the expiration dates. The status columns
// are always rewritten from the dates on save, never taken from the client.
const (
	CertificateRegular = "Regular"
	CertificateWarning = "Próximo do Vencimento"
	CertificateExpired = "Vencido"
)

type Operator struct {
	gorm.Model
	Code             string `json:"code" gorm:"size:20;uniqueIndex"`
	Name             string `json:"name" gorm:"size:255;not null"`
	Role             string `json:"role" gorm:"size:50;not null"`
	CPF              string `json:"cpf" gorm:"size:20"`
	Contact          string `json:"contact" gorm:"size:50"`
	Shift            string `json:"shift" gorm:"size:50"`
	RegistrationDate string `json:"registration_date" gorm:"size:10"`  // dd/mm/yyyy
	ASOExpirationDate string `json:"aso_expiration_date" gorm:"size:10"` // dd/mm/yyyy
	NRExpirationDate  string `json:"nr_expiration_date" gorm:"size:10"`  // dd/mm/yyyy
	ASOStatus        string `json:"aso_status" gorm:"size:50"`
	NRStatus         string `json:"nr_status" gorm:"size:50"`
}

func (Operator) TableName() string {
	return "operators"
}

type OperatorRequest struct {
	Name              string `json:"name" validate:"required"`
	Role              string `json:"role" validate:"required,oneof=Operador Supervisor Administrador"`
	CPF               string `json:"cpf" validate:"required"`
	Contact           string `json:"contact" validate:"required"`
	Shift             string `json:"shift"`
	RegistrationDate  string `json:"registration_date" validate:"omitempty,datebr"`
	ASOExpirationDate string `json:"aso_expiration_date" validate:"required,datebr"`
	NRExpirationDate  string `json:"nr_expiration_date" validate:"required,datebr"`
}

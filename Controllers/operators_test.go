package Controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Frota/Models"
)

func TestCreateOperatorDerivesCertificateStatuses(t *testing.T) {
	app, _ := newTestApp(t)

	operator := createOperator(t, app, "Carlos Silva", 10, 120)
	assert.Equal(t, "OP001", operator.Code)
	assert.Equal(t, Models.CertificateWarning, operator.ASOStatus)
	assert.Equal(t, Models.CertificateRegular, operator.NRStatus)
	assert.NotEmpty(t, operator.RegistrationDate)
}

// Clients cannot set the certificate statuses directly; the stored values
// always come from the expiration dates.
func TestOperatorStatusFieldsIgnoredOnSubmit(t *testing.T) {
	app, _ := newTestApp(t)

	var created struct {
		Operator Models.Operator `json:"operator"`
	}
	code := requestJSON(t, app, "POST", "/api/operators", fiber.Map{
		"name":                "Ana Souza",
		"role":                Models.RoleOperator,
		"cpf":                 "987.654.321-00",
		"contact":             "(11) 91234-5678",
		"aso_expiration_date": dateIn(-5),
		"nr_expiration_date":  dateIn(120),
		"aso_status":          Models.CertificateRegular,
	}, &created)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, Models.CertificateExpired, created.Operator.ASOStatus)
}

func TestUpdateOperatorRecomputesCertificates(t *testing.T) {
	app, _ := newTestApp(t)

	operator := createOperator(t, app, "Carlos Silva", 120, 120)
	require.Equal(t, Models.CertificateRegular, operator.ASOStatus)

	var updated struct {
		Operator Models.Operator `json:"operator"`
	}
	code := requestJSON(t, app, "PUT", "/api/operators/1", Models.OperatorRequest{
		Name:              "Carlos Silva",
		Role:              Models.RoleOperator,
		CPF:               "123.456.789-00",
		Contact:           "(11) 98765-4321",
		ASOExpirationDate: dateIn(-3),
		NRExpirationDate:  dateIn(15),
	}, &updated)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, Models.CertificateExpired, updated.Operator.ASOStatus)
	assert.Equal(t, Models.CertificateWarning, updated.Operator.NRStatus)
}

func TestListOperatorsCertificateBuckets(t *testing.T) {
	app, _ := newTestApp(t)

	createOperator(t, app, "Carlos Silva", 120, 120)  // both regular
	createOperator(t, app, "Ana Souza", 10, 120)      // ASO in the window
	createOperator(t, app, "Roberto Santos", 120, -2) // NR expired

	var regular []Models.Operator
	requestJSON(t, app, "GET", "/api/operators?certificates=regular", nil, &regular)
	require.Len(t, regular, 1)
	assert.Equal(t, "Carlos Silva", regular[0].Name)

	var warning []Models.Operator
	requestJSON(t, app, "GET", "/api/operators?certificates=warning", nil, &warning)
	require.Len(t, warning, 1)
	assert.Equal(t, "Ana Souza", warning[0].Name)

	var expired []Models.Operator
	requestJSON(t, app, "GET", "/api/operators?certificates=expired", nil, &expired)
	require.Len(t, expired, 1)
	assert.Equal(t, "Roberto Santos", expired[0].Name)

	var everyone []Models.Operator
	requestJSON(t, app, "GET", "/api/operators?certificates=all", nil, &everyone)
	assert.Len(t, everyone, 3)
}

func TestCreateOperatorRequiresCertificateDates(t *testing.T) {
	app, _ := newTestApp(t)

	var body struct {
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "POST", "/api/operators", fiber.Map{
		"name":    "Carlos Silva",
		"role":    Models.RoleOperator,
		"cpf":     "123.456.789-00",
		"contact": "(11) 98765-4321",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Preencha todos os campos obrigatórios", body.Message)
}

func TestDeleteOperatorRequiresConfirmation(t *testing.T) {
	app, _ := newTestApp(t)

	createOperator(t, app, "Carlos Silva", 120, 120)

	code := requestJSON(t, app, "DELETE", "/api/operators/1", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code = requestJSON(t, app, "DELETE", "/api/operators/1?confirm=true", nil, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code = requestJSON(t, app, "GET", "/api/operators/1", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

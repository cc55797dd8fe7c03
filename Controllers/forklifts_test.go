package Controllers_test

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Frota/Models"
)

func TestCreateForkliftGeneratesTypedCode(t *testing.T) {
	app, _ := newTestApp(t)

	gas := createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)
	assert.Equal(t, "G001", gas.Code)

	electric := createForklift(t, app, "Hyster E50XN", Models.ForkliftTypeElectric, Models.ForkliftStatusStopped)
	assert.Equal(t, "E002", electric.Code)

	retractable := createForklift(t, app, "Crown RR5725", Models.ForkliftTypeRetractable, Models.ForkliftStatusMaintenance)
	assert.Equal(t, "R003", retractable.Code)
}

func TestCreateForkliftMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "POST", "/api/forklifts", fiber.Map{"model": "Toyota 8FGU25"}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Erro de validação", body.Error)
	assert.Equal(t, "Preencha todos os campos obrigatórios", body.Message)
}

func TestCreateForkliftRejectsBadDate(t *testing.T) {
	app, _ := newTestApp(t)

	var body struct {
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "POST", "/api/forklifts", Models.ForkliftRequest{
		ModelName:       "Toyota 8FGU25",
		Type:            Models.ForkliftTypeGas,
		Capacity:        "2.500 kg",
		AcquisitionDate: "2024-01-15",
		Status:          Models.ForkliftStatusOperational,
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Data inválida, use o formato dd/mm/aaaa", body.Message)
}

func TestListForkliftsFilters(t *testing.T) {
	app, _ := newTestApp(t)

	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)
	createForklift(t, app, "Hyster E50XN", Models.ForkliftTypeElectric, Models.ForkliftStatusStopped)
	createForklift(t, app, "Crown RR5725", Models.ForkliftTypeRetractable, Models.ForkliftStatusOperational)

	var all []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts?status=all&type=all", nil, &all)
	require.Len(t, all, 3)
	assert.Equal(t, "G001", all[0].Code)

	var bySearch []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts?search=toyota", nil, &bySearch)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Toyota 8FGU25", bySearch[0].ModelName)

	query := url.Values{"status": {Models.ForkliftStatusStopped}}
	var byStatus []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts?"+query.Encode(), nil, &byStatus)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Hyster E50XN", byStatus[0].ModelName)

	query = url.Values{
		"status": {Models.ForkliftStatusOperational},
		"search": {"crown"},
	}
	var combined []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts?"+query.Encode(), nil, &combined)
	require.Len(t, combined, 1)
	assert.Equal(t, "Crown RR5725", combined[0].ModelName)
}

func TestUpdateForkliftRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	forklift := createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	var updated struct {
		Forklift Models.Forklift `json:"forklift"`
	}
	code := requestJSON(t, app, "PUT", "/api/forklifts/1", Models.ForkliftRequest{
		ModelName:       "Toyota 8FGU25",
		Type:            Models.ForkliftTypeGas,
		Capacity:        "2.500 kg",
		AcquisitionDate: dateIn(-365),
		LastMaintenance: dateIn(-7),
		Status:          Models.ForkliftStatusMaintenance,
		HourMeter:       1250,
	}, &updated)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, Models.ForkliftStatusMaintenance, updated.Forklift.Status)
	assert.Equal(t, 1250, updated.Forklift.HourMeter)
	assert.Equal(t, forklift.Code, updated.Forklift.Code)

	var fetched Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts/1", nil, &fetched)
	assert.Equal(t, Models.ForkliftStatusMaintenance, fetched.Status)
	assert.Equal(t, 1250, fetched.HourMeter)
}

func TestDeleteForkliftRequiresConfirmation(t *testing.T) {
	app, _ := newTestApp(t)

	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	var refused struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "DELETE", "/api/forklifts/1", nil, &refused)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Confirmação necessária", refused.Error)
	assert.Equal(t, "Tem certeza que deseja excluir esta empilhadeira?", refused.Message)

	var still []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts", nil, &still)
	require.Len(t, still, 1)

	code = requestJSON(t, app, "DELETE", "/api/forklifts/1?confirm=true", nil, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var remaining []Models.Forklift
	requestJSON(t, app, "GET", "/api/forklifts", nil, &remaining)
	assert.Empty(t, remaining)
}

// Deleting a forklift leaves records that referenced it untouched; they keep
// the descriptive fields captured at creation time.
func TestDeleteForkliftKeepsDenormalizedReferences(t *testing.T) {
	app, _ := newTestApp(t)

	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)
	createOperator(t, app, "Carlos Silva", 120, 120)

	var created struct {
		Operation Models.Operation `json:"operation"`
	}
	code := requestJSON(t, app, "POST", "/api/operations", Models.OperationRequest{
		OperatorID: 1,
		ForkliftID: 1,
		Sector:     "Armazém A",
		StartTime:  "2026-08-01T08:00:00Z",
		Status:     Models.OperationActive,
	}, &created)
	require.Equal(t, fiber.StatusCreated, code)

	code = requestJSON(t, app, "DELETE", "/api/forklifts/1?confirm=true", nil, nil)
	require.Equal(t, fiber.StatusOK, code)

	var operation Models.Operation
	requestJSON(t, app, "GET", "/api/operations/1", nil, &operation)
	assert.Equal(t, "Toyota 8FGU25", operation.ForkliftModel)
	assert.Equal(t, "Carlos Silva", operation.OperatorName)
}

package Controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Frota/Models"
)

func TestCreateGasSupplyComputesEfficiency(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	var created struct {
		Supply Models.GasSupply `json:"supply"`
	}
	code := requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
		Date:            dateIn(0),
		ForkliftID:      1,
		Quantity:        30.5,
		HourMeterBefore: 12500,
		HourMeterAfter:  12583,
		Operator:        "Carlos Silva",
	}, &created)
	require.Equal(t, fiber.StatusCreated, code)

	assert.Equal(t, "GS001", created.Supply.Code)
	assert.Equal(t, "Toyota 8FGU25", created.Supply.ForkliftModel)
	assert.InDelta(t, 30.5/83.0, created.Supply.Efficiency, 0.0001)
}

func TestCreateGasSupplyRejectsHourMeterPair(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
		Date:            dateIn(0),
		ForkliftID:      1,
		Quantity:        20,
		HourMeterBefore: 12583,
		HourMeterAfter:  12500,
		Operator:        "Carlos Silva",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "O horímetro final deve ser maior que o inicial", body.Message)

	// equal readings are just as invalid
	code = requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
		Date:            dateIn(0),
		ForkliftID:      1,
		Quantity:        20,
		HourMeterBefore: 12500,
		HourMeterAfter:  12500,
		Operator:        "Carlos Silva",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestCreateGasSupplyRejectsZeroQuantity(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	var body struct {
		Message string `json:"message"`
	}
	code := requestJSON(t, app, "POST", "/api/gas-supplies", fiber.Map{
		"date":              dateIn(0),
		"forklift_id":       1,
		"quantity":          0,
		"hour_meter_before": 100,
		"hour_meter_after":  110,
		"operator":          "Carlos Silva",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Preencha todos os campos obrigatórios", body.Message)
}

func TestListGasSuppliesTotals(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	for _, quantity := range []float64{30.5, 25.0} {
		code := requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
			Date:            dateIn(0),
			ForkliftID:      1,
			Quantity:        quantity,
			HourMeterBefore: 12500,
			HourMeterAfter:  12583,
			Operator:        "Carlos Silva",
		}, nil)
		require.Equal(t, fiber.StatusCreated, code)
	}

	var listed struct {
		Supplies           []Models.GasSupply `json:"supplies"`
		TotalSupplies      int                `json:"total_supplies"`
		TotalConsumption   float64            `json:"total_consumption"`
		AverageConsumption float64            `json:"average_consumption"`
	}
	requestJSON(t, app, "GET", "/api/gas-supplies", nil, &listed)
	require.Len(t, listed.Supplies, 2)
	assert.Equal(t, 2, listed.TotalSupplies)
	assert.InDelta(t, 55.5, listed.TotalConsumption, 0.0001)
	assert.InDelta(t, 27.75, listed.AverageConsumption, 0.0001)
	assert.Greater(t, listed.Supplies[0].Efficiency, 0.0)
}

func TestListGasSuppliesFilterByDate(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	for _, day := range []int{0, -1} {
		code := requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
			Date:            dateIn(day),
			ForkliftID:      1,
			Quantity:        20,
			HourMeterBefore: 100,
			HourMeterAfter:  150,
			Operator:        "Carlos Silva",
		}, nil)
		require.Equal(t, fiber.StatusCreated, code)
	}

	var listed struct {
		Supplies []Models.GasSupply `json:"supplies"`
	}
	requestJSON(t, app, "GET", "/api/gas-supplies?date="+dateIn(-1), nil, &listed)
	require.Len(t, listed.Supplies, 1)
	assert.Equal(t, "GS002", listed.Supplies[0].Code)
}

func TestDeleteGasSupplyRequiresConfirmation(t *testing.T) {
	app, _ := newTestApp(t)
	createForklift(t, app, "Toyota 8FGU25", Models.ForkliftTypeGas, Models.ForkliftStatusOperational)

	code := requestJSON(t, app, "POST", "/api/gas-supplies", Models.GasSupplyRequest{
		Date:            dateIn(0),
		ForkliftID:      1,
		Quantity:        20,
		HourMeterBefore: 100,
		HourMeterAfter:  150,
		Operator:        "Carlos Silva",
	}, nil)
	require.Equal(t, fiber.StatusCreated, code)

	code = requestJSON(t, app, "DELETE", "/api/gas-supplies/1", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code = requestJSON(t, app, "DELETE", "/api/gas-supplies/1?confirm=true", nil, nil)
	assert.Equal(t, fiber.StatusOK, code)
}

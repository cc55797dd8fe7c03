package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Frota/Calculations"
	"Frota/FiberConfig"
	"Frota/Models"
)

// newTestApp wires the full route surface onto an isolated in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Models.Open(dsn)
	require.NoError(t, err)

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

// requestJSON performs a request against the app and decodes the JSON body
// into out (when out is not nil), returning the status code.
func requestJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// dateIn renders today+days in the dd/mm/yyyy form the API speaks.
func dateIn(days int) string {
	return Calculations.FormatDateBR(time.Now().AddDate(0, 0, days))
}

func createForklift(t *testing.T, app *fiber.App, model, forkliftType, status string) Models.Forklift {
	t.Helper()
	var created struct {
		Forklift Models.Forklift `json:"forklift"`
	}
	code := requestJSON(t, app, "POST", "/api/forklifts", Models.ForkliftRequest{
		ModelName:       model,
		Type:            forkliftType,
		Capacity:        "2.500 kg",
		AcquisitionDate: dateIn(-365),
		Status:          status,
		HourMeter:       1000,
	}, &created)
	require.Equal(t, fiber.StatusCreated, code)
	return created.Forklift
}

func createOperator(t *testing.T, app *fiber.App, name string, asoDays, nrDays int) Models.Operator {
	t.Helper()
	var created struct {
		Operator Models.Operator `json:"operator"`
	}
	code := requestJSON(t, app, "POST", "/api/operators", Models.OperatorRequest{
		Name:              name,
		Role:              Models.RoleOperator,
		CPF:               "123.456.789-00",
		Contact:           "(11) 98765-4321",
		Shift:             "Manhã",
		ASOExpirationDate: dateIn(asoDays),
		NRExpirationDate:  dateIn(nrDays),
	}, &created)
	require.Equal(t, fiber.StatusCreated, code)
	return created.Operator
}

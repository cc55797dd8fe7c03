package Calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatDateBR(t *testing.T) {
	parsed, err := ParseDateBR("20/11/2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, 11, int(parsed.Month()))
	assert.Equal(t, 20, parsed.Day())

	assert.Equal(t, "20/11/2023", FormatDateBR(parsed))
}

func TestParseDateBRRejectsISO(t *testing.T) {
	_, err := ParseDateBR("2023-11-20")
	assert.Error(t, err)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 750,00", FormatBRL(750))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(1000000))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "-R$ 12,30", FormatBRL(-12.3))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	assert.NotEmpty(t, id.String())
	assert.EqualValues(t, 7, id.Version())
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 500.46, RoundMoney(500.456))
	assert.Equal(t, 500.45, RoundMoney(500.454))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, -10.55, RoundMoney(-10.549))
}

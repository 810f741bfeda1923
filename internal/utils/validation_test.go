package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRatio(t *testing.T) {
	assert.NoError(t, ValidateRatio("test ratio", 0.2))
	assert.Error(t, ValidateRatio("test ratio", 0))
	assert.Error(t, ValidateRatio("test ratio", 1))
	assert.Error(t, ValidateRatio("test ratio", -0.1))
	assert.Error(t, ValidateRatio("test ratio", 1.5))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, ValidatePositiveInt("epochs", 10))
	assert.Error(t, ValidatePositiveInt("epochs", 0))
	assert.Error(t, ValidatePositiveInt("epochs", -3))
}

func TestValidatePositiveFloat(t *testing.T) {
	assert.NoError(t, ValidatePositiveFloat("learning rate", 0.05))
	assert.Error(t, ValidatePositiveFloat("learning rate", 0))
	assert.Error(t, ValidatePositiveFloat("learning rate", -1))
}

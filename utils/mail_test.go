package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEmailDomain(t *testing.T) {
	assert.NoError(t, CheckEmailDomain("alex@example.edu"))

	assert.Error(t, CheckEmailDomain("alex+alias@example.edu"))
	assert.Error(t, CheckEmailDomain("no-at-sign"))
	assert.Error(t, CheckEmailDomain("trailing@"))
	assert.Error(t, CheckEmailDomain("throwaway@mailinator.com"))
}

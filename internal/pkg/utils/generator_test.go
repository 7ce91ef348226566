package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBillNumber(t *testing.T) {
	t.Run("matches the expected format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Regexp(t, `^BILL-\d{6}-\d{3}$`, GenerateBillNumber())
		}
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("produces distinct ids", func(t *testing.T) {
		first := GenerateRequestID()
		second := GenerateRequestID()

		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
	})
}

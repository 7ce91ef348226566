package utils

import (
	"testing"

	"medibill-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{
		Email:    "  Admin@Hospital.COM ",
		Password: "secret123",
	}

	SanitizeLoginRequest(request)

	assert.Equal(t, "admin@hospital.com", request.Email)
	assert.Equal(t, "secret123", request.Password)
}

func TestSanitizeGenerateBillRequest(t *testing.T) {
	request := &requests.GenerateBill{
		PatientID: " patient-1 ",
		DoctorID:  "doctor-1",
		BrokerID:  " ",
		TestIDs:   []string{" test-1", "test-2 "},
	}

	SanitizeGenerateBillRequest(request)

	assert.Equal(t, "patient-1", request.PatientID)
	assert.Equal(t, "", request.BrokerID)
	assert.Equal(t, []string{"test-1", "test-2"}, request.TestIDs)
}

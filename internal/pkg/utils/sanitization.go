package utils

import (
	"strings"

	"medibill-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateUserAccountRequest(request *requests.CreateUserAccount) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateTestRequest(request *requests.CreateTest) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
}

func SanitizeGenerateBillRequest(request *requests.GenerateBill) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.BrokerID = strings.TrimSpace(request.BrokerID)
	for i, id := range request.TestIDs {
		request.TestIDs[i] = strings.TrimSpace(id)
	}
}

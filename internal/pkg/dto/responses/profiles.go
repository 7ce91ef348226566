package responses

import "medibill-service/internal/app/models"

type DoctorProfile struct {
	Doctor *models.Doctor `json:"doctor"`
	Bills  []Bill         `json:"bills"`
}

type BrokerProfile struct {
	Broker *models.Broker `json:"broker"`
	Bills  []Bill         `json:"bills"`
}

type HospitalProfile struct {
	Hospital    *models.Hospital `json:"hospital"`
	RecentBills []Bill           `json:"recentBills"`
}

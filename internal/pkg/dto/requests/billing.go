package requests

type GenerateBill struct {
	PatientID string   `json:"patientId" validate:"required"`
	DoctorID  string   `json:"doctorId" validate:"required"`
	BrokerID  string   `json:"brokerId"`
	TestIDs   []string `json:"testIds" validate:"required,min=1,dive,required"`
}

type SearchBills struct {
	Query string `json:"query"`
}

package models

import "time"

// BillItem pairs a test reference with the price copied at billing time,
// so later catalog price changes never alter historical bills.
type BillItem struct {
	TestID string  `bson:"test" json:"testId"`
	Price  float64 `bson:"price" json:"price"`
}

type Bill struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	PatientID     string     `bson:"patient" json:"patientId"`
	DoctorID      string     `bson:"doctor" json:"doctorId"`
	BrokerID      string     `bson:"broker,omitempty" json:"brokerId,omitempty"`
	Tests         []BillItem `bson:"tests" json:"tests"`
	Subtotal      float64    `bson:"subtotal" json:"subtotal"`
	HospitalShare float64    `bson:"hospitalShare" json:"hospitalShare"`
	DoctorShare   float64    `bson:"doctorShare" json:"doctorShare"`
	BrokerShare   float64    `bson:"brokerShare" json:"brokerShare"`
	TotalAmount   float64    `bson:"totalAmount" json:"totalAmount"`
	GeneratedBy   string     `bson:"generatedBy" json:"generatedBy"`
	BillNumber    string     `bson:"billNumber" json:"billNumber"`
	BillDate      time.Time  `bson:"billDate" json:"billDate"`
}

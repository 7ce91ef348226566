package responses

import "time"

type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BillTestItem struct {
	TestID string  `json:"testId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Bill is the display-friendly shape: references resolved to names the
// way the callers render them.
type Bill struct {
	ID            string         `json:"id"`
	BillNumber    string         `json:"billNumber"`
	Patient       NamedRef       `json:"patient"`
	Doctor        NamedRef       `json:"doctor"`
	Broker        *NamedRef      `json:"broker,omitempty"`
	Tests         []BillTestItem `json:"tests"`
	Subtotal      float64        `json:"subtotal"`
	HospitalShare float64        `json:"hospitalShare"`
	DoctorShare   float64        `json:"doctorShare"`
	BrokerShare   float64        `json:"brokerShare"`
	TotalAmount   float64        `json:"totalAmount"`
	GeneratedBy   string         `json:"generatedBy"`
	BillDate      time.Time      `json:"billDate"`
}

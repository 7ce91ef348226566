package models

// Hospital is a singleton document: the one record holds the facility
// identity, the configured revenue split and the running earnings total.
type Hospital struct {
	ID                      string  `bson:"_id,omitempty" json:"id"`
	Name                    string  `bson:"name" json:"name"`
	Address                 string  `bson:"address" json:"address"`
	ContactNumber           string  `bson:"contactNumber" json:"contactNumber"`
	Email                   string  `bson:"email" json:"email"`
	TotalEarnings           float64 `bson:"totalEarnings" json:"totalEarnings"`
	HospitalSharePercentage float64 `bson:"hospitalSharePercentage" json:"hospitalSharePercentage"`
	DoctorSharePercentage   float64 `bson:"doctorSharePercentage" json:"doctorSharePercentage"`
	BrokerSharePercentage   float64 `bson:"brokerSharePercentage" json:"brokerSharePercentage"`
}

package requests

type CreateUserAccount struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateHospitalSettings struct {
	Name                    string  `json:"name" validate:"required"`
	Address                 string  `json:"address" validate:"required"`
	ContactNumber           string  `json:"contactNumber" validate:"required"`
	Email                   string  `json:"email" validate:"omitempty,email"`
	HospitalSharePercentage float64 `json:"hospitalSharePercentage" validate:"gte=0,lte=100"`
	DoctorSharePercentage   float64 `json:"doctorSharePercentage" validate:"gte=0,lte=100"`
	BrokerSharePercentage   float64 `json:"brokerSharePercentage" validate:"gte=0,lte=100"`
}

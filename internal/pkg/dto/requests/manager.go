package requests

type CreateDoctor struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	ContactNumber  string `json:"contactNumber" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address"`
}

type CreateBroker struct {
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
}

type RegisterPatient struct {
	Name          string `json:"name" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female Other"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
}

type CreateTest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
}

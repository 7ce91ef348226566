package responses

import "medibill-service/internal/app/models"

type LoggedInUser struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	UserType models.UserType `json:"userType"`
}

type Login struct {
	Token string       `json:"token"`
	User  LoggedInUser `json:"user"`
}

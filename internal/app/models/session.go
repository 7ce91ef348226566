package models

// Session is the payload stored in Redis under the session ID carried
// by the JWT. Handlers read the caller identity and role from here.
type Session struct {
	SessionID string   `json:"session_id"`
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	UserType  UserType `json:"user_type"`
}

package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminSummary is the slice of the admin row the client is allowed to see.
type AdminSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    AdminSummary `json:"user"`
}

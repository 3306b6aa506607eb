package dto

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department" validate:"required"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	LoggedIn   bool   `json:"logged_in"`
}

type StatusResponse struct {
	LoggedIn   bool   `json:"logged_in"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	FullName   string `json:"full_name,omitempty"`
}

type GoogleCallbackRequest struct {
	Code string `json:"code" validate:"required"`
}

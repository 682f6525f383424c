package models

// LoginRequest carries exactly one of Email, Phone or Username.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"wa_number,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the sign-up form. ConfirmPassword is checked locally
// and never sent.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Username        string `json:"username"`
	Phone           string `json:"wa_number"`
	ConfirmPassword string `json:"-"`
}

// RegisterResponse is the optional echo of the created user.
type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"wa_number"`
}

package models

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// example: Alice
	Name string `json:"name" validate:"required,max=100"`

	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login.
// swagger:model AuthResponse
type AuthResponse struct {
	// example: Login successful
	Message string `json:"message"`
	// JWT bearer token
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MeResponse wraps the authenticated user.
// swagger:model MeResponse
type MeResponse struct {
	User User `json:"user"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid email or password
	Error string `json:"error"`
}

package dto

// LoginRequest represents the JSON request body for the admin login endpoint.
//
// @Description Request to authenticate the site administrator
// @Example {"username": "admin", "password": "correct horse battery staple"}
type LoginRequest struct {
	// Username is the administrator account name.
	Username string `json:"username" binding:"required" example:"admin"`
	// Password is the administrator password.
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// TokenResponse is returned by a successful login.
//
// @Description Access token for the admin endpoints
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse

// Claims are the application claims carried by an admin token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RoleAdmin is the only role tokens are issued for.
const RoleAdmin = "admin"

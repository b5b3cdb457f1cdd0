package request

import (
	"boat-scheduler/internal/domain/operator"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (operator.Credentials, error) {
	return operator.NewCredentials(r.Username, r.Password)
}

// RefreshRequest is optional when the refresh_token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

package response

import (
	"boat-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Operator    *OperatorResponse `json:"operator"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func FromOperatorView(v *queries.OperatorView) *OperatorResponse {
	if v == nil {
		return nil
	}
	return &OperatorResponse{ID: v.ID, Username: v.Username, Role: v.Role}
}

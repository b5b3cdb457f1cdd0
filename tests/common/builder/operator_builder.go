//go:build unit || e2e

package builder

import (
	"boat-scheduler/internal/domain/operator"
	"boat-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorBuilder struct {
	ID       uuid.UUID
	Username string
	Role     operator.Role
}

// NewOperatorBuilder starts from the "skipper" operator. ID stays name-derived unless WithID is used.
func NewOperatorBuilder() *OperatorBuilder {
	return &OperatorBuilder{
		Username: "skipper",
		Role:     operator.RoleOperator,
	}
}

func (b *OperatorBuilder) WithID(id uuid.UUID) *OperatorBuilder {
	b.ID = id
	return b
}

func (b *OperatorBuilder) WithUsername(username string) *OperatorBuilder {
	b.Username = username
	return b
}

func (b *OperatorBuilder) WithRole(role operator.Role) *OperatorBuilder {
	b.Role = role
	return b
}

func (b *OperatorBuilder) BuildView() *queries.OperatorView {
	id := b.ID
	if id == uuid.Nil {
		username, _ := operator.NewUsername(b.Username)
		id = operator.IDFor(username)
	}
	return &queries.OperatorView{
		ID:       id,
		Username: b.Username,
		Role:     b.Role.String(),
	}
}

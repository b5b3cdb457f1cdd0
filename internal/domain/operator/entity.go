package operator

import (
	"github.com/google/uuid"
)

// namespace scopes name-based operator ids.
var namespace = uuid.MustParse("6f1c7a52-3b8e-4d0a-9a57-2e4f8c1b9d30")

// Operator is a staff account allowed to edit the schedule. Its id is derived from the
// username, so the same operator maps to the same session across restarts.
type Operator struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
}

func IDFor(username Username) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(username.Value()))
}

func NewOperator(username Username, passwordHash string, role Role) *Operator {
	return &Operator{
		id:           IDFor(username),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (o *Operator) ID() uuid.UUID        { return o.id }
func (o *Operator) Username() Username   { return o.username }
func (o *Operator) PasswordHash() string { return o.passwordHash }
func (o *Operator) Role() Role           { return o.role }

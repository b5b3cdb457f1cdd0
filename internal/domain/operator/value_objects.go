package operator

import (
	"regexp"
	"strings"

	"boat-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidUsername = errs.Validation("username must be 3-64 characters of letters, digits, dot, dash or underscore")
	ErrInvalidRole     = errs.Validation("invalid role")
	ErrPasswordTooWeak = errs.Validation("password must be at least 8 characters long")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,64}$`)

// Username is compared case-insensitively, so it is stored lower-cased.
type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	username Username
	password Password
}

func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() Username {
	return c.username
}

func (c Credentials) Password() Password {
	return c.password
}

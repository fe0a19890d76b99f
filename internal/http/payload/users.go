package payload

import (
	"conduit/internal/core"

	"github.com/jellydator/validation"
)

type Registration struct {
	User NewUser `json:"user"`
}

type NewUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *Registration) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.User),
	)
}

func (u NewUser) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Required, validation.Length(1, 255)),
		validation.Field(&u.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&u.Password, validation.Required),
	)
}

func (r Registration) ToCoreNewUser() core.NewUser {
	return core.NewUser{
		Email:    r.User.Email,
		Username: r.User.Username,
		Password: r.User.Password,
	}
}

type LoginRequest struct {
	User Credentials `json:"user"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *LoginRequest) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.User),
	)
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func (l LoginRequest) ToCoreCredentials() core.Credentials {
	return core.Credentials{
		Email:    l.User.Email,
		Password: l.User.Password,
	}
}

// UserResponse wraps a user the way every endpoint returns it.
type UserResponse struct {
	User core.User `json:"user"`
}

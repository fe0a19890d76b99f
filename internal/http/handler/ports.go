package handler

import (
	"context"
	"net/http"

	"conduit/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, newUser core.NewUser) (core.User, error)
	Login(ctx context.Context, creds core.Credentials) (core.User, error)
	CurrentUser(ctx context.Context, userID int) (core.User, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, jsonPayload any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

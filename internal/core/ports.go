package core

import (
	"context"

	"conduit/internal/pool"
	"conduit/internal/repository"
	tokenIssuer "conduit/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	Insert(ctx context.Context, newUser repository.NewUser) *pool.Future[repository.User]
	Find(ctx context.Context, userID int) *pool.Future[repository.User]
	FindByEmailPassword(ctx context.Context, email, password string) *pool.Future[repository.User]
	FindByEmail(ctx context.Context, email string) *pool.Future[repository.User]
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

type PasswordScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
	Filterable() bool
}

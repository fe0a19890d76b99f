package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conduit/internal/pool"
	"conduit/internal/repository"
	tokenIssuer "conduit/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Accounts registers users, logs them in and resolves the current user.
type Accounts struct {
	logs      *zap.SugaredLogger
	store     UserStore
	jwtIssuer JWTIssuer
	passwords PasswordScheme
	tokenTTL  time.Duration
}

func NewAccounts(logger *zap.SugaredLogger, store UserStore, jwt JWTIssuer, passwords PasswordScheme, tokenTTL time.Duration) *Accounts {
	return &Accounts{
		logs:      logger,
		store:     store,
		jwtIssuer: jwt,
		passwords: passwords,
		tokenTTL:  tokenTTL,
	}
}

// Register stores a new user and returns it without a token.
func (a *Accounts) Register(ctx context.Context, newUser NewUser) (User, error) {
	const op = "register"

	stored, err := a.passwords.Hash(newUser.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return User{}, newError(KindClientInput, op, err)
		}
		return User{}, newError(KindInternal, op, fmt.Errorf("hash password: %w", err))
	}

	row, err := a.store.Insert(ctx, repository.NewUser{
		Email:    newUser.Email,
		Username: newUser.Username,
		Password: stored,
	}).Await(ctx)
	if err != nil {
		return User{}, newError(KindStorage, op, err)
	}

	a.logs.Infow("user registered", "user_id", row.ID)

	return toUser(row), nil
}

// Login checks the credentials and returns the user together with a signed
// token carrying its id.
func (a *Accounts) Login(ctx context.Context, creds Credentials) (User, error) {
	const op = "login"

	row, err := a.lookupCredentials(ctx, creds)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, newError(KindNotFound, op, ErrUserNotFound)
		}
		if errors.Is(err, ErrIncorrectPassword) {
			return User{}, newError(KindNotFound, op, err)
		}
		return User{}, newError(KindStorage, op, err)
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserID:     row.ID,
		Expiration: a.tokenTTL,
	})
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return User{}, newError(KindInternal, op, fmt.Errorf("signing token: %w", err))
	}

	a.logs.Infow("user logged in", "user_id", row.ID)

	user := toUser(row)
	user.Token = signed
	return user, nil
}

// CurrentUser loads the user a verified token was issued for.
func (a *Accounts) CurrentUser(ctx context.Context, userID int) (User, error) {
	const op = "current user"

	row, err := a.store.Find(ctx, userID).Await(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, newError(KindNotFound, op, ErrUserNotFound)
		}
		return User{}, newError(KindStorage, op, err)
	}

	return toUser(row), nil
}

// lookupCredentials filters on (email, password) when the scheme allows it
// and by email otherwise. Either way the stored password is verified.
func (a *Accounts) lookupCredentials(ctx context.Context, creds Credentials) (repository.User, error) {
	var future *pool.Future[repository.User]
	if a.passwords.Filterable() {
		future = a.store.FindByEmailPassword(ctx, creds.Email, creds.Password)
	} else {
		future = a.store.FindByEmail(ctx, creds.Email)
	}

	row, err := future.Await(ctx)
	if err != nil {
		return repository.User{}, err
	}
	if !a.passwords.Verify(row.Password, creds.Password) {
		return repository.User{}, ErrIncorrectPassword
	}
	return row, nil
}

func toUser(row repository.User) User {
	return User{
		ID:       row.ID,
		Email:    row.Email,
		Username: row.Username,
		Password: row.Password,
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"conduit/internal/db"
	"conduit/internal/pool"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateEmail error = errors.New("email already registered")

// UserRepository runs every users-table operation on the worker pool and
// hands the caller a future for the row.
type UserRepository struct {
	db   Storage
	pool *pool.Pool
}

func NewUserRepository(db Storage, workers *pool.Pool) *UserRepository {
	return &UserRepository{
		db:   db,
		pool: workers,
	}
}

func (r *UserRepository) Migrate() error {
	err := r.db.MigrateModels(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) Insert(ctx context.Context, newUser NewUser) *pool.Future[User] {
	return pool.Submit(ctx, r.pool, func(ctx context.Context) (User, error) {
		user := User{
			Email:    newUser.Email,
			Username: newUser.Username,
			Password: newUser.Password,
		}

		err := r.db.Insert(ctx, &user)
		if err != nil {
			if errors.Is(err, db.ErrDuplicateKey) {
				return User{}, fmt.Errorf("insert user: %w: %w", ErrDuplicateEmail, err)
			}
			return User{}, fmt.Errorf("insert user: %w", err)
		}

		return user, nil
	})
}

func (r *UserRepository) Find(ctx context.Context, userID int) *pool.Future[User] {
	return r.findBy(ctx, "find user by id", db.Eq("id", userID))
}

func (r *UserRepository) FindByEmailPassword(ctx context.Context, email, password string) *pool.Future[User] {
	return r.findBy(ctx, "find user by credentials", db.Eq("email", email), db.Eq("password", password))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) *pool.Future[User] {
	return r.findBy(ctx, "find user by email", db.Eq("email", email))
}

func (r *UserRepository) findBy(ctx context.Context, op string, conditions ...db.Condition) *pool.Future[User] {
	return pool.Submit(ctx, r.pool, func(ctx context.Context) (User, error) {
		var user User

		err := r.db.GetOneBy(ctx, &user, conditions...)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return User{}, ErrUserNotFound
			}
			return User{}, fmt.Errorf("%s: %w", op, err)
		}

		return user, nil
	})
}

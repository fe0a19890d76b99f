package repository

import (
	"context"

	"conduit/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, entity any, conditions ...db.Condition) error
}

package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Condition is a single equality predicate.
type Condition struct {
	Column string
	Value  any
}

func Eq(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

type GormDB struct {
	db *gorm.DB
}

// Open connects with the given driver ("postgres" or "sqlite"). gorm output
// is routed through the zap logger at warn level.
func Open(driver, dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSqlite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if logs != nil {
		gormLogger = logger.New(zap.NewStdLog(logs.Desugar()), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

func NewSqliteDB(dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	return Open(DriverSqlite, dsn, logs)
}

// NewGormDB wraps an already opened gorm handle.
func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates a single record. Generated columns (the primary key) are
// written back into record.
func (f *GormDB) Insert(ctx context.Context, record any) error {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("record type must be pointer to a struct: %T", record)
	}

	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w: %w", ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// GetOneBy loads the first record matching every condition into entity.
func (f *GormDB) GetOneBy(ctx context.Context, entity any, conditions ...Condition) error {
	tx := f.db.WithContext(ctx)
	for _, c := range conditions {
		tx = tx.Where(fmt.Sprintf("%s = ?", c.Column), c.Value)
	}

	err := tx.First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %s: %w", columns(conditions), err)
	}
	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// SetMaxOpenConns caps the open and idle connections of the underlying pool.
func (f *GormDB) SetMaxOpenConns(n int) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(n)
	sqlDB.SetMaxIdleConns(n)
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func columns(conditions []Condition) string {
	names := make([]string, 0, len(conditions))
	for _, c := range conditions {
		names = append(names, fmt.Sprintf("%q", c.Column))
	}
	return fmt.Sprint(names)
}

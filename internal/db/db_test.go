package db_test

import (
	"context"
	"database/sql"
	"errors"

	"conduit/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
	Email    string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.NewGormDB(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Open", func() {
		It("should reject unknown drivers", func() {
			_, err := db.Open("oracle", "dsn", nil)
			Expect(err).To(MatchError(db.ErrUnsupportedDriver))
		})
	})

	Describe("Insert", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","email"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("alice", "a@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("should write the generated id back", func() {
				record := Test{Username: "alice", Email: "a@x.com"}
				err := testDB.Insert(ctx, &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicateKey", func() {
				record := Test{Username: "alice", Email: "a@x.com"}
				err := testDB.Insert(ctx, &record)
				Expect(err).To(MatchError(db.ErrDuplicateKey))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record is not a pointer to a struct", func() {
			It("should fail without touching the database", func() {
				err := testDB.Insert(ctx, Test{})
				Expect(err).To(MatchError(ContainSubstring("pointer to a struct")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE email = \$1 AND username = \$2 ORDER BY "tests"\."id" LIMIT \$3.*`).
					WithArgs("a@x.com", "alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
						AddRow(1, "alice", "a@x.com"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, &result, db.Eq("email", "a@x.com"), db.Eq("username", "alice"))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs(99, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, &result, db.Eq("id", 99))
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE email.*`).
					WithArgs("a@x.com", 1).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				var result Test
				err := testDB.GetOneBy(ctx, &result, db.Eq("email", "a@x.com"))
				Expect(err).To(MatchError(ContainSubstring("getting record by")))
				Expect(errors.Is(err, sql.ErrConnDone)).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})

package repository_test

import (
	"context"
	"fmt"

	"conduit/internal/db"
	"conduit/internal/pool"
	"conduit/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserRepository on sqlite", func() {
	var (
		repo    *repository.UserRepository
		store   *db.GormDB
		workers *pool.Pool
		ctx     context.Context
		newUser repository.NewUser
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()

		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		store, err = db.NewSqliteDB(dsn, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(store.SetMaxOpenConns(1)).To(Succeed())

		workers = pool.New(4, zap.NewNop().Sugar())
		repo = repository.NewUserRepository(store, workers)
		Expect(repo.Migrate()).To(Succeed())

		newUser = repository.NewUser{
			Email:    "a@x.com",
			Username: "alice",
			Password: "secret",
		}
	})

	AfterEach(func() {
		workers.Close()
		Expect(store.Close()).To(Succeed())
	})

	It("should find an inserted user by the returned id", func() {
		inserted, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(inserted.ID).To(BeNumerically(">", 0))

		found, err := repo.Find(ctx, inserted.ID).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(Equal(inserted))
		Expect(found.Email).To(Equal(newUser.Email))
		Expect(found.Username).To(Equal(newUser.Username))
		Expect(found.Password).To(Equal(newUser.Password))
	})

	It("should assign a fresh id to every user", func() {
		first, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())

		newUser.Email = "b@x.com"
		second, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(second.ID).NotTo(Equal(first.ID))
	})

	It("should authenticate with the exact email and password", func() {
		inserted, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())

		found, err := repo.FindByEmailPassword(ctx, newUser.Email, newUser.Password).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(Equal(inserted))

		_, err = repo.FindByEmailPassword(ctx, newUser.Email, "wrong").Await(ctx)
		Expect(err).To(MatchError(repository.ErrUserNotFound))
	})

	It("should return identical data on repeated finds", func() {
		inserted, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())

		first, err := repo.Find(ctx, inserted.ID).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		second, err := repo.Find(ctx, inserted.ID).Await(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should reject a second user with the same email", func() {
		_, err := repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).NotTo(HaveOccurred())

		newUser.Username = "impostor"
		_, err = repo.Insert(ctx, newUser).Await(ctx)
		Expect(err).To(MatchError(repository.ErrDuplicateEmail))
	})

	It("should report an unknown id as not found", func() {
		_, err := repo.Find(ctx, 404).Await(ctx)
		Expect(err).To(MatchError(repository.ErrUserNotFound))
	})
})

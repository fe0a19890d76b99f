package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"conduit/internal/core"
	"conduit/internal/http/handler"
	"conduit/internal/http/handler/fake"
	"conduit/internal/http/handler/middleware"
	"conduit/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UsersHandler", func() {
	var (
		uh            *handler.UsersHandler
		fakeService   *fake.AccountService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		storedUser    core.User
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.AccountService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		storedUser = core.User{
			ID:       1,
			Email:    "a@x.com",
			Username: "alice",
			Password: "secret",
		}

		w = httptest.NewRecorder()
		uh = handler.NewUsersHandler(fakeLogger, fakeValidator, fakeService)
	})

	decode := func() map[string]map[string]any {
		var response map[string]map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		return response
	}

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"user":{"email":"a@x.com","username":"alice","password":"secret"}}`)
			req = httptest.NewRequest(http.MethodPost, handler.RegisterPath, body)
			req.Header.Set("Content-Type", "application/json")
			fakeService.RegisterReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			uh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the user without a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				response := decode()
				Expect(response["user"]).To(HaveKeyWithValue("id", BeNumerically("==", 1)))
				Expect(response["user"]).To(HaveKeyWithValue("email", "a@x.com"))
				Expect(response["user"]).To(HaveKeyWithValue("username", "alice"))
				Expect(response["user"]).To(HaveKeyWithValue("password", "secret"))
				Expect(response["user"]).NotTo(HaveKey("token"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, newUser := fakeService.RegisterArgsForCall(0)
				Expect(newUser).To(Equal(core.NewUser{Email: "a@x.com", Username: "alice", Password: "secret"}))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"user":{"email":"a@x.com","username":"alice"}}`)
				req = httptest.NewRequest(http.MethodPost, handler.RegisterPath, body)
			})

			It("should return 400 without touching the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("password"))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("payload decoding fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.User{}, &core.Error{Kind: core.KindStorage, Op: "register", Err: fakeErr})
			})

			It("should return 500 and hide the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.User{}, &core.Error{Kind: core.KindStorage, Op: "register", Err: core.ErrEmailTaken})
			})

			It("should return 500 naming the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrEmailTaken.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"user":{"email":"a@x.com","password":"secret"}}`)
			req = httptest.NewRequest(http.MethodPost, handler.LoginPath, body)
			withToken := storedUser
			withToken.Token = "test-token"
			fakeService.LoginReturns(withToken, nil)
		})

		JustBeforeEach(func() {
			uh.HandleLogin(w, req)
		})

		When("authentication succeeds", func() {
			It("should return the user with a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				response := decode()
				Expect(response["user"]).To(HaveKeyWithValue("token", "test-token"))
				Expect(fakeService.LoginCallCount()).To(Equal(1))
				_, creds := fakeService.LoginArgsForCall(0)
				Expect(creds).To(Equal(core.Credentials{Email: "a@x.com", Password: "secret"}))
			})
		})

		When("no user matches", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.User{}, &core.Error{Kind: core.KindNotFound, Op: "login", Err: core.ErrUserNotFound})
			})

			It("should return 401 and no token", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).NotTo(ContainSubstring("token\""))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserNotFound.Error()))
			})
		})

		When("the body is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, handler.LoginPath, strings.NewReader(`{"user":`))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.User{}, &core.Error{Kind: core.KindStorage, Op: "login", Err: fakeErr})
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCurrentUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, handler.CurrentUserPath, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, 1))
			fakeService.CurrentUserReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			uh.HandleCurrentUser(w, req)
		})

		When("the user exists", func() {
			It("should return it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				response := decode()
				Expect(response["user"]).To(HaveKeyWithValue("email", "a@x.com"))
				Expect(response["user"]).NotTo(HaveKey("token"))
				_, id := fakeService.CurrentUserArgsForCall(0)
				Expect(id).To(Equal(1))
			})
		})

		When("the user no longer exists", func() {
			BeforeEach(func() {
				fakeService.CurrentUserReturns(core.User{}, &core.Error{Kind: core.KindNotFound, Op: "current user", Err: core.ErrUserNotFound})
			})

			It("should return 401 with an empty body", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.Len()).To(BeZero())
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.CurrentUserReturns(core.User{}, &core.Error{Kind: core.KindStorage, Op: "current user", Err: fakeErr})
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("no user id was attached", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, handler.CurrentUserPath, nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CurrentUserCallCount()).To(Equal(0))
			})
		})
	})
})

var _ = Describe("HealthHandler", func() {
	var (
		fakePinger *fake.Pinger
		w          *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakePinger = new(fake.Pinger)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		handler.NewHealthHandler(zap.NewNop().Sugar(), fakePinger).
			HandleHealth(w, httptest.NewRequest(http.MethodGet, handler.HealthPath, nil))
	})

	It("should report UP", func() {
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"UP"`))
	})

	When("the database is unreachable", func() {
		BeforeEach(func() {
			fakePinger.PingReturns(errors.New("connection refused"))
		})

		It("should report DOWN", func() {
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Body.String()).To(ContainSubstring(`"DOWN"`))
		})
	})
})

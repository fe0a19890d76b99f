package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"conduit/internal/http/handler/middleware"
	"conduit/internal/http/handler/middleware/fake"
	tokenIssuer "conduit/pkg/jwt"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w          *httptest.ResponseRecorder
		req        *http.Request
		fakeLogger *zap.SugaredLogger
		reached    bool
		seenReq    *http.Request
		next       http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
		fakeLogger = zap.NewNop().Sugar()
		reached = false
		seenReq = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			seenReq = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			Expect(reached).To(BeTrue())
			id := middleware.RequestIDFrom(seenReq.Context())
			Expect(id).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(id))
		})

		It("should keep the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			Expect(middleware.RequestIDFrom(seenReq.Context())).To(Equal("req-1"))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			middleware.NewLoggingMiddleware(fakeLogger).Logging(next).ServeHTTP(w, req)
			Expect(reached).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Authenticate", func() {
		var fakeValidator *fake.TokenValidator

		BeforeEach(func() {
			fakeValidator = new(fake.TokenValidator)
			fakeValidator.ValidateReturns(&tokenIssuer.Claims{UserID: 12}, nil)
		})

		JustBeforeEach(func() {
			middleware.NewAuthMiddleware(fakeLogger, fakeValidator).Authenticate(next).ServeHTTP(w, req)
		})

		When("a bearer token is valid", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer good.token")
			})

			It("should put the user id in the context", func() {
				Expect(reached).To(BeTrue())
				userID, ok := middleware.UserIDFrom(seenReq.Context())
				Expect(ok).To(BeTrue())
				Expect(userID).To(Equal(12))
				Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("good.token"))
			})
		})

		When("the Token scheme is used", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Token good.token")
			})

			It("should accept it", func() {
				Expect(reached).To(BeTrue())
			})
		})

		When("the header is missing", func() {
			It("should return 401 without calling the handler", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("authorization header is required"))
				Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the scheme is unknown", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			})

			It("should return 401", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer bad.token")
				fakeValidator.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return 401", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(tokenIssuer.ErrTokenNotValid.Error()))
			})
		})
	})

	Describe("Metrics", func() {
		var (
			reg     *prometheus.Registry
			metrics *middleware.MetricsMiddleware
		)

		BeforeEach(func() {
			var err error
			reg = prometheus.NewRegistry()
			metrics, err = middleware.NewMetricsMiddleware(reg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should count requests by route template", func() {
			router := mux.NewRouter()
			router.Use(metrics.Metrics)
			router.Handle("/api/user", next).Methods(http.MethodGet)

			router.ServeHTTP(w, req)

			expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{code="418",method="GET",route="/api/user"} 1
`
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total")).To(Succeed())
		})

		It("should count unmatched paths and methods when instrumenting a router", func() {
			router := mux.NewRouter()
			metrics.Instrument(router)
			router.Handle("/api/user", next).Methods(http.MethodGet)

			router.ServeHTTP(w, req)
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
			notAllowed := httptest.NewRecorder()
			router.ServeHTTP(notAllowed, httptest.NewRequest(http.MethodPost, "/api/user", nil))
			Expect(notAllowed.Code).To(Equal(http.StatusMethodNotAllowed))

			expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{code="404",method="GET",route="unmatched"} 1
http_requests_total{code="405",method="POST",route="unmatched"} 1
http_requests_total{code="418",method="GET",route="/api/user"} 1
`
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total")).To(Succeed())
		})

		It("should refuse to register twice", func() {
			_, err := middleware.NewMetricsMiddleware(reg)
			var already prometheus.AlreadyRegisteredError
			Expect(errors.As(err, &already)).To(BeTrue())
		})
	})
})

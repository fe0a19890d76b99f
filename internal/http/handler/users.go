package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"conduit/internal/core"
	"conduit/internal/http/handler/middleware"
	"conduit/internal/http/payload"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	RegisterPath    = "/api/users"
	LoginPath       = "/api/users/login"
	CurrentUserPath = "/api/user"
)

var (
	Register    = "POST " + RegisterPath
	Login       = "POST " + LoginPath
	CurrentUser = "GET " + CurrentUserPath
)

type UsersHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
}

func NewUsersHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService) *UsersHandler {
	return &UsersHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
	}
}

// Mount registers the user routes. auth guards the current-user route.
func (h *UsersHandler) Mount(router *mux.Router, auth mux.MiddlewareFunc) {
	router.HandleFunc(RegisterPath, h.HandleRegister).Methods(http.MethodPost)
	router.HandleFunc(LoginPath, h.HandleLogin).Methods(http.MethodPost)
	router.Handle(CurrentUserPath, auth(http.HandlerFunc(h.HandleCurrentUser))).Methods(http.MethodGet)
}

func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var registration payload.Registration
	err := h.requestValidator.DecodeJSONPayload(r, &registration)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.Register(r.Context(), registration.ToCoreNewUser())
	if err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   publicError(err),
		}, statusFor(core.KindOf(err)),
			requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"kind", core.KindOf(err).String(),
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, payload.UserResponse{User: user}, http.StatusOK, requestId)
}

func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var login payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &login)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.Login(r.Context(), login.ToCoreCredentials())
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   publicError(err),
		}, statusFor(core.KindOf(err)),
			requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"kind", core.KindOf(err).String(),
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, payload.UserResponse{User: user}, http.StatusOK, requestId)
}

func (h *UsersHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		h.logs.Errorw("no authenticated user in request context",
			"handler", CurrentUser,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.CurrentUser(r.Context(), userID)
	if err != nil {
		kind := core.KindOf(err)
		h.logs.Errorw("failed to get current user",
			"error", err,
			"kind", kind.String(),
			"user_id", userID,
			"handler", CurrentUser,
			"request_id", requestId)

		if kind == core.KindNotFound {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		h.respond(w, Response{
			Message: "Could not load user",
			Error:   publicError(err),
		}, statusFor(kind),
			requestId)
		return
	}

	h.respond(w, payload.UserResponse{User: user}, http.StatusOK, requestId)
}

func (h *UsersHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

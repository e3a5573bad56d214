package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

// AuthHandler обслуживает регистрацию, вход и проверку токена.
type AuthHandler struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
	validateUC usecases_port.ValidateTokenUseCasePort
}

func NewAuthHandler(
	registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	validateUC usecases_port.ValidateTokenUseCasePort,
) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC, validateUC: validateUC}
}

func decodeCredentials(r *http.Request) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	return &req, nil
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	req, err := decodeCredentials(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.registerUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			WriteJSONError(w, http.StatusConflict, "Email is already registered")
			return
		}
		logger.Error("Register use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	req, err := decodeCredentials(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		// Несуществующий email и неверный пароль для клиента неразличимы.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Login use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// ValidateToken обрабатывает POST /api/v1/auth/validate
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ValidateToken"})

	var req ValidateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		WriteJSONError(w, http.StatusBadRequest, "Token is required")
		return
	}

	claims, err := h.validateUC.Execute(r.Context(), req.Token)
	if err != nil {
		logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	RespondWithJSON(w, http.StatusOK, UserResponse{
		ID:    claims.UserID.String(),
		Email: claims.Email,
		Role:  claims.Role,
	})
}

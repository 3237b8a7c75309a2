package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hostelhub/complaint-server/internal/models"
	"go.uber.org/zap"
)

// AuthHandler issues identity tokens. There is no credential store: the
// endpoints sign whatever identity the caller claims, exactly mirroring
// the mock auth the frontend was built against. The token moves identity
// into a bearer header; it does not authenticate anyone.
type AuthHandler struct {
	secret string
	logger *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler signing tokens with secret.
func NewAuthHandler(secret string, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{secret: secret, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Room     string `json:"room"`
	Block    string `json:"block"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.UserType == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: email, userType")
		return
	}

	name := "Student User"
	if req.UserType == models.RoleAdmin {
		name = "Admin User"
	}
	ident := models.Identity{Email: req.Email, Name: name, Role: req.UserType}

	h.issue(w, ident)
}

// Signup handles POST /api/v1/auth/signup
// New accounts are always students.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: email, name")
		return
	}

	ident := models.Identity{Email: req.Email, Name: req.Name, Role: models.RoleStudent}

	h.issue(w, ident)
}

func (h *AuthHandler) issue(w http.ResponseWriter, ident models.Identity) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": ident.Email,
		"name":  ident.Name,
		"role":  ident.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		h.logger.Errorw("Failed to sign token", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	h.logger.Infow("Token issued", "email", ident.Email, "role", ident.Role)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": signed,
		"user":  ident,
	})
}

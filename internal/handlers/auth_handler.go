package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/auth"
	"github.com/germanygsg/medrec/internal/config"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/middleware"
	"github.com/germanygsg/medrec/internal/models"
	"github.com/germanygsg/medrec/internal/validators"
)

const credentialProvider = "credential"

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *auth.Sessions
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, sessions: sessions}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid registration data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Registration failed.")
		return
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: email,
	}

	account := models.Account{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		ProviderID:   credentialProvider,
		AccountID:    email,
		PasswordHash: string(hashed),
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		log.Error().Err(err).Msg("user registration failed")
		httperr.Internal(c, "failed_to_create_user", "Registration failed.")
		return
	}

	token, session, err := h.startSession(c, user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Registration succeeded but sign-in failed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token":      token,
		"expires_at": session.ExpiresAt,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid credentials payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Sign-in failed.")
		return
	}

	var account models.Account
	if err := h.db.
		Where("user_id = ? AND provider_id = ?", user.ID, credentialProvider).
		First(&account).Error; err != nil {

		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, session, err := h.startSession(c, user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Sign-in failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token":      token,
		"expires_at": session.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	if err := h.sessions.Revoke(c.Request.Context(), sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("session revoke failed")
		httperr.Internal(c, "failed_to_logout", "Sign-out failed.")
		return
	}

	c.Status(http.StatusNoContent)
}

// Providers advertises the enabled identity providers. Secrets never
// leave the server.
func (h *AuthHandler) Providers(c *gin.Context) {
	providers := h.config.EnabledProviders()
	if providers == nil {
		providers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// --------- Session bootstrap ---------

func (h *AuthHandler) startSession(c *gin.Context, userID string) (string, *models.Session, error) {
	session, err := h.sessions.Create(
		c.Request.Context(),
		userID,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("session create failed")
		return "", nil, err
	}

	token, err := auth.SignAccessToken(h.config.JWTSecret, userID, session.ID, session.ExpiresAt)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return "", nil, err
	}

	return token, session, nil
}

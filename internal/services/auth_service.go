// internal/services/auth_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/config"
	"github.com/pranaara/pranaara-backend/internal/models"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type AuthService struct {
	db         *gorm.DB
	cfg        *config.Config
	httpClient *http.Client
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

// googleUserInfo is the subset of the OpenID userinfo payload we consume.
type googleUserInfo struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *AuthService) Register(req *RegisterRequest, userAgent, ipAddress string) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, errors.New("user with this email already exists")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Provider: models.AuthProviderLocal,
		Role:     models.UserRoleCustomer,
		Status:   models.UserStatusActive,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueSession(user, userAgent, ipAddress)
}

func (s *AuthService) Login(req *LoginRequest, userAgent, ipAddress string) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if user.Status == models.UserStatusSuspended {
		return nil, errors.New("account is suspended")
	}

	// Google-provisioned accounts have no local password
	if user.PasswordHash == "" {
		return nil, errors.New("invalid email or password")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.db.Save(&user)

	return s.issueSession(&user, userAgent, ipAddress)
}

// LoginWithGoogle exchanges a Google OAuth access token for a local session.
// The token is verified by calling the userinfo endpoint; an unknown email
// provisions a new customer account.
func (s *AuthService) LoginWithGoogle(req *GoogleLoginRequest, userAgent, ipAddress string) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	info, err := s.fetchGoogleUserInfo(req.AccessToken)
	if err != nil {
		return nil, err
	}

	if info.Email == "" || !info.EmailVerified {
		return nil, errors.New("google account email is not verified")
	}

	var user models.User
	err = s.db.Where("email = ?", info.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:       info.Name,
			Email:      info.Email,
			Provider:   models.AuthProviderGoogle,
			ProviderID: info.Sub,
			AvatarURL:  info.Picture,
			Role:       models.UserRoleCustomer,
			Status:     models.UserStatusActive,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("database error: %w", err)
	default:
		if user.Status == models.UserStatusSuspended {
			return nil, errors.New("account is suspended")
		}
		// Link the Google identity to an existing local account
		if user.ProviderID == "" {
			user.Provider = models.AuthProviderGoogle
			user.ProviderID = info.Sub
		}
		if user.AvatarURL == "" {
			user.AvatarURL = info.Picture
		}
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.db.Save(&user)

	return s.issueSession(&user, userAgent, ipAddress)
}

// Logout revokes the session embedded in the caller's token. Revoking an
// already-revoked session is a no-op.
func (s *AuthService) Logout(sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return errors.New("invalid session")
	}

	if err := s.db.Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueSession(user *models.User, userAgent, ipAddress string) (*AuthResponse, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID,
		Token:     token,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.JWT.AccessTokenTTL) * time.Hour),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := utils.GenerateJWT(
		user.ID,
		user.Email,
		string(user.Role),
		session.ID.String(),
		s.cfg.JWT.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}

func (s *AuthService) fetchGoogleUserInfo(accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, s.cfg.OAuth.GoogleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid google access token")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return &info, nil
}

package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a username/password pair is an admin.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier checks against a single configured admin account.
type StaticVerifier struct {
	username string
	hash     []byte
}

// NewStaticVerifier prefers passwordHash (bcrypt) and hashes password otherwise.
func NewStaticVerifier(username, password, passwordHash string) (*StaticVerifier, error) {
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &StaticVerifier{username: username, hash: []byte(passwordHash)}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &StaticVerifier{username: username, hash: hash}, nil
}

func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return userOK && passOK
}

type AuthService struct {
	verifier  CredentialVerifier
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(verifier CredentialVerifier, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		verifier:  verifier,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(req.Username, req.Password) {
		logger.WithFields(logrus.Fields{"username": req.Username}).Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateAdminToken(req.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  req.Username,
	}, nil
}

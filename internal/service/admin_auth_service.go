package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/HemInfotech/hem_api/internal/utils"
)

// AdminAuthService authenticates the single configured admin account of the
// quotation console and issues session tokens.
type AdminAuthService struct {
	email        string
	passwordHash []byte
	tokens       *utils.TokenIssuer
}

// NewAdminAuthService builds the service from the configured credential.
// password may be plaintext or an existing bcrypt hash. An empty password
// disables login.
func NewAdminAuthService(email, password string, tokens *utils.TokenIssuer) (*AdminAuthService, error) {
	s := &AdminAuthService{email: strings.ToLower(strings.TrimSpace(email)), tokens: tokens}
	switch {
	case password == "":
		log.Warn().Msg("ADMIN_PASSWORD not set - admin login disabled")
	case strings.HasPrefix(password, "$2"):
		if _, err := bcrypt.Cost([]byte(password)); err != nil {
			return nil, fmt.Errorf("invalid ADMIN_PASSWORD hash: %w", err)
		}
		s.passwordHash = []byte(password)
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		s.passwordHash = hash
	}
	return s, nil
}

// Login verifies the credential and returns a signed JWT.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	log.Debug().Str("email", email).Msg("Login attempt")

	if s.passwordHash == nil {
		return "", utils.ErrInvalidCredentials
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if subtle.ConstantTimeCompare([]byte(normalized), []byte(s.email)) != 1 {
		log.Warn().Str("email", email).Msg("Unknown admin email")
		return "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(s.email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	log.Info().Str("email", s.email).Msg("Login successful")
	return token, nil
}

package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"

	"billdesk/internal/api"
	"billdesk/internal/models"
)

// TokenSink receives the bearer token of the active session. The API client
// implements it.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// AuthService handles login, signout and password-reset flows and keeps the
// client-side view of the current session.
type AuthService struct {
	auth api.AuthAPI
	sink TokenSink

	mu      sync.RWMutex
	session *models.Session
}

// NewAuthService creates an AuthService delegating to the given auth API.
func NewAuthService(auth api.AuthAPI, sink TokenSink) *AuthService {
	return &AuthService{
		auth: auth,
		sink: sink,
	}
}

// Login exchanges credentials for a session. The returned token is attached
// to subsequent API requests; its claims are parsed without verification
// because the signing secret never leaves the backend.
func (s *AuthService) Login(email, password string) (*models.Session, error) {
	result, err := s.auth.Login(email, password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{Token: result.Token}
	if claims, err := parseClaims(result.Token); err == nil {
		if username, ok := claims["username"].(string); ok {
			session.Username = username
		}
		if exp, ok := claims["exp"].(float64); ok {
			session.ExpiresAt = time.Unix(int64(exp), 0)
		}
	}

	s.sink.SetToken(result.Token)
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session, nil
}

// Register creates a new account; the user still logs in afterwards.
func (s *AuthService) Register(email, password string) error {
	return s.auth.Register(email, password)
}

// Signout invalidates the backend session and drops the local one.
func (s *AuthService) Signout() error {
	if err := s.auth.Signout(); err != nil {
		return err
	}
	s.sink.ClearToken()
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

// CurrentUser fetches the signed-in user's profile.
func (s *AuthService) CurrentUser() (*models.User, error) {
	return s.auth.GetUserDetails()
}

// ForgotPassword starts a password reset for email.
func (s *AuthService) ForgotPassword(email string) error {
	return s.auth.ForgotPassword(email)
}

// ResetPassword completes a password reset with the emailed token.
func (s *AuthService) ResetPassword(resetToken, newPassword string) error {
	return s.auth.ResetPassword(resetToken, newPassword)
}

// Session returns the active session, if any.
func (s *AuthService) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// Authenticated reports whether a non-expired session is active.
func (s *AuthService) Authenticated() bool {
	session, ok := s.Session()
	return ok && !session.Expired()
}

// parseClaims extracts the claims from a token without verifying its
// signature.
func parseClaims(token string) (jwt.MapClaims, error) {
	parser := &jwt.Parser{}
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected token claims type")
	}
	return claims, nil
}

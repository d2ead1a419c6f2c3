package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Engel1110/gaming-room-cust/models"
	"github.com/Engel1110/gaming-room-cust/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Session is the identity attached to an authenticated request.
type Session struct {
	ID       string
	UserID   uuid.UUID
	Username string
}

// SessionService issues, validates, and revokes login sessions. A session is
// a redis record with a TTL, referenced by a signed JWT that the client
// carries in a cookie. Revoking the redis record kills the session even if
// the token itself has not expired.
type SessionService struct {
	store  repository.SessionStore
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(store repository.SessionStore, secret string, ttl time.Duration) *SessionService {
	return &SessionService{store: store, secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a server-side session for the user and returns the signed
// token to hand to the client.
func (s *SessionService) Issue(ctx context.Context, user *models.User) (string, error) {
	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, user.ID.String(), s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid":      sessionID,
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      time.Now().Add(s.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks the token signature and that the referenced session is
// still alive in the store.
func (s *SessionService) Validate(ctx context.Context, tokenStr string) (*Session, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidSession
	}

	sessionID, _ := claims["sid"].(string)
	userIDStr, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	if sessionID == "" || userIDStr == "" {
		return nil, ErrInvalidSession
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidSession
	}

	storedUserID, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if storedUserID != userIDStr {
		return nil, ErrInvalidSession
	}

	return &Session{ID: sessionID, UserID: userID, Username: username}, nil
}

// Revoke deletes the server-side session. Unparseable tokens and already
// revoked sessions are ignored, so logout is idempotent.
func (s *SessionService) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil
	}
	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		return nil
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *SessionService) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

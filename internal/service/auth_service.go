package service

import (
	"context"
	"fmt"
	"time"

	"artcurator/internal/common"
	"artcurator/internal/models"
	"artcurator/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

// Identity is the authenticated principal embedded in every token.
type Identity struct {
	UserID   int
	Username string
}

// AuthService handles user auth logic
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{users: users, signingKey: cfg.SigningKey, tokenTTL: ttl}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

// SignUp hashes the password and creates the account. ErrConflict if the
// username is taken.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (*models.PublicUser, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrInvalidInput)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q: %w", username, common.ErrConflict)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}
	return &models.PublicUser{UserID: u.ID, Username: u.Username}, nil
}

// SignIn validates credentials and returns a signed token plus the public
// identity. Unknown usernames and wrong passwords fail identically so the
// endpoint leaks nothing about which usernames exist.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, *models.PublicUser, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, common.ErrUnauthorized
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", nil, common.ErrUnauthorized
	}

	token, err := s.issueToken(u.ID, u.Username)
	if err != nil {
		return "", nil, err
	}
	return token, &models.PublicUser{UserID: u.ID, Username: u.Username}, nil
}

// ParseToken verifies the signature and expiry and returns the embedded identity.
func (s *AuthService) ParseToken(accessToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, common.ErrUnauthorized
	}
	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// DeleteUser removes an account. Not reachable from the client UI; kept for
// development cleanup.
func (s *AuthService) DeleteUser(ctx context.Context, userID int) error {
	return s.users.Delete(ctx, userID)
}

// GetUsername resolves a user id to its username.
func (s *AuthService) GetUsername(ctx context.Context, userID int) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
	}
	return u.Username, nil
}

func (s *AuthService) issueToken(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}

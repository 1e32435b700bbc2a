package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
	"github.com/sustainlite/sustainlite-api/internal/metrics"
)

const (
	defaultTokenTTL = 30 * time.Minute
	defaultIssuer   = "sustainlite"
	tokenType       = "bearer"
)

// AuthConfig carries the server-held signing material and hashing cost.
type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

// AuthService implements registration, login and bearer token resolution.
type AuthService struct {
	repo      ports.UserRepository
	secret    []byte
	issuer    string
	tokenTTL  time.Duration
	cost      int
	dummyHash []byte
	now       func() time.Time
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultIssuer
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	// Compared against when the username is unknown, so a miss costs the
	// same bcrypt work as a wrong password.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("sustainlite:unknown-user"), cfg.BcryptCost)

	return &AuthService{
		repo:      repo,
		secret:    []byte(cfg.JWTSecret),
		issuer:    cfg.Issuer,
		tokenTTL:  cfg.TokenTTL,
		cost:      cfg.BcryptCost,
		dummyHash: dummy,
		now:       time.Now,
		log:       log,
	}
}

// Register creates a new account. Username collisions are reported before
// email collisions.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(username) == "" {
		verr.Add("username", "username is required")
	}
	if strings.TrimSpace(email) == "" {
		verr.Add("email", "email is required")
	}
	if password == "" {
		verr.Add("password", "password is required")
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("password", "password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate verifies a username/password pair. Both an unknown username
// and a wrong password yield domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an HS256 bearer token with the username as subject.
func (s *AuthService) IssueToken(user *domain.User) (*domain.Token, error) {
	now := s.now().UTC()
	exp := now.Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.Token{AccessToken: signed, TokenType: tokenType, ExpiresAt: exp}, nil
}

// Login authenticates and issues a token in one step.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, *domain.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		return nil, nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// ResolveIdentity maps a bearer token back to its user. Every token problem,
// and a subject that no longer exists, is reported as domain.ErrUnauthorized.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.repo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
	"github.com/luigibreda/Monety-Backend/internal/token"
)

// OwnershipVerifier checks that a presented refresh token is the one
// currently stored for a user. Mutating endpoints use it as a second factor:
// a token issued before the user's latest login (or cleared by logout) no
// longer matches and is rejected.
type OwnershipVerifier interface {
	VerifyOwnership(ctx context.Context, refreshToken, userID string) error
}

// SessionService orchestrates registration, login, logout and token refresh.
// Exactly one refresh token is live per user at any time: each login
// overwrites the stored value, revoking every session issued before.
type SessionService interface {
	OwnershipVerifier

	// Register validates input and creates a non-admin user with a salted
	// irreversible password hash. No token is issued.
	Register(ctx context.Context, name, email, password, confirmPassword string) error

	// Login verifies credentials, issues both token classes and persists the
	// refresh token on the user record.
	Login(ctx context.Context, email, password string) (access, refresh string, err error)

	// Me resolves the authenticated identity to its public user record.
	Me(ctx context.Context, userID string) (*model.PublicUser, error)

	// Logout clears the stored refresh token of whichever user holds the
	// presented one. Idempotent: an absent or unknown token is a success.
	// Reports whether a session was actually cleared.
	Logout(ctx context.Context, refreshToken string) (cleared bool, err error)

	// RefreshAccess mints a new access token for the holder of a valid,
	// currently-stored refresh token.
	RefreshAccess(ctx context.Context, refreshToken string) (string, error)
}

type sessionService struct {
	users  repository.UserRepository
	tokens *token.Issuer
	now    func() time.Time
}

// NewSessionService constructs a SessionService on top of the user
// repository and the token issuer.
func NewSessionService(users repository.UserRepository, tokens *token.Issuer) SessionService {
	return &sessionService{users: users, tokens: tokens, now: time.Now}
}

func (s *sessionService) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	switch {
	case name == "":
		return validation("Nome é obrigatório.")
	case email == "":
		return validation("Email é obrigatório.")
	case password == "":
		return validation("Senha é obrigatório.")
	case confirmPassword == "":
		return validation("Confirmação de senha é obrigatório.")
	case password != confirmPassword:
		return validation("Senhas estão diferentes.")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return ErrConflict
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, &model.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		IsAdmin:   false,
		CreatedAt: s.now().UTC(),
	})
	return err
}

func (s *sessionService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" {
		return "", "", validation("Email é obrigatório.")
	}
	if password == "" {
		return "", "", validation("Senha é obrigatório.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", validation("Email não encontrado.")
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", validation("Password está incorreto.")
	}

	claims := token.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
	now := s.now()

	access, err := s.tokens.NewAccessToken(claims, now)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.NewRefreshToken(claims, now)
	if err != nil {
		return "", "", err
	}

	// Overwriting the stored token is what revokes any earlier session;
	// two concurrent logins race and the last write defines the live one.
	if err := s.users.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (s *sessionService) Me(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *sessionService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	if refreshToken == "" {
		return false, nil
	}

	user, err := s.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (s *sessionService) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errNoToken
	}
	if _, err := s.tokens.ParseRefresh(refreshToken); err != nil {
		return "", errInvalidToken
	}

	// The token must still be the stored one; a newer login elsewhere
	// replaces it and ends this session.
	user, err := s.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errInvalidToken
		}
		return "", err
	}

	claims := token.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
	return s.tokens.NewAccessToken(claims, s.now())
}

func (s *sessionService) VerifyOwnership(ctx context.Context, refreshToken, userID string) error {
	if refreshToken == "" {
		return errNoToken
	}
	if _, err := s.tokens.ParseRefresh(refreshToken); err != nil {
		return errInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return errInvalidToken
	}
	return nil
}

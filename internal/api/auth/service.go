package auth

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskflow/storefront/internal/shared"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists with this email")
)

type Service struct {
	users   *store.Collection[types.User]
	tokens  *shared.TokenManager
	refresh *shared.TokenManager
}

func NewService(users *store.Collection[types.User], tokens, refresh *shared.TokenManager) *Service {
	return &Service{users: users, tokens: tokens, refresh: refresh}
}

// issueTokens mints the access/refresh pair for a user.
func (s *Service) issueTokens(user types.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refresh.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, RefreshToken: refreshToken, User: user.Public()}, nil
}

func (s *Service) Login(email, password string) (*AuthResponse, error) {
	user, ok := s.users.Find(func(u types.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("User logged in",
		zap.Int("userId", user.ID),
		zap.String("role", string(user.Role)))
	return response, nil
}

func (s *Service) Signup(req SignupRequest) (*AuthResponse, error) {
	if _, exists := s.users.Find(func(u types.User) bool {
		return strings.EqualFold(u.Email, req.Email)
	}); exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := s.users.Insert(func(id int, now time.Time) types.User {
		return types.User{
			ID:           id,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         types.RoleUser,
			CreatedAt:    now,
		}
	})

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("User signed up", zap.Int("userId", user.ID))
	return response, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. Tokens rotate:
// the old refresh token keeps working until it expires, matching stateless
// verification.
func (s *Service) Refresh(raw string) (*AuthResponse, error) {
	claims, err := s.refresh.Verify(raw)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, ok := s.users.Get(claims.UserID)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *Service) Profile(userID int) (types.PublicUser, error) {
	user, ok := s.users.Get(userID)
	if !ok {
		return types.PublicUser{}, store.ErrNotFound
	}
	return user.Public(), nil
}

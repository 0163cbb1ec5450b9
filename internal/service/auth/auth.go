package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	AppendRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	RemoveRefreshToken(ctx context.Context, token string) (bool, error)
	SwapRefreshToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) (bool, error)
	ClearRefreshTokens(ctx context.Context, id primitive.ObjectID) error
}

// AuthService drives the session lifecycle: registration, login, logout and
// refresh-token rotation with replay teardown.
type AuthService struct {
	log      logger.Log
	tokens   *TokenManager
	userRepo UserRepo
}

func NewAuthService(l logger.Log, tokens *TokenManager, userRepo UserRepo) *AuthService {
	return &AuthService{
		log:      l,
		tokens:   tokens,
		userRepo: userRepo,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	return s.userRepo.CreateUser(ctx, user)
}

// Login verifies credentials and mints a token pair, recording the refresh
// token on the account. An unknown email and a wrong password produce the
// same error so the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	user, err := s.userRepo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, app_errors.ErrInvalidCredentials
	}

	return s.issuePair(ctx, user.ID)
}

// Logout revokes the presented refresh token. A token no account lists is
// already revoked, so that case is a no-op success.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return app_errors.ErrRefreshTokenRequired
	}
	found, err := s.userRepo.RemoveRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !found {
		s.log.Debug("logout for refresh token no account lists")
	}
	return nil
}

// Refresh exchanges a valid refresh token for a fresh pair, rotating the
// presented token out. Presenting a token with a valid signature that has
// already been rotated out is treated as theft: every session of the account
// is revoked before the error is returned.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	if refreshToken == "" {
		return nil, app_errors.ErrRefreshTokenRequired
	}

	userIDHex, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, app_errors.ErrInvalidRefreshToken
	}
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, app_errors.ErrInvalidRefreshToken
	}

	newRefresh, err := s.tokens.IssueRefresh(userIDHex)
	if err != nil {
		return nil, err
	}

	swapped, err := s.userRepo.SwapRefreshToken(ctx, userID, refreshToken, newRefresh)
	if err != nil {
		return nil, err
	}
	if !swapped {
		if _, err := s.userRepo.UserByID(ctx, userID); err != nil {
			if errors.Is(err, app_errors.ErrUserNotFound) {
				return nil, app_errors.ErrInvalidRefreshToken
			}
			return nil, err
		}
		// Valid signature, account exists, token no longer listed: the token
		// was rotated out and is now being replayed.
		s.log.Warn("refresh token replay detected, revoking all sessions", "user_id", userIDHex)
		if err := s.userRepo.ClearRefreshTokens(ctx, userID); err != nil {
			return nil, err
		}
		return nil, app_errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.IssueAccess(userIDHex)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		UserID:       userIDHex,
	}, nil
}

// VerifyAccess is what the request gate calls; it never touches the store.
func (s *AuthService) VerifyAccess(ctx context.Context, token string) (string, error) {
	return s.tokens.VerifyAccess(token)
}

func (s *AuthService) issuePair(ctx context.Context, userID primitive.ObjectID) (*models.TokenPair, error) {
	idHex := userID.Hex()

	accessToken, err := s.tokens.IssueAccess(idHex)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(idHex)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       idHex,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/auth"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PassHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// LoginWithGoogle implements auth.AuthService. Accounts are provisioned
// by administrators, a Google identity without a matching user is refused.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.TokenResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(userData)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check revocation
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 4. Get user, permission and company may have changed since issue
	userData, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}
	if !userData.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	// 5. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.jwtService.GenerateAccessToken(userData.Email, userData.Permission, userData.CompanyID)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if !a.jwtService.IsTokenRevoked(refreshToken) {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err =
		a.jwtService.GenerateAccessToken(userData.Email, userData.Permission, userData.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err =
		a.jwtService.GenerateRefreshToken(userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.Permission = int(userData.Permission)
	tokenResponse.CompanyID = userData.CompanyID
	return tokenResponse, nil
}

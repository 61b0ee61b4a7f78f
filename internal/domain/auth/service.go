package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

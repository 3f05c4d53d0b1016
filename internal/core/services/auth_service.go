package services

import (
	"context"
	"time"

	"pension-admin/internal/adapters/localstore"
	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/core/session"
	"pension-admin/internal/pkg/jwt"
)

// AuthService handles login, registration and session persistence
type AuthService struct {
	api     *rest.Client
	storage *localstore.Store
	session *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(api *rest.Client, storage *localstore.Store, sess *session.Store) *AuthService {
	return &AuthService{api: api, storage: storage, session: sess}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthResponse represents the backend's authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	Username     string `json:"username"`
	Email        string `json:"email"`
}

// Login authenticates against the backend and, on success, persists the
// credential and the derived identity before returning. The identity exists
// exactly when a non-empty token was stored.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.api.Post(ctx, "/auth/login", input, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		if err := s.establishSession(&resp, resp.Username, ""); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Register creates a new account and logs the user in.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.api.Post(ctx, "/auth/register", input, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		if err := s.establishSession(&resp, input.FirstName, input.LastName); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// establishSession writes the credential through to storage first, then
// replaces the identity. The backend auth response does not include the
// full profile, so the identity is assembled from the response plus any
// role claim carried by the token itself.
func (s *AuthService) establishSession(resp *AuthResponse, firstName, lastName string) error {
	if err := s.storage.Set(localstore.KeyAuthToken, resp.AccessToken); err != nil {
		return err
	}

	role := domain.RoleMember
	if claims, err := jwt.Inspect(resp.AccessToken); err == nil && claims.Role != "" {
		role = domain.Role(claims.Role)
	}

	return s.session.SetIdentity(&domain.User{
		Email:     resp.Email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})
}

// Logout tears the session down locally. There is no backend call: the
// token is stateless and simply stops being attached.
func (s *AuthService) Logout() error {
	return s.session.Logout()
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/auth"
	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/storage"
	"github.com/mmynk/clubhouse/pkg/clubapi"
	"github.com/mmynk/clubhouse/pkg/clubapi/clubapiconnect"
)

// AuthService implements the AuthService RPC interface: the identity
// collaborator that turns credentials into the Principal the engine consumes.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         auth.UserStorage
	engine        *club.Engine
	logger        *slog.Logger
}

var _ clubapiconnect.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users auth.UserStorage, engine *club.Engine, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		engine:        engine,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[clubapi.RegisterRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Nickname == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("email and nickname are required"))
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.Nickname, req.Msg.Password)
	if err != nil {
		return nil, fail("Register", err, "email", req.Msg.Email)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "site_role", user.SiteRole)
	return connect.NewResponse(&clubapi.AuthResponse{User: toUser(user), Token: token}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		return nil, fail("Login", err, "email", req.Msg.Email)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(&clubapi.AuthResponse{User: toUser(user), Token: token}), nil
}

// GetCurrentUser returns the currently authenticated user's information.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[clubapi.GetCurrentUserRequest]) (*connect.Response[clubapi.UserResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The account was removed after the token was issued.
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		return nil, fail("GetCurrentUser", err, "user_id", p.UserID)
	}
	return connect.NewResponse(&clubapi.UserResponse{User: toUser(user)}), nil
}

// SetNickname changes the caller's nickname.
func (s *AuthService) SetNickname(ctx context.Context, req *connect.Request[clubapi.SetNicknameRequest]) (*connect.Response[clubapi.UserResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.engine.SetNickname(ctx, p, req.Msg.Nickname)
	if err != nil {
		return nil, fail("SetNickname", err, "user_id", p.UserID)
	}
	return connect.NewResponse(&clubapi.UserResponse{User: toUser(user)}), nil
}

// RemoveUser deletes an account. Site administrators only.
func (s *AuthService) RemoveUser(ctx context.Context, req *connect.Request[clubapi.RemoveUserRequest]) (*connect.Response[clubapi.RemoveUserResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("RemoveUser request", "user_id", req.Msg.UserID, "requested_by", p.UserID)

	if err := s.engine.RemoveUser(ctx, p, req.Msg.UserID); err != nil {
		return nil, fail("RemoveUser", err, "user_id", req.Msg.UserID)
	}
	return connect.NewResponse(&clubapi.RemoveUserResponse{}), nil
}

package clubapiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/pkg/clubapi"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "clubhouse.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceRegisterProcedure       = "/clubhouse.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/clubhouse.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/clubhouse.v1.AuthService/GetCurrentUser"
	AuthServiceSetNicknameProcedure    = "/clubhouse.v1.AuthService/SetNickname"
	AuthServiceRemoveUserProcedure     = "/clubhouse.v1.AuthService/RemoveUser"
)

// AuthServiceClient is a client for the clubhouse.v1.AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[clubapi.RegisterRequest]) (*connect.Response[clubapi.AuthResponse], error)
	Login(context.Context, *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.AuthResponse], error)
	GetCurrentUser(context.Context, *connect.Request[clubapi.GetCurrentUserRequest]) (*connect.Response[clubapi.UserResponse], error)
	SetNickname(context.Context, *connect.Request[clubapi.SetNicknameRequest]) (*connect.Response[clubapi.UserResponse], error)
	RemoveUser(context.Context, *connect.Request[clubapi.RemoveUserRequest]) (*connect.Response[clubapi.RemoveUserResponse], error)
}

// NewAuthServiceClient constructs a client for the clubhouse.v1.AuthService.
// baseURL is the server's URL without a trailing procedure path.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:       connect.NewClient[clubapi.RegisterRequest, clubapi.AuthResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[clubapi.LoginRequest, clubapi.AuthResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[clubapi.GetCurrentUserRequest, clubapi.UserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
		setNickname:    connect.NewClient[clubapi.SetNicknameRequest, clubapi.UserResponse](httpClient, baseURL+AuthServiceSetNicknameProcedure, opts...),
		removeUser:     connect.NewClient[clubapi.RemoveUserRequest, clubapi.RemoveUserResponse](httpClient, baseURL+AuthServiceRemoveUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[clubapi.RegisterRequest, clubapi.AuthResponse]
	login          *connect.Client[clubapi.LoginRequest, clubapi.AuthResponse]
	getCurrentUser *connect.Client[clubapi.GetCurrentUserRequest, clubapi.UserResponse]
	setNickname    *connect.Client[clubapi.SetNicknameRequest, clubapi.UserResponse]
	removeUser     *connect.Client[clubapi.RemoveUserRequest, clubapi.RemoveUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[clubapi.RegisterRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[clubapi.GetCurrentUserRequest]) (*connect.Response[clubapi.UserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

func (c *authServiceClient) SetNickname(ctx context.Context, req *connect.Request[clubapi.SetNicknameRequest]) (*connect.Response[clubapi.UserResponse], error) {
	return c.setNickname.CallUnary(ctx, req)
}

func (c *authServiceClient) RemoveUser(ctx context.Context, req *connect.Request[clubapi.RemoveUserRequest]) (*connect.Response[clubapi.RemoveUserResponse], error) {
	return c.removeUser.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by servers of the clubhouse.v1.AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[clubapi.RegisterRequest]) (*connect.Response[clubapi.AuthResponse], error)
	Login(context.Context, *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.AuthResponse], error)
	GetCurrentUser(context.Context, *connect.Request[clubapi.GetCurrentUserRequest]) (*connect.Response[clubapi.UserResponse], error)
	SetNickname(context.Context, *connect.Request[clubapi.SetNicknameRequest]) (*connect.Response[clubapi.UserResponse], error)
	RemoveUser(context.Context, *connect.Request[clubapi.RemoveUserRequest]) (*connect.Response[clubapi.RemoveUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]*connect.Handler{
		AuthServiceRegisterProcedure:       connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
		AuthServiceSetNicknameProcedure:    connect.NewUnaryHandler(AuthServiceSetNicknameProcedure, svc.SetNickname, opts...),
		AuthServiceRemoveUserProcedure:     connect.NewUnaryHandler(AuthServiceRemoveUserProcedure, svc.RemoveUser, opts...),
	}
	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[clubapi.RegisterRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(AuthServiceRegisterProcedure))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.AuthResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(AuthServiceLoginProcedure))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[clubapi.GetCurrentUserRequest]) (*connect.Response[clubapi.UserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(AuthServiceGetCurrentUserProcedure))
}

func (UnimplementedAuthServiceHandler) SetNickname(context.Context, *connect.Request[clubapi.SetNicknameRequest]) (*connect.Response[clubapi.UserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(AuthServiceSetNicknameProcedure))
}

func (UnimplementedAuthServiceHandler) RemoveUser(context.Context, *connect.Request[clubapi.RemoveUserRequest]) (*connect.Response[clubapi.RemoveUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(AuthServiceRemoveUserProcedure))
}

package clubapi

type RegisterRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type SetNicknameRequest struct {
	Nickname string `json:"nickname"`
}

type UserResponse struct {
	User *User `json:"user"`
}

type RemoveUserRequest struct {
	UserID string `json:"userId"`
}

type RemoveUserResponse struct{}

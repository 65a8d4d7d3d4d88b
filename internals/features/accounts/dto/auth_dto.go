package dto

import "schooloffice_backend/internals/features/accounts/model"

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"notblank"` // username atau email
	Password string `json:"password"   validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type MeResponse struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	FullName  string  `json:"full_name"`
	UserEmail *string `json:"user_email,omitempty"`
	UserRole  string  `json:"user_role"`
	Picture   *string `json:"user_profile_picture,omitempty"`
}

func NewMeResponse(u model.UserModel) MeResponse {
	return MeResponse{
		UserID:    u.UserID.String(),
		UserName:  u.UserName,
		FullName:  u.FullName(),
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
		Picture:   u.UserProfilePicture,
	}
}

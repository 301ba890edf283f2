package response

import (
	"time"

	"marketplace/internal/data/entity"
)

// UserResponse is a user without the password hash.
type UserResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Img       *string   `json:"img,omitempty"`
	Country   string    `json:"country,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Desc      *string   `json:"desc,omitempty"`
	IsSeller  bool      `json:"isSeller"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Info  UserResponse `json:"info"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Img:       user.Img,
		Country:   user.Country,
		Phone:     user.Phone,
		Desc:      user.Desc,
		IsSeller:  user.IsSeller,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required"`
	Email    string  `json:"email,omitempty" validate:"omitempty,email"`
	Img      *string `json:"img,omitempty"`
	Country  string  `json:"country,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Desc     *string `json:"desc,omitempty" validate:"omitempty,max=1000"`
	IsSeller bool    `json:"isSeller"`
}

// LoginRequest is checked by the auth service itself, an empty field is
// answered with "Username and password are required."
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

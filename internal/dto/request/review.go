package request

type CreateReviewRequest struct {
	AddID string `json:"addId" validate:"required"`
	Star  int    `json:"star" validate:"required,min=1,max=5"`
	Desc  string `json:"desc" validate:"required,max=1000"`
}

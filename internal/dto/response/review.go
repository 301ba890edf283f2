package response

import (
	"time"

	"marketplace/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"_id"`
	AddID     string    `json:"addId"`
	UserID    string    `json:"userId"`
	Star      int       `json:"star"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"createdAt"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		AddID:     review.AddID,
		UserID:    review.UserID,
		Star:      review.Star,
		Desc:      review.Desc,
		CreatedAt: review.CreatedAt,
	}
}

package response

import (
	"time"

	"marketplace/internal/data/entity"
)

type OrderResponse struct {
	ID          string    `json:"_id"`
	AddID       string    `json:"addId"`
	Img         string    `json:"img,omitempty"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Total       float64   `json:"total"`
	SellerID    string    `json:"sellerId"`
	BuyerID     string    `json:"buyerId"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		AddID:       order.AddID,
		Img:         order.Img,
		Title:       order.Title,
		Price:       order.Price,
		Quantity:    order.Quantity,
		Total:       order.Price * float64(order.Quantity),
		SellerID:    order.SellerID,
		BuyerID:     order.BuyerID,
		IsCompleted: order.IsCompleted,
		CreatedAt:   order.CreatedAt,
	}
}

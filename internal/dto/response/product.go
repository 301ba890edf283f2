package response

import (
	"time"

	"marketplace/internal/data/entity"
)

type ProductResponse struct {
	ID                string    `json:"_id"`
	UserID            string    `json:"userId"`
	Title             string    `json:"title"`
	Desc              string    `json:"desc"`
	Cat               string    `json:"cat"`
	Price             float64   `json:"price"`
	Cover             string    `json:"cover"`
	Images            []string  `json:"images"`
	ShortTitle        string    `json:"shortTitle"`
	ShortDesc         string    `json:"shortDesc,omitempty"`
	AvailableQuantity int       `json:"availableQuantity"`
	TotalStars        int       `json:"totalStars"`
	StarNumber        int       `json:"starNumber"`
	AverageRating     float64   `json:"averageRating"`
	Sales             int       `json:"sales"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:                product.ID,
		UserID:            product.UserID,
		Title:             product.Title,
		Desc:              product.Desc,
		Cat:               product.Cat,
		Price:             product.Price,
		Cover:             product.Cover,
		Images:            images,
		ShortTitle:        product.ShortTitle,
		ShortDesc:         product.ShortDesc,
		AvailableQuantity: product.AvailableQuantity,
		TotalStars:        product.TotalStars,
		StarNumber:        product.StarNumber,
		AverageRating:     product.AverageRating(),
		Sales:             product.Sales,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}

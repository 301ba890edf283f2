package request

type CreateProductRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	Desc              string   `json:"desc" validate:"required"`
	Cat               string   `json:"cat" validate:"required"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Cover             string   `json:"cover" validate:"required"`
	Images            []string `json:"images,omitempty"`
	ShortTitle        string   `json:"shortTitle" validate:"required,max=100"`
	ShortDesc         string   `json:"shortDesc,omitempty" validate:"omitempty,max=500"`
	AvailableQuantity int      `json:"availableQuantity" validate:"min=0"`
}

// UpdateProductRequest changes only the fields that are present.
type UpdateProductRequest struct {
	Title             *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Desc              *string   `json:"desc,omitempty" validate:"omitempty,min=1"`
	Cat               *string   `json:"cat,omitempty" validate:"omitempty,min=1"`
	Price             *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Cover             *string   `json:"cover,omitempty" validate:"omitempty,min=1"`
	Images            *[]string `json:"images,omitempty"`
	ShortTitle        *string   `json:"shortTitle,omitempty" validate:"omitempty,min=1,max=100"`
	ShortDesc         *string   `json:"shortDesc,omitempty" validate:"omitempty,max=500"`
	AvailableQuantity *int      `json:"availableQuantity,omitempty" validate:"omitempty,min=0"`
}

// ProductQuery holds the optional filters of GET /products.
type ProductQuery struct {
	UserID string
	Cat    string
	Search string
	Min    *float64
	Max    *float64
	Sort   string `validate:"omitempty,oneof=createdAt sales"`
}

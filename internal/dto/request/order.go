package request

type CreateOrderRequest struct {
	AddID    string `json:"addId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

package entity

type Order struct {
	BaseSimple  `bson:",inline"`
	AddID       string  `bson:"addId"`
	Img         string  `bson:"img,omitempty"`
	Title       string  `bson:"title"`
	Price       float64 `bson:"price"`
	Quantity    int     `bson:"quantity"`
	SellerID    string  `bson:"sellerId"`
	BuyerID     string  `bson:"buyerId"`
	IsCompleted bool    `bson:"isCompleted"`
}

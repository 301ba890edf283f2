package entity

// Product is a listing, called an "add" by clients. TotalStars and StarNumber
// only ever change together.
type Product struct {
	Base              `bson:",inline"`
	UserID            string   `bson:"userId"`
	Title             string   `bson:"title"`
	Desc              string   `bson:"desc"`
	Cat               string   `bson:"cat"`
	Price             float64  `bson:"price"`
	Cover             string   `bson:"cover"`
	Images            []string `bson:"images,omitempty"`
	ShortTitle        string   `bson:"shortTitle"`
	ShortDesc         string   `bson:"shortDesc,omitempty"`
	AvailableQuantity int      `bson:"availableQuantity"`
	TotalStars        int      `bson:"totalStars"`
	StarNumber        int      `bson:"starNumber"`
	Sales             int      `bson:"sales"`
}

// AverageRating is TotalStars / StarNumber, or 0 before the first rating.
func (p *Product) AverageRating() float64 {
	if p.StarNumber == 0 {
		return 0
	}
	return float64(p.TotalStars) / float64(p.StarNumber)
}

package entity

type Review struct {
	BaseSimple `bson:",inline"`
	AddID      string `bson:"addId"`
	UserID     string `bson:"userId"`
	Star       int    `bson:"star"` // 1-5
	Desc       string `bson:"desc"`
}

package entity

type User struct {
	Base         `bson:",inline"`
	Username     string  `bson:"username"`
	Email        string  `bson:"email,omitempty"`
	PasswordHash string  `bson:"password"`
	Img          *string `bson:"img,omitempty"`
	Country      string  `bson:"country,omitempty"`
	Phone        *string `bson:"phone,omitempty"`
	Desc         *string `bson:"desc,omitempty"`
	IsSeller     bool    `bson:"isSeller"`
}

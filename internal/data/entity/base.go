package entity

import (
	"time"
)

type Base struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type BaseSimple struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`
}

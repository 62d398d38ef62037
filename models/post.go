package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatorID primitive.ObjectID `bson:"creatorId" json:"creatorId"`
	Content   string             `bson:"content" json:"content"`
	PicPath   string             `bson:"picPath,omitempty" json:"picPath,omitempty"`
	PicName   string             `bson:"picName,omitempty" json:"picName,omitempty"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post belongs to the user whose id hex is stored in Sender.
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content,omitempty" json:"content,omitempty"`
	Sender  string             `bson:"sender" json:"sender"`
}

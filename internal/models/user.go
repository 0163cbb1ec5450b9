package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the persisted account document. Password holds the bcrypt hash,
// never the plaintext, and is excluded from every JSON response.
// RefreshTokens is the set of currently-valid refresh tokens; a token is
// honored at refresh only while it is still listed here.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username      string             `bson:"username" json:"username"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	RefreshTokens []string           `bson:"refreshTokens" json:"-"`
}

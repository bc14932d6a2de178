package model

import (
	"time"
)

// Message is a board post. ParentID, when set, points at the message this
// one replies to; the reference is not validated and replies are not
// cascade-deleted with their parent.
type Message struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Message   string    `bson:"message" json:"message"`
	ParentID  string    `bson:"parentId,omitempty" json:"parentId,omitempty"`
	Author    string    `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

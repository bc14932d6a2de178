package model

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext. The stored document is returned verbatim on registration,
// hash and access token included.
type User struct {
	ID          string `bson:"_id,omitempty" json:"_id"`
	UserName    string `bson:"userName" json:"userName"`
	Email       string `bson:"email" json:"email"`
	Password    string `bson:"password" json:"password"`
	AccessToken string `bson:"accessToken" json:"accessToken"`
}

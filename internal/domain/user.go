package domain

// User is a registered tracker user. The ID is shared with the user's Log.
type User struct {
	ID       string `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"`
}

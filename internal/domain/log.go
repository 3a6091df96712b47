// internal/domain/log.go
package domain

// Exercise is a single recorded exercise. Entries are immutable once appended.
type Exercise struct {
	Description string `bson:"description" json:"description"`
	Duration    int    `bson:"duration" json:"duration"`
	Date        string `bson:"date" json:"date"` // Canonical rendering, see FormatDate
}

// Log is the append-only exercise history of one user.
// Count is denormalized and always equals len(Entries) in the store;
// filtered views keep the stored Count.
type Log struct {
	ID       string     `bson:"_id" json:"id"` // Same as the owning User.ID
	Username string     `bson:"username" json:"username"`
	Count    int        `bson:"count" json:"count"`
	Entries  []Exercise `bson:"log" json:"entries"`
}

// NewLog returns the empty log created alongside a user at registration.
func NewLog(user *User) *Log {
	return &Log{
		ID:       user.ID,
		Username: user.Username,
		Count:    0,
		Entries:  []Exercise{},
	}
}

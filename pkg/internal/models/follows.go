package models

// Follow is a directed subscription edge between two accounts. The composite
// unique index is what keeps a double-follow from ever becoming two rows.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"uniqueIndex:idx_follows_follower_author"`
	Follower   Account `json:"follower"`
	AuthorID   uint    `json:"author_id" gorm:"uniqueIndex:idx_follows_follower_author"`
	Author     Account `json:"author"`
}

package models

type Post struct {
	BaseModel

	Text  string `json:"text"`
	Image string `json:"image"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	// Optional group; cleared, not cascaded, when the group goes away.
	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
}

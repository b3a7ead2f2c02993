package models

type Group struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Posts []Post `json:"posts"`
}

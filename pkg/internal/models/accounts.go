package models

// Account is the local mirror of an identity issued by the authentication
// collaborator. Name is the canonical username from the token subject.
type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	Posts []Post `json:"posts" gorm:"foreignKey:AuthorID"`
}

package services

import (
	"strings"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        strings.ToLower(slug),
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	group.Slug = strings.ToLower(slug)
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup detaches the group's posts before removing the group itself,
// posts outlive the group they were filed under.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}

package services

import (
	"fmt"
	"strings"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func FilterCommentWithPost(tx *gorm.DB, postID uint) *gorm.DB {
	return tx.Where("post_id = ?", postID)
}

func CountComment(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Comment{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListComment(tx *gorm.DB, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Comment
	if err := tx.
		Preload("Author").
		Limit(take).Offset(offset).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	var item models.Comment
	if len(strings.TrimSpace(text)) == 0 {
		return item, fmt.Errorf("comment text cannot be empty")
	}

	item = models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	// Tell the original poster their post got a new comment
	if post.AuthorID != user.ID {
		if author, err := GetAccountWithID(post.AuthorID); err == nil {
			err = NewNotification(
				author,
				models.NotificationTopicComment,
				"Post got commented",
				fmt.Sprintf("%s commented your post (#%d): %s", user.Name, post.ID, TruncatePostContentShort(text)),
			)
			if err != nil {
				log.Error().Err(err).Msg("An error occurred when notifying user...")
			}
		}
	}

	return item, nil
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterPostWithIDs(idx []uint) *gorm.DB {
	return database.C.Where("id IN ?", idx)
}

// FilterPostWithFollowed keeps the posts whose author appears in the set of
// authors followed by the viewer.
func FilterPostWithFollowed(tx *gorm.DB, viewerID uint) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).Select("author_id").Where("follower_id = ?", viewerID),
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	if len(items) == 0 {
		return items, nil
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})

	// Load comment counts
	var counts []struct {
		PostID uint
		Count  int64
	}

	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return items, err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric = models.PostMetric{
				CommentCount: info.Count,
			}
		}
	}

	// Lists carry a preview; the detail view serves the full text
	for _, item := range items {
		TruncatePostContent(item)
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	if len(strings.TrimSpace(item.Text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	log.Debug().Str("author", user.Name).Msg("Posting a post...")
	start := time.Now()

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	// Notify the subscribers their followed author got a new post
	if err := NotifyFollowerAccounts(user, item); err != nil {
		log.Error().Err(err).Msg("An error occurred when notifying followers...")
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("The post is posted.")
	return item, nil
}

// EditPost only touches the editable columns, so the publication timestamp
// survives any number of edits.
func EditPost(item models.Post) (models.Post, error) {
	if len(strings.TrimSpace(item.Text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	if err := database.C.Model(&models.Post{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"text":     item.Text,
			"group_id": item.GroupID,
			"image":    item.Image,
		}).Error; err != nil {
		return item, err
	}

	return GetPost(database.C, item.ID)
}

func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "post_id = ?", item.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

const TruncatePostContentThreshold = 160

func TruncatePostContent(post *models.Post) *models.Post {
	val := []rune(post.Text)
	if len(val) >= TruncatePostContentThreshold {
		post.Text = string(val[:TruncatePostContentThreshold]) + "..."
	}

	return post
}

const TruncatePostContentShortThreshold = 80

func TruncatePostContentShort(content string) string {
	if len([]rune(content)) >= TruncatePostContentShortThreshold {
		return string([]rune(content)[:TruncatePostContentShortThreshold]) + "..."
	}
	return content
}

package services

import (
	"errors"
	"fmt"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func GetFollow(user models.Account, target models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", user.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

// FollowAccount is idempotent: asking twice leaves exactly one row behind.
// The storage-level unique pair index backs this up should two requests ever
// race past the lookup.
func FollowAccount(user models.Account, target models.Account) (models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", user.ID, target.ID).First(&follow).Error; err == nil {
		return follow, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return follow, fmt.Errorf("unable to check follow is exists or not: %v", err)
	}

	follow = models.Follow{
		FollowerID: user.ID,
		AuthorID:   target.ID,
	}

	if err := database.C.Save(&follow).Error; err != nil {
		return follow, err
	}

	if err := NewNotification(
		target,
		models.NotificationTopicFollow,
		"New follower",
		fmt.Sprintf("%s is now following you.", user.Name),
	); err != nil {
		log.Error().Err(err).Msg("An error occurred when notifying user...")
	}

	return follow, nil
}

func UnfollowAccount(user models.Account, target models.Account) error {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", user.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("follow does not exist")
		}
		return fmt.Errorf("unable to check follow is exists or not: %v", err)
	}

	return database.C.Delete(&follow).Error
}

func CountFollower(target models.Account) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", target.ID).
		Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

// NotifyFollowerAccounts fans one notification row out to everyone following
// the author of a fresh post.
func NotifyFollowerAccounts(poster models.Account, item models.Post) error {
	var follows []models.Follow
	if err := database.C.Where("author_id = ?", poster.ID).Preload("Follower").Find(&follows).Error; err != nil {
		return fmt.Errorf("unable to get follows: %v", err)
	}

	body := TruncatePostContentShort(item.Text)

	for _, follow := range follows {
		if err := NewNotification(
			follow.Follower,
			models.NotificationTopicNewPost,
			fmt.Sprintf("New post from %s", poster.Name),
			body,
		); err != nil {
			return err
		}
	}

	return nil
}

package services

import (
	"fmt"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// FirstOrCreateAccount mirrors an identity from the authentication
// collaborator into the local table. Claims are the source of truth; the
// local row only exists so posts and follows have something to reference.
func FirstOrCreateAccount(name, nick, avatar string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).
		Attrs(models.Account{Nick: nick, Avatar: avatar}).
		FirstOrCreate(&account).Error; err != nil {
		return account, fmt.Errorf("unable to mirror account: %v", err)
	}
	return account, nil
}

// DeleteAccountResources wipes an account and everything hanging off it:
// posts (with their comments), the account's own comments, follows on both
// sides and pending notifications.
func DeleteAccountResources(account models.Account) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		var posts []models.Post
		if err := tx.Select("id").Where("author_id = ?", account.ID).Find(&posts).Error; err != nil {
			return err
		}
		postIdx := lo.Map(posts, func(item models.Post, index int) uint {
			return item.ID
		})

		if len(postIdx) > 0 {
			if err := tx.Delete(&models.Comment{}, "post_id IN ?", postIdx).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Comment{}, "author_id = ?", account.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Post{}, "author_id = ?", account.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Follow{}, "follower_id = ? OR author_id = ?", account.ID, account.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Notification{}, "account_id = ?", account.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
}

func NewNotification(account models.Account, topic, title, body string) error {
	notification := models.Notification{
		Topic:     topic,
		Title:     title,
		Body:      body,
		AccountID: account.ID,
	}

	if err := database.C.Save(&notification).Error; err != nil {
		log.Warn().Err(err).Uint("account", account.ID).Msg("An error occurred when notifying account...")
		return err
	}

	log.Debug().Uint("account", account.ID).Str("topic", topic).Msg("Notified account.")
	return nil
}

func ListNotification(account models.Account, take int, offset int) ([]models.Notification, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Notification
	if err := database.C.
		Where("account_id = ?", account.ID).
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountUnreadNotification(account models.Account) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Notification{}).
		Where("account_id = ? AND read_at IS NULL", account.ID).
		Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func MarkNotificationAllRead(account models.Account) (int64, error) {
	tx := database.C.Model(&models.Notification{}).
		Where("account_id = ? AND read_at IS NULL", account.ID).
		Update("read_at", gorm.Expr("CURRENT_TIMESTAMP"))

	return tx.RowsAffected, tx.Error
}

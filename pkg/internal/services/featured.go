package services

import (
	"time"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
)

// GetFeaturedPosts How to determine featured posts?
// Get the most commented posts in the last 7 days
// Notice, this function is a raw query, it is not recommended to return the result directly
// Instead, you should get the id and query it again via the ListPost function
func GetFeaturedPosts(count int) ([]models.Post, error) {
	deadline := time.Now().Add(-7 * 24 * time.Hour)

	var posts []models.Post
	if err := database.C.Raw(`
		SELECT p.*, t.comment_points
        FROM posts p
        JOIN (
            SELECT
                post_id,
                COUNT(id) AS comment_points
            FROM comments
            WHERE created_at >= ? AND deleted_at IS NULL
            GROUP BY post_id
            ORDER BY comment_points DESC
            LIMIT ?
        ) t ON p.id = t.post_id
		WHERE p.deleted_at IS NULL
        ORDER BY t.comment_points DESC, p.created_at DESC
	`, deadline, count).Scan(&posts).Error; err != nil {
		return posts, err
	}

	return posts, nil
}

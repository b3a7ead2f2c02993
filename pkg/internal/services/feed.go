package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/lirennote/chronicle/pkg/internal/cache"
	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const DefaultPostsPerPage = 10

func PostsPerPage() int {
	if v := viper.GetInt("feed.posts_per_page"); v > 0 {
		return v
	}
	return DefaultPostsPerPage
}

type FeedPage struct {
	Count int64          `json:"count"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Data  []*models.Post `json:"data"`
}

// PaginatePost slices tx into fixed-size pages, newest post first. Out of
// range page numbers clamp to the nearest valid page instead of erroring:
// anything at or below zero lands on the first page, anything past the end
// lands on the last.
func PaginatePost(tx *gorm.DB, page int) (FeedPage, error) {
	size := PostsPerPage()

	count, err := CountPost(tx)
	if err != nil {
		return FeedPage{}, err
	}

	pages := int((count + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	items, err := ListPost(tx, size, (page-1)*size, "created_at DESC, id DESC")
	if err != nil {
		return FeedPage{}, err
	}

	return FeedPage{
		Count: count,
		Page:  page,
		Pages: pages,
		Data:  items,
	}, nil
}

func GlobalFeed(page int) (FeedPage, error) {
	return PaginatePost(database.C, page)
}

func GroupFeed(slug string, page int) (models.Group, FeedPage, error) {
	group, err := GetGroup(slug)
	if err != nil {
		return group, FeedPage{}, err
	}

	feed, err := PaginatePost(FilterPostWithGroup(database.C, group.ID), page)
	return group, feed, err
}

// ProfileFeed also reports whether the viewer currently follows the author;
// the flag stays false for anonymous viewers.
func ProfileFeed(username string, page int, viewer *models.Account) (models.Account, FeedPage, bool, error) {
	author, err := GetAccountWithName(username)
	if err != nil {
		return author, FeedPage{}, false, err
	}

	var following bool
	if viewer != nil {
		follow, err := GetFollow(*viewer, author)
		if err != nil {
			return author, FeedPage{}, false, err
		}
		following = follow != nil
	}

	feed, err := PaginatePost(FilterPostWithAuthor(database.C, author.ID), page)
	return author, feed, following, err
}

func FollowingFeed(viewer models.Account, page int) (FeedPage, error) {
	return PaginatePost(FilterPostWithFollowed(database.C, viewer.ID), page)
}

const IndexCacheKeyPrefix = "index_page"

func IndexCacheLifespan() time.Duration {
	if v := viper.GetInt("cache.index_lifespan"); v > 0 {
		return time.Duration(v) * time.Second
	}
	return 20 * time.Second
}

// GetIndexFeedSnapshot serves the global feed as rendered bytes. Within the
// cache lifespan the previous snapshot is returned as-is even if the posts
// underneath changed; only expiry or ClearIndexCache produces fresh content.
func GetIndexFeedSnapshot(page int) ([]byte, error) {
	cacheManager := cache.New[[]byte](localCache.S)
	ctx := context.Background()

	key := fmt.Sprintf("%s#%d", IndexCacheKeyPrefix, page)
	if snapshot, err := cacheManager.Get(ctx, key); err == nil {
		return snapshot, nil
	}

	feed, err := GlobalFeed(page)
	if err != nil {
		return nil, err
	}

	raw, err := jsoniter.Marshal(feed)
	if err != nil {
		return nil, err
	}

	_ = cacheManager.Set(
		ctx,
		key,
		raw,
		store.WithExpiration(IndexCacheLifespan()),
		store.WithTags([]string{IndexCacheKeyPrefix}),
	)

	return raw, nil
}

func ClearIndexCache() {
	cacheManager := cache.New[[]byte](localCache.S)
	ctx := context.Background()

	_ = cacheManager.Invalidate(ctx, store.WithInvalidateTags([]string{IndexCacheKeyPrefix}))
}

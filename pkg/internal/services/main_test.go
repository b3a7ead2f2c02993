package services

import (
	"fmt"
	"testing"

	localCache "github.com/lirennote/chronicle/pkg/internal/cache"
	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unable to get underlying connection: %v", err)
	}
	// A fresh connection would be a fresh in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigration(db); err != nil {
		t.Fatalf("unable to run migration: %v", err)
	}

	database.C = db
}

func setupTestCache(t *testing.T) {
	t.Helper()

	if err := localCache.NewStore(); err != nil {
		t.Fatalf("unable to set up cache: %v", err)
	}
}

func newTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := FirstOrCreateAccount(name, name, "")
	if err != nil {
		t.Fatalf("unable to create account %s: %v", name, err)
	}
	return account
}

func newTestGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(slug, "Group "+slug, "")
	if err != nil {
		t.Fatalf("unable to create group %s: %v", slug, err)
	}
	return group
}

func newTestPost(t *testing.T, author models.Account, text string, group *models.Group) models.Post {
	t.Helper()

	item := models.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	if group != nil {
		item.GroupID = &group.ID
	}

	item, err := NewPost(author, item)
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	return item
}

func newTestPosts(t *testing.T, author models.Account, count int, group *models.Group) {
	t.Helper()

	for i := 0; i < count; i++ {
		newTestPost(t, author, fmt.Sprintf("post number %d", i), group)
	}
}

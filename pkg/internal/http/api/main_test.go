package api_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lirennote/chronicle/pkg/internal/auth"
	localCache "github.com/lirennote/chronicle/pkg/internal/cache"
	"github.com/lirennote/chronicle/pkg/internal/database"
	localHttp "github.com/lirennote/chronicle/pkg/internal/http"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) *fiber.App {
	t.Helper()

	viper.Set("security.jwt_secret", "unit-test-secret")
	viper.Set("security.admin_token", "unit-test-admin")

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

	if err := localCache.NewStore(); err != nil {
		t.Fatalf("unable to set up cache: %v", err)
	}

	return localHttp.NewServer()
}

func signInAs(t *testing.T, name string) string {
	t.Helper()

	token, err := auth.NewToken(auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Nick: name,
	})
	if err != nil {
		t.Fatalf("unable to sign token for %s: %v", name, err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, form url.Values) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, target, body)
	if err != nil {
		t.Fatalf("unable to build request: %v", err)
	}
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unable to read response body: %v", err)
	}
	return raw
}

func seedAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := services.FirstOrCreateAccount(name, name, "")
	if err != nil {
		t.Fatalf("unable to seed account %s: %v", name, err)
	}
	return account
}

func seedPost(t *testing.T, author models.Account, text string) models.Post {
	t.Helper()

	item, err := services.NewPost(author, models.Post{
		Text:     text,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("unable to seed post: %v", err)
	}
	return item
}

package api_test

import (
	"net/http"
	"testing"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func followCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := database.C.Model(&models.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("unable to count follows: %v", err)
	}
	return count
}

func TestFollowAccountEndpoint(t *testing.T) {
	app := setupTestServer(t)
	seedAccount(t, "bob")
	token := signInAs(t, "alice")

	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, http.MethodPost, "/profile/bob/follow", token, nil)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, readBody(t, resp))
		}
	}
	if count := followCount(t); count != 1 {
		t.Errorf("follow count = %d after following twice, want 1", count)
	}

	resp := doRequest(t, app, http.MethodPost, "/profile/nobody/follow", token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown target status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

func TestFollowSelf(t *testing.T) {
	app := setupTestServer(t)
	token := signInAs(t, "alice")

	resp := doRequest(t, app, http.MethodPost, "/profile/alice/follow", token, nil)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if location := resp.Header.Get(fiber.HeaderLocation); location != "/profile/alice" {
		t.Errorf("redirected to %q, want the profile", location)
	}
	if count := followCount(t); count != 0 {
		t.Errorf("self follow created %d rows", count)
	}
}

func TestUnfollowAccountEndpoint(t *testing.T) {
	app := setupTestServer(t)
	seedAccount(t, "bob")
	token := signInAs(t, "alice")

	// Nothing to undo yet
	resp := doRequest(t, app, http.MethodPost, "/profile/bob/unfollow", token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unfollow without a follow status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}

	if resp := doRequest(t, app, http.MethodPost, "/profile/bob/follow", token, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("follow status = %d", resp.StatusCode)
	}
	if resp := doRequest(t, app, http.MethodPost, "/profile/bob/unfollow", token, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unfollow status = %d", resp.StatusCode)
	}
	if count := followCount(t); count != 0 {
		t.Errorf("follow count = %d after unfollow, want 0", count)
	}
}

func TestFollowingFeedRequiresLogin(t *testing.T) {
	app := setupTestServer(t)

	resp := doRequest(t, app, http.MethodGet, "/follow", "", nil)
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
}

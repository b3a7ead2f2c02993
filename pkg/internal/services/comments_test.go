package services

import (
	"testing"

	"github.com/lirennote/chronicle/pkg/internal/database"
)

func TestNewCommentEmptyText(t *testing.T) {
	setupTestDatabase(t)
	alice := newTestAccount(t, "alice")
	post := newTestPost(t, alice, "hello", nil)

	for _, text := range []string{"", "   "} {
		if _, err := NewComment(alice, post, text); err == nil {
			t.Errorf("NewComment(%q) expected an error", text)
		}
	}

	count, err := CountComment(FilterCommentWithPost(database.C, post.ID))
	if err != nil {
		t.Fatalf("CountComment: %v", err)
	}
	if count != 0 {
		t.Errorf("comment count = %d, want 0", count)
	}
}

func TestNewCommentNotifiesPostAuthor(t *testing.T) {
	setupTestDatabase(t)
	alice := newTestAccount(t, "alice")
	bob := newTestAccount(t, "bob")
	post := newTestPost(t, alice, "hello", nil)

	// Commenting on your own post stays quiet
	if _, err := NewComment(alice, post, "first"); err != nil {
		t.Fatalf("NewComment: %v", err)
	}
	unread, err := CountUnreadNotification(alice)
	if err != nil {
		t.Fatalf("CountUnreadNotification: %v", err)
	}
	if unread != 0 {
		t.Errorf("self comment produced %d notifications", unread)
	}

	if _, err := NewComment(bob, post, "second"); err != nil {
		t.Fatalf("NewComment: %v", err)
	}
	unread, err = CountUnreadNotification(alice)
	if err != nil {
		t.Fatalf("CountUnreadNotification: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread = %d, want 1", unread)
	}

	items, err := ListComment(FilterCommentWithPost(database.C, post.ID), 10, 0)
	if err != nil {
		t.Fatalf("ListComment: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("listed %d comments, want 2", len(items))
	}
	// Newest first
	if items[0].Text != "second" {
		t.Errorf("first listed comment = %q, want the newest", items[0].Text)
	}
}

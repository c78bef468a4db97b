package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestHandleHome(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get(t, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %s", ct)
	}
	if !strings.Contains(body, "Recent posts") {
		t.Fatal("expected home page to contain the recent posts section")
	}
}

func TestHandleHome_ListsUsers(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if _, err := app.users.Create(ctx, "Jane", "Doe", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, body := app.get(t, "/")
	if !strings.Contains(body, "Jane Doe") {
		t.Fatal("expected home page to list Jane Doe by full name")
	}
}

func TestHandleHome_UnknownPathIs404(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.get(t, "/nonexistent")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandleMorePosts_AppendsNextBatch(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	user, err := app.users.Create(ctx, "Jane", "Doe", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	for i := 0; i < 7; i++ {
		if _, err := app.posts.Create(ctx, user.ID, "extra post", "content"); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	resp, body := app.get(t, "/posts/more?offset=5")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("expected text/event-stream content type, got %s", ct)
	}
	if !strings.Contains(body, "datastar-patch-elements") {
		t.Fatal("expected SSE body to carry element patches")
	}
	if !strings.Contains(body, "post-card") {
		t.Fatal("expected SSE body to contain post cards")
	}
	// 7 posts total and offset 5 exhausts the list: no further button.
	if strings.Contains(body, "/posts/more?offset=10") {
		t.Fatal("expected load-more button to disappear on the last page")
	}
}

func TestHandleHome_LoadMoreOnlyWhenMoreThanPageSize(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	user, err := app.users.Create(ctx, "Jane", "Doe", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := app.posts.Create(ctx, user.ID, "p", "c"); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	_, body := app.get(t, "/")
	if strings.Contains(body, "/posts/more?offset=") {
		t.Fatal("expected no load-more button with 3 posts")
	}
}

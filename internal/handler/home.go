package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/blogly/internal/service"
	"github.com/msomdec/blogly/internal/view"
)

// recentPageSize is how many recent posts the home page shows per batch.
const recentPageSize = 5

// HomeHandler renders the home page and serves its load-more fragment.
type HomeHandler struct {
	users    *service.UserService
	posts    *service.PostService
	renderer *view.Renderer
	session  *scs.SessionManager
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(users *service.UserService, posts *service.PostService, renderer *view.Renderer, session *scs.SessionManager) *HomeHandler {
	return &HomeHandler{users: users, posts: posts, renderer: renderer, session: session}
}

// HandleHome renders the home page with all users and the most recent posts.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		serverError(w, "list users for home", err)
		return
	}

	posts, err := h.posts.Recent(r.Context(), recentPageSize, 0)
	if err != nil {
		serverError(w, "recent posts for home", err)
		return
	}

	total, err := h.posts.CountAll(r.Context())
	if err != nil {
		serverError(w, "count posts for home", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "home", view.HomeData{
		Page:       view.Page{Title: "Home", Flash: h.session.PopString(r.Context(), flashKey)},
		Users:      users,
		Posts:      posts,
		HasMore:    total > recentPageSize,
		NextOffset: recentPageSize,
	})
}

// HandleMorePosts streams the next batch of recent-post cards over SSE,
// appending them to the home page list and replacing the load-more button.
func (h *HomeHandler) HandleMorePosts(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	posts, err := h.posts.Recent(r.Context(), recentPageSize, offset)
	if err != nil {
		serverError(w, "load more recent posts", err)
		return
	}

	total, err := h.posts.CountAll(r.Context())
	if err != nil {
		serverError(w, "count posts for load more", err)
		return
	}

	nextOffset := offset + recentPageSize
	data := view.MorePostsData{
		Posts:      posts,
		HasMore:    total > nextOffset,
		NextOffset: nextOffset,
	}

	cards, err := h.renderer.Fragment("post_cards", data)
	if err != nil {
		serverError(w, "render post cards fragment", err)
		return
	}
	loadMore, err := h.renderer.Fragment("load_more", data)
	if err != nil {
		serverError(w, "render load more fragment", err)
		return
	}

	sse := datastar.NewSSE(w, r)

	// Append the new cards to the list.
	if err := sse.PatchElements(cards,
		datastar.WithSelectorID("recent-posts-list"),
		datastar.WithModeAppend(),
	); err != nil {
		slog.Error("patch post cards", "error", err)
		return
	}

	// Replace the load-more button (removes it on the last page).
	if err := sse.PatchElements(loadMore); err != nil {
		slog.Error("patch load more button", "error", err)
	}
}

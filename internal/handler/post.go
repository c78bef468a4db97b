package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/msomdec/blogly/internal/domain"
	"github.com/msomdec/blogly/internal/service"
	"github.com/msomdec/blogly/internal/view"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	users    *service.UserService
	posts    *service.PostService
	renderer *view.Renderer
	session  *scs.SessionManager
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(users *service.UserService, posts *service.PostService, renderer *view.Renderer, session *scs.SessionManager) *PostHandler {
	return &PostHandler{users: users, posts: posts, renderer: renderer, session: session}
}

// HandleNewForm renders the post creation form for the user in the path.
func (h *PostHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		notFoundOr500(w, r, "get user for post form", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "post_new", view.PostFormData{
		Page: view.Page{Title: "New post"},
		User: user,
	})
}

// HandleCreate processes the post creation form and redirects to the owner.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	_, err = h.posts.Create(r.Context(), userID, title, content)
	if errors.Is(err, domain.ErrInvalidInput) {
		user, getErr := h.users.Get(r.Context(), userID)
		if getErr != nil {
			notFoundOr500(w, r, "get user for post rerender", getErr)
			return
		}
		writeHTML(w, h.renderer, http.StatusUnprocessableEntity, "post_new", view.PostFormData{
			Page:      view.Page{Title: "New post"},
			User:      user,
			FormError: "Title and content are required.",
			FormData:  map[string]string{"title": title, "content": content},
		})
		return
	}
	if err != nil {
		notFoundOr500(w, r, "create post", err)
		return
	}

	h.session.Put(r.Context(), flashKey, "Post published.")
	http.Redirect(w, r, fmt.Sprintf("/users/%d", userID), http.StatusSeeOther)
}

// HandleShow renders the post detail page with its author.
func (h *PostHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		notFoundOr500(w, r, "get post", err)
		return
	}

	author, err := h.users.Get(r.Context(), post.UserID)
	if err != nil {
		notFoundOr500(w, r, "get post author", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "post_detail", view.PostDetailData{
		Page:   view.Page{Title: post.Title, Flash: h.session.PopString(r.Context(), flashKey)},
		Post:   post,
		Author: author,
	})
}

// HandleEditForm renders the post edit form prefilled with current values.
func (h *PostHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		notFoundOr500(w, r, "get post for edit", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "post_edit", view.PostEditData{
		Page: view.Page{Title: "Edit " + post.Title},
		Post: post,
		FormData: map[string]string{
			"title":   post.Title,
			"content": post.Content,
		},
	})
}

// HandleUpdate processes the post edit form; only title and content change.
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	post, err := h.posts.Update(r.Context(), id, title, content)
	if errors.Is(err, domain.ErrInvalidInput) {
		existing, getErr := h.posts.Get(r.Context(), id)
		if getErr != nil {
			notFoundOr500(w, r, "get post for edit rerender", getErr)
			return
		}
		writeHTML(w, h.renderer, http.StatusUnprocessableEntity, "post_edit", view.PostEditData{
			Page:      view.Page{Title: "Edit " + existing.Title},
			Post:      existing,
			FormError: "Title and content are required.",
			FormData:  map[string]string{"title": title, "content": content},
		})
		return
	}
	if err != nil {
		notFoundOr500(w, r, "update post", err)
		return
	}

	h.session.Put(r.Context(), flashKey, "Post updated.")
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusSeeOther)
}

// HandleDelete deletes the post and redirects to its owner's page.
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ownerID, err := h.posts.Delete(r.Context(), id)
	if err != nil {
		notFoundOr500(w, r, "delete post", err)
		return
	}

	h.session.Put(r.Context(), flashKey, "Post deleted.")
	http.Redirect(w, r, fmt.Sprintf("/users/%d", ownerID), http.StatusSeeOther)
}

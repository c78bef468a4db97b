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

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users    *service.UserService
	posts    *service.PostService
	renderer *view.Renderer
	session  *scs.SessionManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, posts *service.PostService, renderer *view.Renderer, session *scs.SessionManager) *UserHandler {
	return &UserHandler{users: users, posts: posts, renderer: renderer, session: session}
}

// HandleNewForm renders the user creation form.
func (h *UserHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		serverError(w, "list users for form", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "user_new", view.UserFormData{
		Page:  view.Page{Title: "New user", Flash: h.session.PopString(r.Context(), flashKey)},
		Users: users,
	})
}

// HandleCreate processes the user creation form and redirects home.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	first := r.FormValue("first_name")
	last := r.FormValue("last_name")
	imageURL := r.FormValue("image_url")

	user, err := h.users.Create(r.Context(), first, last, imageURL)
	if errors.Is(err, domain.ErrInvalidInput) {
		h.rerenderNewForm(w, r, first, last, imageURL)
		return
	}
	if err != nil {
		serverError(w, "create user", err)
		return
	}

	h.session.Put(r.Context(), flashKey, fmt.Sprintf("User %s created.", user.FullName()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleShow renders the user detail page with their posts.
func (h *UserHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		notFoundOr500(w, r, "get user", err)
		return
	}

	posts, err := h.posts.ListByUser(r.Context(), id)
	if err != nil {
		serverError(w, "list user posts", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "user_detail", view.UserDetailData{
		Page:  view.Page{Title: user.FullName(), Flash: h.session.PopString(r.Context(), flashKey)},
		User:  user,
		Posts: posts,
	})
}

// HandleEditForm renders the user edit form prefilled with current values.
func (h *UserHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		notFoundOr500(w, r, "get user for edit", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusOK, "user_edit", view.UserEditData{
		Page: view.Page{Title: "Edit " + user.FullName()},
		User: user,
		FormData: map[string]string{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"image_url":  user.ImageURL,
		},
	})
}

// HandleUpdate processes the user edit form. All three fields are written
// as submitted; an empty image URL stays empty on update.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	first := r.FormValue("first_name")
	last := r.FormValue("last_name")
	imageURL := r.FormValue("image_url")

	user, err := h.users.Update(r.Context(), id, first, last, imageURL)
	if errors.Is(err, domain.ErrInvalidInput) {
		existing, getErr := h.users.Get(r.Context(), id)
		if getErr != nil {
			notFoundOr500(w, r, "get user for edit rerender", getErr)
			return
		}
		writeHTML(w, h.renderer, http.StatusUnprocessableEntity, "user_edit", view.UserEditData{
			Page:      view.Page{Title: "Edit " + existing.FullName()},
			User:      existing,
			FormError: "First and last name are required.",
			FormData: map[string]string{
				"first_name": first,
				"last_name":  last,
				"image_url":  imageURL,
			},
		})
		return
	}
	if err != nil {
		notFoundOr500(w, r, "update user", err)
		return
	}

	h.session.Put(r.Context(), flashKey, "User updated.")
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusSeeOther)
}

// HandleDelete deletes the user and every post they own, then redirects home.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		notFoundOr500(w, r, "delete user", err)
		return
	}

	h.session.Put(r.Context(), flashKey, "User deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UserHandler) rerenderNewForm(w http.ResponseWriter, r *http.Request, first, last, imageURL string) {
	users, err := h.users.List(r.Context())
	if err != nil {
		serverError(w, "list users for form rerender", err)
		return
	}

	writeHTML(w, h.renderer, http.StatusUnprocessableEntity, "user_new", view.UserFormData{
		Page:      view.Page{Title: "New user"},
		Users:     users,
		FormError: "First and last name are required.",
		FormData: map[string]string{
			"first_name": first,
			"last_name":  last,
			"image_url":  imageURL,
		},
	})
}

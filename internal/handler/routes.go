package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/msomdec/blogly/internal/service"
	"github.com/msomdec/blogly/internal/view"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, posts *service.PostService, renderer *view.Renderer, session *scs.SessionManager) {
	home := NewHomeHandler(users, posts, renderer, session)
	userHandler := NewUserHandler(users, posts, renderer, session)
	postHandler := NewPostHandler(users, posts, renderer, session)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /{$}", home.HandleHome)
	mux.HandleFunc("GET /posts/more", home.HandleMorePosts)

	mux.HandleFunc("GET /users/new", userHandler.HandleNewForm)
	mux.HandleFunc("POST /users/new", userHandler.HandleCreate)
	mux.HandleFunc("GET /users/{id}", userHandler.HandleShow)
	mux.HandleFunc("GET /users/{id}/edit", userHandler.HandleEditForm)
	mux.HandleFunc("POST /users/{id}/edit", userHandler.HandleUpdate)
	mux.HandleFunc("POST /users/{id}/delete", userHandler.HandleDelete)

	mux.HandleFunc("GET /users/{id}/posts/new", postHandler.HandleNewForm)
	mux.HandleFunc("POST /users/{id}/posts/new", postHandler.HandleCreate)
	mux.HandleFunc("GET /posts/{id}", postHandler.HandleShow)
	mux.HandleFunc("GET /posts/{id}/edit", postHandler.HandleEditForm)
	mux.HandleFunc("POST /posts/{id}/edit", postHandler.HandleUpdate)
	mux.HandleFunc("POST /posts/{id}/delete", postHandler.HandleDelete)
}

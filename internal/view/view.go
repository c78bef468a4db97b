package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/msomdec/blogly/internal/domain"
)

//go:embed templates/*.html
var files embed.FS

// Renderer executes the embedded page templates. Output is buffered before
// writing so a template failure never leaves a half-written response.
type Renderer struct {
	tpl *template.Template
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	tpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := r.tpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Fragment executes the named template and returns the HTML as a string,
// for SSE element patches.
func (r *Renderer) Fragment(name string, data any) (string, error) {
	buf := new(bytes.Buffer)
	if err := r.tpl.ExecuteTemplate(buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Page carries fields shared by every rendered page.
type Page struct {
	Title string
	Flash string
}

// HomeData is the context for the home page.
type HomeData struct {
	Page
	Users      []domain.User
	Posts      []domain.Post
	HasMore    bool
	NextOffset int
}

// UserFormData is the context for the user creation form.
type UserFormData struct {
	Page
	Users     []domain.User
	FormError string
	FormData  map[string]string
}

// UserDetailData is the context for the user detail page.
type UserDetailData struct {
	Page
	User  *domain.User
	Posts []domain.Post
}

// UserEditData is the context for the user edit form.
type UserEditData struct {
	Page
	User      *domain.User
	FormError string
	FormData  map[string]string
}

// PostFormData is the context for the post creation form.
type PostFormData struct {
	Page
	User      *domain.User
	FormError string
	FormData  map[string]string
}

// PostDetailData is the context for the post detail page.
type PostDetailData struct {
	Page
	Post   *domain.Post
	Author *domain.User
}

// PostEditData is the context for the post edit form.
type PostEditData struct {
	Page
	Post      *domain.Post
	FormError string
	FormData  map[string]string
}

// MorePostsData is the context for the load-more SSE fragments.
type MorePostsData struct {
	Posts      []domain.Post
	HasMore    bool
	NextOffset int
}

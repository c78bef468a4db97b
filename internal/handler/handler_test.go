package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/msomdec/blogly/internal/handler"
	"github.com/msomdec/blogly/internal/repository/sqlite"
	"github.com/msomdec/blogly/internal/service"
	"github.com/msomdec/blogly/internal/view"
)

type testApp struct {
	srv    *httptest.Server
	client *http.Client
	users  *service.UserService
	posts  *service.PostService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}

	users := service.NewUserService(db.Users())
	posts := service.NewPostService(db.Posts(), db.Users())

	session := scs.New()
	session.Cookie.Secure = false

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, users, posts, renderer, session)

	srv := httptest.NewServer(handler.SecurityHeaders(session.LoadAndSave(mux)))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse // don't follow redirects automatically
		},
	}

	return &testApp{srv: srv, client: client, users: users, posts: posts}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := a.client.Get(a.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body of %s: %v", path, err)
	}
	return resp, string(body)
}

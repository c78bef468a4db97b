package domain_test

import (
	"testing"
	"time"

	"github.com/msomdec/blogly/internal/domain"
)

func TestPostFriendlyDate(t *testing.T) {
	created := time.Date(2024, time.January, 5, 15, 4, 5, 0, time.UTC)
	p := &domain.Post{CreatedAt: created}

	want := created.Local().Format("Jan 02 2006 03:04:05 PM")
	if got := p.FriendlyDate(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPostLocalCreatedAt_SameInstant(t *testing.T) {
	created := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	p := &domain.Post{CreatedAt: created}

	if !p.LocalCreatedAt().Equal(created) {
		t.Fatal("local conversion must not change the instant")
	}
}

package handler

import (
	"testing"
	"time"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed", time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC), 36},
		{"birthday upcoming", time.Date(1990, 12, 1, 0, 0, 0, 0, time.UTC), 35},
		{"birthday today", time.Date(1990, 8, 28, 0, 0, 0, 0, time.UTC), 36},
		{"unset", time.Time{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := age(tc.dob, now); got != tc.want {
				t.Fatalf("age(%v) = %d, want %d", tc.dob, got, tc.want)
			}
		})
	}
}

func TestToUserDetail_NeverCarriesPasswordHash(t *testing.T) {
	u := &domain.User{
		ID:           "1",
		Username:     "alice",
		PasswordHash: "$2a$10$abcdefg",
		CreatedAt:    time.Now(),
		LastActive:   time.Now(),
	}

	view := toUserDetail(u)
	if view.ID != "1" || view.Username != "alice" {
		t.Fatalf("unexpected view: %+v", view)
	}
	// The view type has no hash field at all; this test documents that the
	// mapping is the only path from domain.User to a response body.
	summary := toUserSummary(u)
	if summary.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

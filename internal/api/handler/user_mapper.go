package handler

import (
	"time"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// userDetail is the public view returned after registration. The password
// hash never crosses this boundary.
type userDetail struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	KnownAs    string `json:"known_as,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Age        int    `json:"age,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	CreatedAt  string `json:"created_at"`
	LastActive string `json:"last_active"`
}

// userSummary is the compact view returned alongside a login token.
type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	KnownAs  string `json:"known_as,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

func toUserDetail(u *domain.User) *userDetail {
	return &userDetail{
		ID:         u.ID,
		Username:   u.Username,
		KnownAs:    u.KnownAs,
		Gender:     u.Gender,
		Age:        age(u.DateOfBirth, time.Now()),
		City:       u.City,
		Country:    u.Country,
		PhotoURL:   u.PhotoURL,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		LastActive: u.LastActive.UTC().Format(time.RFC3339),
	}
}

func toUserSummary(u *domain.User) *userSummary {
	return &userSummary{
		ID:       u.ID,
		Username: u.Username,
		KnownAs:  u.KnownAs,
		City:     u.City,
		Country:  u.Country,
		PhotoURL: u.PhotoURL,
	}
}

// age computes completed years between dob and now; zero when dob is unset.
func age(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

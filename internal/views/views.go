// Package views tracks, per client, which posts already had a view counted.
// The set lives in a cookie as comma-joined post ids, oldest first.
package views

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	CookieName = "viewed_posts"
	CookieTTL  = 24 * time.Hour
	// MaxTracked bounds the cookie; the oldest ids are dropped first.
	MaxTracked = 100
)

// Parse reads a cookie value, skipping elements that are not ids.
func Parse(value string) []int64 {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func FromRequest(r *http.Request) []int64 {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return Parse(cookie.Value)
}

func AlreadyViewed(ids []int64, id int64) bool {
	return slices.Contains(ids, id)
}

// Record appends id without de-duplicating; callers check AlreadyViewed first.
func Record(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, id)
	if len(out) > MaxTracked {
		out = out[len(out)-MaxTracked:]
	}
	return out
}

func Encode(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func Cookie(ids []int64, now time.Time) *http.Cookie {
	return &http.Cookie{
		Name:    CookieName,
		Value:   Encode(ids),
		Path:    "/",
		MaxAge:  int(CookieTTL.Seconds()),
		Expires: now.Add(CookieTTL),
	}
}

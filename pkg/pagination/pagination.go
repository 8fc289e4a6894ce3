package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params is one window of a paged listing
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse reads page and limit from the query string
func Parse(c *gin.Context) Params {
	return New(c.Query("page"), c.Query("limit"))
}

// New resolves raw page and limit values. Blank, invalid or non-positive input
// takes the default, and the limit is clamped to MaxLimit.
func New(page, limit string) Params {
	p := positive(page, DefaultPage)
	l := Cap(strconv.Itoa(positive(limit, DefaultLimit)), MaxLimit)
	return Params{Page: p, Limit: l, Offset: (p - 1) * l}
}

// Cap resolves a requested row limit against a hard ceiling.
// Blank or invalid input yields the ceiling; a request may lower it but never raise it.
func Cap(raw string, ceiling int) int {
	return min(positive(raw, ceiling), ceiling)
}

func positive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinLimit {
		return fallback
	}
	return n
}

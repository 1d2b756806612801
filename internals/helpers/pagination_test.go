package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseVia(t *testing.T, target string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseVia(t, "/x", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestParseFiberClampsAndParses(t *testing.T) {
	p := parseVia(t, "/x?page=3&per_page=1000&sort_by=title&order=asc", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage) // clamped to max
	assert.Equal(t, "title", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 400, p.Offset())
}

func TestParseFiberRejectsGarbage(t *testing.T) {
	p := parseVia(t, "/x?page=-2&per_page=abc&order=sideways", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestSafeOrderClauseWhitelists(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "title": "title"}

	p := Params{SortBy: "title", SortOrder: "asc"}
	assert.Equal(t, "title ASC", p.SafeOrderClause(allowed, "created_at"))

	// injection attempt falls back to the default column
	p = Params{SortBy: "title; DROP TABLE users--", SortOrder: "desc"}
	assert.Equal(t, "created_at DESC", p.SafeOrderClause(allowed, "created_at"))
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

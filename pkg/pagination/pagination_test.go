package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCap(t *testing.T) {
	cases := map[string]int{
		"":    MaxLimit,
		"abc": MaxLimit,
		"0":   MaxLimit,
		"-5":  MaxLimit,
		"500": MaxLimit,
		"25":  25,
		"100": 100,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Cap(raw, MaxLimit), "raw=%q", raw)
	}
}

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=3&limit=1000", nil)

	p := Parse(c)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset)
}

func TestNewFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit, Offset: 0}, New("", ""))
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit, Offset: 0}, New("-2", "0"))
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit, Offset: 0}, New("x", "y"))
	assert.Equal(t, Params{Page: 2, Limit: 5, Offset: 5}, New(" 2 ", "5"))
}

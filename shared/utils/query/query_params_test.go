package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string) ListParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ParseListParams(c)
}

func TestParseListParamsDefaults(t *testing.T) {
	params := paramsFor(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "id", params.Sort.Field)
	assert.Equal(t, "asc", params.Sort.Order)
	assert.Empty(t, params.Search)
}

func TestParseListParamsClampsPagination(t *testing.T) {
	params := paramsFor(t, "page=0&limit=500")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
}

func TestParseListParamsInvalidSortOrder(t *testing.T) {
	params := paramsFor(t, "sort[field]=name&sort[order]=sideways")

	assert.Equal(t, "name", params.Sort.Field)
	assert.Equal(t, "asc", params.Sort.Order)
}

func TestParseListParamsSearch(t *testing.T) {
	params := paramsFor(t, "search=ленина&page=2&limit=5")

	assert.Equal(t, "ленина", params.Search)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)
}

func TestBuildPaginationResponse(t *testing.T) {
	pagination := BuildPaginationResponse(2, 10, 35)

	assert.Equal(t, int64(4), pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	last := BuildPaginationResponse(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

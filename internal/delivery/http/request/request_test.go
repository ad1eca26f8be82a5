package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSVQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "missing", query: "", want: nil},
		{name: "single", query: "style=Casual", want: []string{"Casual"}},
		{name: "comma separated", query: "style=Casual,Street", want: []string{"Casual", "Street"}},
		{name: "blanks dropped", query: "style=Casual,,%20,Street%20", want: []string{"Casual", "Street"}},
		{name: "repeated", query: "style=Casual&style=Street,Boho", want: []string{"Casual", "Street", "Boho"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			assert.Equal(t, tt.want, GetCSVQuery(req, "style"))
		})
	}
}

func TestGetOptionalInt64Query(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?minPrice=20&maxPrice=abc&neg=-5", nil)

	minPrice := GetOptionalInt64Query(req, "minPrice")
	require.NotNil(t, minPrice)
	assert.Equal(t, int64(20), *minPrice)

	assert.Nil(t, GetOptionalInt64Query(req, "maxPrice"))
	assert.Nil(t, GetOptionalInt64Query(req, "missing"))

	neg := GetOptionalInt64Query(req, "neg")
	require.NotNil(t, neg)
	assert.Equal(t, int64(-5), *neg)
}

func TestGetUUIDQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?creator_id=not-a-uuid", nil)
	_, err := GetUUIDQuery(req, "creator_id")
	assert.Error(t, err)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	id, err := GetUUIDQuery(req, "creator_id")
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestGetPaginationParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=500&offset=-1", nil)
	limit, offset := GetPaginationParams(req)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	req = httptest.NewRequest(http.MethodGet, "/?limit=50&offset=10", nil)
	limit, offset = GetPaginationParams(req)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, offset)
}

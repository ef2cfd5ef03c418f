package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "Defaults", query: "", wantLimit: 20, wantOffset: 0},
		{name: "Explicit", query: "limit=5&offset=40", wantLimit: 5, wantOffset: 40},
		{name: "ClampsLimit", query: "limit=5000", wantLimit: 100, wantOffset: 0},
		{name: "IgnoresGarbage", query: "limit=abc&offset=-3", wantLimit: 20, wantOffset: 0},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			limit, offset := pagination(c)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		expectedPage     int
		expectedPageSize int
	}{
		{"Defaults", 0, 0, 1, 10},
		{"Given", 3, 20, 3, 20},
		{"Negative", -1, -5, 1, 10},
		{"Capped", 2, 1000, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.expectedPage, p.CurrentPage)
			assert.Equal(t, tt.expectedPageSize, p.PageSize)
		})
	}
}

func TestPagination_SetTotal(t *testing.T) {
	p := NewPagination(1, 10)

	p.SetTotal(0)
	assert.Equal(t, 0, p.Pages)

	p.SetTotal(10)
	assert.Equal(t, 1, p.Pages)

	p.SetTotal(11)
	assert.Equal(t, 2, p.Pages)

	result := GetPaginationResult(p, []int{1})
	assert.Equal(t, int64(11), result["total"])
	assert.Equal(t, 2, result["pages"])
	assert.Equal(t, []int{1}, result["list"])
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 200, HTTPStatus(CodeSuccess))
	assert.Equal(t, 409, HTTPStatus(CodeDuplicateName))
	assert.Equal(t, 422, HTTPStatus(CodeValidation))
	assert.Equal(t, 401, HTTPStatus(CodeBadCredentials))
	assert.Equal(t, 500, HTTPStatus(42))
}

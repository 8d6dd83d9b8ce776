package util

import (
	"errors"
	"testing"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBuildResponseFailed(t *testing.T) {
	withError := BuildResponseFailed("", errors.New("boom"), nil)
	assert.False(t, withError.Success)
	assert.Equal(t, constant.REQUEST_UNSUCCESSFUL, withError.Message)
	assert.Equal(t, []ApiError{{Field: "Unknown", Message: "boom"}}, withError.Errors)
	assert.Equal(t, gin.H{}, withError.Data)

	empty := BuildResponseFailed("Failed to generate PDF", nil, gin.H{"id": 3})
	assert.Equal(t, "Failed to generate PDF", empty.Message)
	assert.Equal(t, gin.H{}, empty.Errors)
	assert.Equal(t, gin.H{"id": 3}, empty.Data)

	custom := []ApiError{{Field: "id", Message: "Invalid id"}}
	assert.Equal(t, custom, BuildResponseFailed("", custom, nil).Errors)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize uint
		want     int
	}{
		{"Empty", 0, 10, 1},
		{"Exact", 20, 10, 2},
		{"Remainder", 21, 10, 3},
		{"Label page size", 13, 12, 2},
		{"Default page size", 16, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPage(tt.total, tt.pageSize))
		})
	}
}

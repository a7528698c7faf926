package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 25)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, GetPaginationParams(1, 10).CalculateOffset())
	assert.Equal(t, 20, GetPaginationParams(3, 10).CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 10}.CalculateOffset())
}

package util

import "github.com/dipii/backoffice/internal/constant"

// CalculateTotalPage never returns less than 1 so an empty list still has a
// first page to show.
func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}

	size := int64(pageSize)
	return int((totalItems + size - 1) / size)
}

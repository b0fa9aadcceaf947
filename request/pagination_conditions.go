package request

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var sortColumnRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type PaginationConditions struct {
	Limit         *int       `json:"limit" form:"limit"`                 // Pagination limit
	Offset        *int       `json:"offset" form:"offset"`               // Pagination offset (optional when using ID-based)
	SortBy        *string    `json:"sortBy" form:"sortBy"`               // Field to sort by
	Order         *string    `json:"order" form:"order"`                 // ASC or DESC
	GreaterThanID *uint      `json:"greaterThanID" form:"greaterThanID"` // For ID-based pagination
	LessThanID    *uint      `json:"lessThanID" form:"lessThanID"`       // For reverse ID-based pagination
	CreatedAfter  *time.Time `json:"createdAfter" form:"createdAfter"`
	CreatedBefore *time.Time `json:"createdBefore" form:"createdBefore"`
	UpdatedAfter  *time.Time `json:"updatedAfter" form:"updatedAfter"`
	UpdatedBefore *time.Time `json:"updatedBefore" form:"updatedBefore"`
	StartDate     *time.Time `json:"startDate" form:"startDate"` // Inclusive lower bound on created_at
	EndDate       *time.Time `json:"endDate" form:"endDate"`     // Inclusive upper bound on created_at
}

// ApplyWindowConditions applies the ID cursors and timestamp windows. These
// narrow the result set, so they belong before any count.
func ApplyWindowConditions(query *gorm.DB, conditions PaginationConditions) *gorm.DB {
	if conditions.GreaterThanID != nil {
		query = query.Where("id > ?", *conditions.GreaterThanID)
	}
	if conditions.LessThanID != nil {
		query = query.Where("id < ?", *conditions.LessThanID)
	}

	if conditions.CreatedAfter != nil {
		query = query.Where("created_at > ?", *conditions.CreatedAfter)
	}
	if conditions.CreatedBefore != nil {
		query = query.Where("created_at < ?", *conditions.CreatedBefore)
	}
	if conditions.UpdatedAfter != nil {
		query = query.Where("updated_at > ?", *conditions.UpdatedAfter)
	}
	if conditions.UpdatedBefore != nil {
		query = query.Where("updated_at < ?", *conditions.UpdatedBefore)
	}

	if conditions.StartDate != nil {
		query = query.Where("created_at >= ?", *conditions.StartDate)
	}
	if conditions.EndDate != nil {
		query = query.Where("created_at <= ?", *conditions.EndDate)
	}
	return query
}

// ApplyPaginationConditions applies sorting, offset and limit. An unknown
// order or a sort column that is not a plain (optionally qualified)
// identifier is ignored.
func ApplyPaginationConditions(query *gorm.DB, conditions PaginationConditions) *gorm.DB {
	sortBy := "id"
	if conditions.SortBy != nil && sortColumnRegex.MatchString(*conditions.SortBy) {
		sortBy = *conditions.SortBy
	}
	order := "DESC"
	if conditions.Order != nil {
		switch o := strings.ToUpper(*conditions.Order); o {
		case "ASC", "DESC":
			order = o
		}
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if conditions.Offset != nil && *conditions.Offset > 0 {
		query = query.Offset(*conditions.Offset)
	}
	if conditions.Limit != nil && *conditions.Limit > 0 {
		query = query.Limit(*conditions.Limit)
	}
	return query
}

package request

import "gorm.io/gorm"

type CreateMemberRequest struct {
	ReferenceID   string  `json:"referenceID" binding:"required"`
	PreferredCode *string `json:"preferredCode"`
	Email         *string `json:"email"`
	Status        *string `json:"status"`
}

type GetMemberRequest struct {
	Projects             []string             `json:"projects" form:"projects"`
	Search               []SearchFilter       `json:"search" form:"search"`
	PaginationConditions PaginationConditions `json:"paginationConditions" form:"paginationConditions"`
}

func ApplyGetMemberRequest(req GetMemberRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("referral_members.project IN (?)", req.Projects)
	}
	return query
}

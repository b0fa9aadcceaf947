package service

import (
	"context"

	"github.com/PayRam/go-search/models"
	"github.com/PayRam/go-search/request"
)

// MemberService handles creating and searching directory members
type MemberService interface {
	CreateMember(project string, req request.CreateMemberRequest) (*models.Member, error)
	GetMembers(ctx context.Context, req request.GetMemberRequest) ([]models.Member, int64, error)
}

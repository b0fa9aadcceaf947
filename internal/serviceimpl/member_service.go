package serviceimpl

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/PayRam/go-search/models"
	"github.com/PayRam/go-search/request"
	"github.com/PayRam/go-search/search"
	"github.com/PayRam/go-search/utils"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// MemberSearchFields are the keys GetMembers accepts in request.SearchFilter.
var MemberSearchFields = search.FieldMap{
	"project":     "referral_members.project",
	"referenceId": "referral_members.reference_id",
	"email":       "referral_members.email",
	"code":        "referral_members.code",
	"status":      "referral_members.status",
}

type memberService struct {
	DB     *gorm.DB
	logger zerolog.Logger
}

func NewMemberService(db *gorm.DB, logger zerolog.Logger) *memberService {
	return &memberService{
		DB:     db,
		logger: logger.With().Str("component", "member_service").Logger(),
	}
}

func (s *memberService) CreateMember(project string, req request.CreateMemberRequest) (*models.Member, error) {
	if req.ReferenceID == "" {
		return nil, fmt.Errorf("reference id cannot be empty")
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	code := utils.GenerateCode()
	if req.PreferredCode != nil && *req.PreferredCode != "" {
		code = *req.PreferredCode
	}

	member := &models.Member{
		Project:     project,
		ReferenceID: req.ReferenceID,
		Email:       req.Email,
		Code:        code,
	}
	if req.Status != nil && *req.Status != "" {
		member.Status = *req.Status
	}

	if err := s.DB.Create(member).Error; err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.logger.Debug().
		Str("project", project).
		Str("reference_id", member.ReferenceID).
		Uint("id", member.ID).
		Msg("Member created")
	return member, nil
}

func (s *memberService) GetMembers(ctx context.Context, req request.GetMemberRequest) ([]models.Member, int64, error) {
	var members []models.Member
	var count int64

	qb := search.NewBuilder()
	search.ApplyDynamicSearchFilters(qb, req.Search, MemberSearchFields)

	query := s.DB.WithContext(ctx).Model(&models.Member{})
	query = request.ApplyGetMemberRequest(req, query)
	query = query.Scopes(qb.Scope())
	query = request.ApplyWindowConditions(query, req.PaginationConditions)

	// Calculate total count before applying pagination
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)
	if err := query.Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch members: %w", err)
	}

	s.logger.Debug().
		Str("predicate", qb.Predicate()).
		Strs("parameters", qb.ParameterNames()).
		Int64("total", count).
		Int("returned", len(members)).
		Msg("Members searched")
	return members, count, nil
}

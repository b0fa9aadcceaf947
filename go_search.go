package go_search

import (
	"fmt"

	db2 "github.com/PayRam/go-search/internal/db"
	"github.com/PayRam/go-search/internal/serviceimpl"
	"github.com/PayRam/go-search/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SearchService struct {
	Members service.MemberService
}

// NewSearchService runs migrations on db and wires the services.
func NewSearchService(db *gorm.DB, logger zerolog.Logger) (*SearchService, error) {
	if err := db2.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to initialise search service: %w", err)
	}
	logger.Info().Msg("Database initialised and migrations run successfully")

	return &SearchService{
		Members: serviceimpl.NewMemberService(db, logger),
	}, nil
}

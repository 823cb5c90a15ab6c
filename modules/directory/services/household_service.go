package services

import (
	"context"
	"strings"

	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/household"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
)

type HouseholdService struct {
	households household.Repository
	members    member.Repository
}

func NewHouseholdService(households household.Repository, members member.Repository) *HouseholdService {
	return &HouseholdService{households: households, members: members}
}

func (s *HouseholdService) GetPaginated(ctx context.Context, params *household.FindParams) ([]household.Household, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.households.GetPaginated(ctx, params)
}

func (s *HouseholdService) GetByHouseholdID(ctx context.Context, householdID string) (household.Household, error) {
	return s.households.GetByHouseholdID(ctx, householdID)
}

// Members lists a household's members; non-admin callers only see members
// whose visibility flag is set.
func (s *HouseholdService) Members(ctx context.Context, householdID string, includeHidden bool) ([]member.Member, error) {
	h, err := s.households.GetByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	return s.members.ListByHousehold(ctx, h.ID(), !includeHidden)
}

func (s *HouseholdService) Upsert(ctx context.Context, h household.Household) (household.Household, bool, error) {
	return s.households.Upsert(ctx, h)
}

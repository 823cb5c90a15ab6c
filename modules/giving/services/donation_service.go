package services

import (
	"context"
	"strings"

	"github.com/parishdesk/parishdesk/modules/giving/domain/aggregates/donation"
)

type DonationService struct {
	donations donation.Repository
}

func NewDonationService(donations donation.Repository) *DonationService {
	return &DonationService{donations: donations}
}

func (s *DonationService) GetPaginated(ctx context.Context, params *donation.FindParams) ([]donation.Donation, int64, error) {
	if params != nil {
		params.HouseholdID = strings.TrimSpace(params.HouseholdID)
		params.Fund = strings.TrimSpace(params.Fund)
	}
	return s.donations.GetPaginated(ctx, params)
}

func (s *DonationService) Create(ctx context.Context, d donation.Donation) (donation.Donation, error) {
	return s.donations.Create(ctx, d)
}

package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/parishdesk/parishdesk/modules/dataimport/importer"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/household"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
	"github.com/parishdesk/parishdesk/modules/giving/domain/aggregates/donation"
	"github.com/parishdesk/parishdesk/pkg/eventbus"
)

// ImportCompletedEvent is published after every upload, successful or not
// at the row level; the report carries the per-row outcome counters.
type ImportCompletedEvent struct {
	Entity string
	Report importer.Report
}

// ImportService runs the tabular ingestion pipeline: parse, classify,
// map, validate, and upsert row by row. Rows are processed sequentially
// in file order; a row-level failure never aborts the batch.
type ImportService struct {
	households household.Repository
	members    member.Repository
	donations  donation.Repository
	publisher  eventbus.EventBus
	log        logrus.FieldLogger
	maxRows    int
}

func NewImportService(
	households household.Repository,
	members member.Repository,
	donations donation.Repository,
	publisher eventbus.EventBus,
	log logrus.FieldLogger,
	maxRows int,
) *ImportService {
	return &ImportService{
		households: households,
		members:    members,
		donations:  donations,
		publisher:  publisher,
		log:        log,
		maxRows:    maxRows,
	}
}

// checkRowCount enforces the batch precondition: between 1 and maxRows
// data rows, rejected before any persistence begins.
func (s *ImportService) checkRowCount(n int) error {
	if n == 0 {
		return importer.ErrNoDataRows
	}
	if n > s.maxRows {
		return importer.TooManyRows(n, s.maxRows)
	}
	return nil
}

func (s *ImportService) ImportMembers(ctx context.Context, file io.Reader) (importer.Report, error) {
	grid, err := importer.ParseWorkbook(file)
	if err != nil {
		return importer.Report{}, err
	}

	format, rows, err := importer.DetectMembers(grid)
	if err != nil {
		return importer.Report{}, err
	}
	if err := s.checkRowCount(len(rows)); err != nil {
		return importer.Report{}, err
	}

	report := importer.Report{Format: format, Total: len(rows)}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			report.Errors++
			continue
		}

		ref := row.HouseholdRef
		if ref == nil && row.HouseholdID != "" {
			h, err := s.households.GetByHouseholdID(ctx, row.HouseholdID)
			switch {
			case err == nil:
				id := h.ID()
				ref = &id
			case errors.Is(err, household.ErrNotFound):
				// Dangling reference: stored as null, not an error.
			default:
				report.Errors++
				continue
			}
		}

		m := member.New(row.MemberID, row.FirstName, row.LastName).
			WithRelationship(row.Relationship).
			WithDates(row.BirthDate, row.WeddingDate).
			WithContact(row.Phone, row.Email).
			WithHouseholdRef(ref).
			WithVisible(row.Visible)

		_, inserted, err := s.members.Upsert(ctx, m)
		if err != nil {
			report.Errors++
			continue
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
	}

	s.publish("members", report)
	return report, nil
}

func (s *ImportService) ImportHouseholds(ctx context.Context, file io.Reader) (importer.Report, error) {
	grid, err := importer.ParseWorkbook(file)
	if err != nil {
		return importer.Report{}, err
	}

	format, rows, err := importer.DetectHouseholds(grid)
	if err != nil {
		return importer.Report{}, err
	}
	if err := s.checkRowCount(len(rows)); err != nil {
		return importer.Report{}, err
	}

	report := importer.Report{Format: format, Total: len(rows)}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			report.Skipped++
			continue
		}

		h := household.New(row.HouseholdID, row.MailTo).
			WithContact(row.Address, row.Phone, row.Email).
			WithGiving(row.DonorNumber, row.PrayerGroup)

		_, inserted, err := s.households.Upsert(ctx, h)
		if err != nil {
			report.Skipped++
			continue
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
	}

	s.publish("households", report)
	return report, nil
}

func (s *ImportService) ImportDonations(ctx context.Context, file io.Reader) (importer.Report, error) {
	grid, err := importer.ParseWorkbook(file)
	if err != nil {
		return importer.Report{}, err
	}

	format, rows, err := importer.DetectDonations(grid)
	if err != nil {
		return importer.Report{}, err
	}
	if err := s.checkRowCount(len(rows)); err != nil {
		return importer.Report{}, err
	}

	processedOn := time.Now()
	report := importer.Report{Format: format, Total: len(rows)}
	for _, row := range rows {
		amount, err := row.Validate()
		if err != nil {
			report.Skipped++
			continue
		}

		donatedOn := processedOn
		if row.Date != nil {
			donatedOn = *row.Date
		}

		d := donation.New(row.HouseholdID, row.DonorNumber, row.Fund, amount, donatedOn)
		if _, err := s.donations.Create(ctx, d); err != nil {
			report.Skipped++
			continue
		}
		report.Inserted++
	}

	s.publish("donations", report)
	return report, nil
}

// publish delivers the completion event synchronously. Delivery problems
// are logged, never surfaced: the rows are already written by this point.
func (s *ImportService) publish(entity string, report importer.Report) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishE(&ImportCompletedEvent{Entity: entity, Report: report})
	if err != nil && !errors.Is(err, eventbus.ErrNoSubscribers) && s.log != nil {
		s.log.WithError(err).WithField("entity", entity).Warn("import completion event delivery failed")
	}
}

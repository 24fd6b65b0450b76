package service

import (
	"context"
	"io"
	"time"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/guestlist"
	"github.com/rjwedding/rsvp-backend/internal/repo/postgres"
	"github.com/rjwedding/rsvp-backend/pkg/events"
	"github.com/rjwedding/rsvp-backend/pkg/logger"
)

// AdminService covers the aggregate and bulk operations gated on the caller's
// admin flag. The flag check itself lives in the handler: admin identity is
// just a guest lookup whose row carries admin=true.
type AdminService interface {
	Attendance(ctx context.Context) (*domain.AttendanceReport, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, importedBy string, file io.Reader) ([]int64, error)
}

type adminService struct {
	repo      postgres.GuestRepo
	validator *guestlist.Validator
	eventBus  events.Publisher
}

func NewAdminService(repo postgres.GuestRepo, validator *guestlist.Validator, eventBus events.Publisher) AdminService {
	return &adminService{repo: repo, validator: validator, eventBus: eventBus}
}

// Attendance recomputes the derived totals over the full collection on every
// call. Nothing is cached: plus-ones and answers change between reads.
func (s *adminService) Attendance(ctx context.Context) (*domain.AttendanceReport, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.AttendanceReport{GroupCount: len(groups)}
	for _, g := range groups {
		report.PartyCount += g.PartyTotal()
		report.CeremonyCount += g.CeremonyTotal()
		if g.Responded() {
			report.RespondedCount++
		}
	}
	return report, nil
}

func (s *adminService) ExportCSV(ctx context.Context, w io.Writer) error {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	return guestlist.WriteCSV(w, groups)
}

// Import validates the whole uploaded table, then swaps the guest list in one
// transaction. A validation failure never reaches the destructive step.
func (s *adminService) Import(ctx context.Context, importedBy string, file io.Reader) ([]int64, error) {
	groups, err := s.validator.Parse(file)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.ReplaceAll(ctx, groups)
	if err != nil {
		return nil, err
	}

	evt := events.GuestListImportedEvent{
		Groups:     len(ids),
		ImportedBy: importedBy,
		ImportedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, events.GuestListImported, evt); err != nil {
		logger.ErrorContext(ctx, "Failed to publish guest list imported event", "error", err)
	}

	return ids, nil
}

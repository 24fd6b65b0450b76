package service

import (
	"context"
	"fmt"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/platform/mailer"
	"github.com/rjwedding/rsvp-backend/internal/repo/postgres"
	"github.com/rjwedding/rsvp-backend/internal/utils"
	"github.com/rjwedding/rsvp-backend/pkg/events"
	"github.com/rjwedding/rsvp-backend/pkg/logger"
)

// GuestService covers every code-scoped guest operation. Lookups return
// (nil, nil) for an unknown code; handlers translate that into a 404.
type GuestService interface {
	GetByCode(ctx context.Context, code string) (*domain.GuestGroup, error)
	Music(ctx context.Context) ([]domain.MusicEntry, error)
	ParkingCount(ctx context.Context) (int, error)
	RSVP(ctx context.Context, code string, event domain.Event, status int) (*domain.GuestGroup, error)
	SetPlusOne(ctx context.Context, code string, granted bool) (*domain.GuestGroup, error)
	SetSongChoice(ctx context.Context, code, songChoice string) (*domain.GuestGroup, error)
	SetDietaryRequirements(ctx context.Context, code, requirements string) (*domain.GuestGroup, error)
	SetParkingRequired(ctx context.Context, code string, required bool) (*domain.GuestGroup, error)
	SetContactDetails(ctx context.Context, code string, in domain.ContactDetailsRequest) (*domain.GuestGroup, error)
}

type guestService struct {
	repo     postgres.GuestRepo
	eventBus events.Publisher
	mail     mailer.Service
}

func NewGuestService(repo postgres.GuestRepo, eventBus events.Publisher, mail mailer.Service) GuestService {
	return &guestService{repo: repo, eventBus: eventBus, mail: mail}
}

func (s *guestService) GetByCode(ctx context.Context, code string) (*domain.GuestGroup, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *guestService) Music(ctx context.Context) ([]domain.MusicEntry, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	music := make([]domain.MusicEntry, 0)
	for _, g := range groups {
		if g.SongChoice != nil && *g.SongChoice != "" {
			music = append(music, domain.MusicEntry{
				DisplayName: g.DisplayName,
				SongChoice:  *g.SongChoice,
			})
		}
	}
	return music, nil
}

func (s *guestService) ParkingCount(ctx context.Context) (int, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, g := range groups {
		if g.ParkingRequired {
			count++
		}
	}
	return count, nil
}

func (s *guestService) RSVP(ctx context.Context, code string, event domain.Event, status int) (*domain.GuestGroup, error) {
	g, err := s.repo.SetAttendance(ctx, code, event, status)
	if err != nil || g == nil {
		return g, err
	}

	evt := events.RSVPUpdatedEvent{
		Code:      g.Code,
		Event:     string(event),
		Status:    status,
		UpdatedAt: g.UpdatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.RSVPUpdated, evt); err != nil {
		logger.ErrorContext(ctx, "Failed to publish RSVP updated event", "error", err, "code", g.Code)
	}

	if g.Email != nil && *g.Email != "" && status != domain.NoResponse {
		if err := s.mail.SendRSVPConfirmation(*g.Email, g.DisplayName, string(event), status == domain.Accepted); err != nil {
			logger.ErrorContext(ctx, "Failed to send RSVP confirmation", "error", err, "code", g.Code)
		}
	}

	return g, nil
}

func (s *guestService) SetPlusOne(ctx context.Context, code string, granted bool) (*domain.GuestGroup, error) {
	return s.repo.SetPlusOne(ctx, code, granted)
}

func (s *guestService) SetSongChoice(ctx context.Context, code, songChoice string) (*domain.GuestGroup, error) {
	return s.repo.SetSongChoice(ctx, code, songChoice)
}

func (s *guestService) SetDietaryRequirements(ctx context.Context, code, requirements string) (*domain.GuestGroup, error) {
	return s.repo.SetDietaryRequirements(ctx, code, requirements)
}

func (s *guestService) SetParkingRequired(ctx context.Context, code string, required bool) (*domain.GuestGroup, error) {
	return s.repo.SetParkingRequired(ctx, code, required)
}

func (s *guestService) SetContactDetails(ctx context.Context, code string, in domain.ContactDetailsRequest) (*domain.GuestGroup, error) {
	if in.Email != nil {
		normalized := utils.NormalizeEmail(*in.Email)
		if !utils.IsValidEmail(normalized) {
			return nil, fmt.Errorf("%w: invalid email address", ErrBadField)
		}
		in.Email = &normalized
	}
	if in.Phone != nil {
		normalized := utils.NormalizePhone(*in.Phone)
		in.Phone = &normalized
	}
	return s.repo.SetContactDetails(ctx, code, in)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/http/response"
	"github.com/rjwedding/rsvp-backend/internal/service"
	"github.com/rjwedding/rsvp-backend/pkg/config"
)

type Handlers struct {
	guests service.GuestService
	admin  service.AdminService
	photos service.PhotoService
	cfg    *config.Config
}

func New(guests service.GuestService, admin service.AdminService, photos service.PhotoService, cfg *config.Config) *Handlers {
	return &Handlers{
		guests: guests,
		admin:  admin,
		photos: photos,
		cfg:    cfg,
	}
}

func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/rsvp", h.RSVP)
	r.Post("/plus-one", h.PlusOne)
	r.Post("/songchoice", h.SongChoice)
	r.Post("/dietary-requirements", h.DietaryRequirements)
	r.Post("/parking-required", h.ParkingRequired)
	r.Post("/contact-details", h.ContactDetails)
	r.Post("/photo", h.UploadPhotos)
	r.Post("/upload-database", h.UploadDatabase)

	r.Get("/{code}", h.GetProfile)
	r.Get("/{code}/music", h.GetMusic)
	r.Get("/{code}/parking_count", h.GetParkingCount)
	r.Get("/{code}/attendance", h.GetAttendance)
	r.Get("/{code}/download-database", h.DownloadDatabase)

	return r
}

// resolveGuest looks up a code and writes a 404 when it is unknown. Every
// code-scoped operation goes through this before touching anything else.
func (h *Handlers) resolveGuest(w http.ResponseWriter, r *http.Request, code string) *domain.GuestGroup {
	g, err := h.guests.GetByCode(r.Context(), code)
	if err != nil {
		response.InternalError(w, "Failed to look up guest code")
		return nil
	}
	if g == nil {
		response.NotFound(w, "Invalid guest code, please login")
		return nil
	}
	return g
}

// resolveAdmin is resolveGuest plus the admin capability check. Admin identity
// is just a guest lookup whose row carries the admin flag; there is no
// separate credential.
func (h *Handlers) resolveAdmin(w http.ResponseWriter, r *http.Request, code string) *domain.GuestGroup {
	g := h.resolveGuest(w, r, code)
	if g == nil {
		return nil
	}
	if !g.Admin {
		response.Forbidden(w, "This action is only authorised for admins")
		return nil
	}
	return g
}

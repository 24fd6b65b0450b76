package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/http/response"
	"github.com/rjwedding/rsvp-backend/internal/platform/objstore"
	"github.com/rjwedding/rsvp-backend/internal/service"
	"github.com/rjwedding/rsvp-backend/pkg/logger"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	g := h.resolveGuest(w, r, chi.URLParam(r, "code"))
	if g == nil {
		return
	}
	response.WriteJSON(w, http.StatusOK, g)
}

func (h *Handlers) GetMusic(w http.ResponseWriter, r *http.Request) {
	if g := h.resolveGuest(w, r, chi.URLParam(r, "code")); g == nil {
		return
	}

	music, err := h.guests.Music(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load song choices")
		return
	}
	response.WriteJSON(w, http.StatusOK, music)
}

func (h *Handlers) GetParkingCount(w http.ResponseWriter, r *http.Request) {
	if g := h.resolveGuest(w, r, chi.URLParam(r, "code")); g == nil {
		return
	}

	count, err := h.guests.ParkingCount(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to count parking spaces")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]int{"parking_count": count})
}

func (h *Handlers) RSVP(w http.ResponseWriter, r *http.Request) {
	var in domain.RSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	event, ok := domain.ParseEvent(in.Event)
	if !ok {
		response.BadRequest(w, "Invalid event. Must be party or ceremony.")
		return
	}
	if in.Status < domain.NoResponse || in.Status > domain.Accepted {
		response.BadRequest(w, "Invalid status. Must be -1, 0 or 1.")
		return
	}

	g, err := h.guests.RSVP(guestContext(r, in.Code), in.Code, event, in.Status)
	h.writeUpdated(w, g, err)
}

func (h *Handlers) PlusOne(w http.ResponseWriter, r *http.Request) {
	var in domain.PlusOneRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	g, err := h.guests.SetPlusOne(guestContext(r, in.Code), in.Code, in.Status)
	h.writeUpdated(w, g, err)
}

func (h *Handlers) SongChoice(w http.ResponseWriter, r *http.Request) {
	var in domain.SongChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	g, err := h.guests.SetSongChoice(guestContext(r, in.Code), in.Code, in.SongChoice)
	h.writeUpdated(w, g, err)
}

func (h *Handlers) DietaryRequirements(w http.ResponseWriter, r *http.Request) {
	var in domain.DietaryRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	g, err := h.guests.SetDietaryRequirements(guestContext(r, in.Code), in.Code, in.Requirements)
	h.writeUpdated(w, g, err)
}

func (h *Handlers) ParkingRequired(w http.ResponseWriter, r *http.Request) {
	var in domain.ParkingRequiredRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	g, err := h.guests.SetParkingRequired(guestContext(r, in.Code), in.Code, in.Required)
	h.writeUpdated(w, g, err)
}

func (h *Handlers) ContactDetails(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	g, err := h.guests.SetContactDetails(guestContext(r, in.Code), in.Code, in)
	if errors.Is(err, service.ErrBadField) {
		response.BadRequest(w, err.Error())
		return
	}
	h.writeUpdated(w, g, err)
}

func (h *Handlers) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	code := r.FormValue("code")
	if g := h.resolveGuest(w, r, code); g == nil {
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		response.BadRequest(w, "No photos in request")
		return
	}

	if err := h.photos.Upload(guestContext(r, code), code, files); err != nil {
		if errors.Is(err, objstore.ErrNoCredentials) {
			logger.ErrorContext(r.Context(), "Object store credentials not available", "guest_code", code)
			response.WriteError(w, http.StatusInternalServerError,
				"Object storage credentials not available", response.CodeStorageError)
			return
		}
		response.InternalError(w, "Failed to upload photos")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Photos uploaded!"})
}

// writeUpdated finishes every single-field mutation: 404 for an unknown code,
// otherwise the updated entity.
func (h *Handlers) writeUpdated(w http.ResponseWriter, g *domain.GuestGroup, err error) {
	if err != nil {
		response.InternalError(w, "Failed to update guest group")
		return
	}
	if g == nil {
		response.NotFound(w, "Invalid guest code, please login")
		return
	}
	response.WriteJSON(w, http.StatusOK, g)
}

// guestContext tags the request context with the acting guest's code so log
// lines written further down carry it.
func guestContext(r *http.Request, code string) context.Context {
	return context.WithValue(r.Context(), logger.GuestCodeKey, code)
}

package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rjwedding/rsvp-backend/internal/guestlist"
	"github.com/rjwedding/rsvp-backend/internal/http/response"
)

func (h *Handlers) GetAttendance(w http.ResponseWriter, r *http.Request) {
	if g := h.resolveAdmin(w, r, chi.URLParam(r, "code")); g == nil {
		return
	}

	report, err := h.admin.Attendance(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute attendance totals")
		return
	}
	response.WriteJSON(w, http.StatusOK, report)
}

func (h *Handlers) DownloadDatabase(w http.ResponseWriter, r *http.Request) {
	if g := h.resolveAdmin(w, r, chi.URLParam(r, "code")); g == nil {
		return
	}

	// Render into a buffer first so a scan failure still yields a clean 500
	// instead of a truncated download.
	var buf bytes.Buffer
	if err := h.admin.ExportCSV(r.Context(), &buf); err != nil {
		response.InternalError(w, "Failed to export guest list")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+guestlist.ExportFilename)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handlers) UploadDatabase(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.Wedding.UploadLimit); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	code := r.FormValue("code")
	if g := h.resolveAdmin(w, r, code); g == nil {
		return
	}

	file, _, err := r.FormFile("database_data")
	if err != nil {
		response.BadRequest(w, "Missing guest list file")
		return
	}
	defer file.Close()

	ids, err := h.admin.Import(guestContext(r, code), code, file)
	if err != nil {
		var verr *guestlist.ValidationError
		if errors.As(err, &verr) {
			response.WriteError(w, http.StatusBadRequest, verr.Message, response.CodeInvalidGuestList)
			return
		}
		response.InternalError(w, "Failed to import guest list")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Guest list uploaded!",
		"new_ids": ids,
	})
}

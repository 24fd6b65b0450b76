package guestlist

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rjwedding/rsvp-backend/internal/domain"
)

// ExportFilename is the attachment name for guest-list downloads.
const ExportFilename = "database.csv"

var exportHeader = []string{
	"id", "display_name", "code",
	"party_count", "ceremony_count",
	"party_attendance", "ceremony_attendance", "plus_one",
	"dietary_requirements", "song_choice",
	"address", "postcode", "email", "phone",
	"parking_required", "admin",
}

// WriteCSV writes every stored field of every group, one row per group, with a
// header row. Derived totals are intentionally absent: the export is the raw
// dataset, not a report.
func WriteCSV(w io.Writer, groups []domain.GuestGroup) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, g := range groups {
		row := []string{
			strconv.FormatInt(g.ID, 10),
			g.DisplayName,
			g.Code,
			strconv.Itoa(g.PartyCount),
			strconv.Itoa(g.CeremonyCount),
			strconv.Itoa(g.PartyAttendance),
			strconv.Itoa(g.CeremonyAttendance),
			strconv.FormatBool(g.PlusOne),
			orEmpty(g.DietaryRequirements),
			orEmpty(g.SongChoice),
			orEmpty(g.Address),
			orEmpty(g.Postcode),
			orEmpty(g.Email),
			orEmpty(g.Phone),
			strconv.FormatBool(g.ParkingRequired),
			strconv.FormatBool(g.Admin),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

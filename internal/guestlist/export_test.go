package guestlist_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/guestlist"
)

func TestWriteCSV(t *testing.T) {
	song := "Test Song"
	groups := []domain.GuestGroup{
		{
			ID:                 1,
			DisplayName:        "Rachel & James",
			Code:               "RJ01",
			PartyCount:         2,
			CeremonyCount:      2,
			PartyAttendance:    domain.Accepted,
			CeremonyAttendance: domain.NoResponse,
			SongChoice:         &song,
			ParkingRequired:    true,
		},
		{
			ID:                 2,
			DisplayName:        "Admin",
			Code:               "secret",
			PartyAttendance:    domain.NoResponse,
			CeremonyAttendance: domain.NoResponse,
			Admin:              true,
		},
	}

	var buf bytes.Buffer
	if err := guestlist.WriteCSV(&buf, groups); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	header := records[0]
	wantCols := 16
	if len(header) != wantCols {
		t.Errorf("header has %d columns, want %d: %v", len(header), wantCols, header)
	}
	if header[0] != "id" || header[1] != "display_name" || header[2] != "code" {
		t.Errorf("unexpected header start: %v", header[:3])
	}

	row := records[1]
	if row[1] != "Rachel & James" || row[2] != "RJ01" {
		t.Errorf("unexpected first row: %v", row)
	}
	if row[5] != "1" {
		t.Errorf("party_attendance column = %q, want 1", row[5])
	}
	if row[9] != "Test Song" {
		t.Errorf("song_choice column = %q, want Test Song", row[9])
	}

	adminRow := records[2]
	if adminRow[9] != "" {
		t.Errorf("unset song_choice should export empty, got %q", adminRow[9])
	}
	if adminRow[15] != "true" {
		t.Errorf("admin column = %q, want true", adminRow[15])
	}
}

package domain_test

import (
	"testing"

	"github.com/rjwedding/rsvp-backend/internal/domain"
)

func TestPartyTotal(t *testing.T) {
	tests := []struct {
		name  string
		group domain.GuestGroup
		want  int
	}{
		{
			name:  "no response yields zero",
			group: domain.GuestGroup{DisplayName: "Sam Smith", PartyAttendance: domain.NoResponse, PartyCount: 2},
			want:  0,
		},
		{
			name:  "declined yields zero even with plus one",
			group: domain.GuestGroup{DisplayName: "Sam Smith", PartyAttendance: domain.Declined, PlusOne: true},
			want:  0,
		},
		{
			name:  "single accepted without plus one",
			group: domain.GuestGroup{DisplayName: "Sam Smith", PartyAttendance: domain.Accepted, PartyCount: 1},
			want:  1,
		},
		{
			name:  "single accepted with plus one",
			group: domain.GuestGroup{DisplayName: "Sam Smith", PartyAttendance: domain.Accepted, PartyCount: 1, PlusOne: true},
			want:  2,
		},
		{
			name:  "single invitee ignores stored count",
			group: domain.GuestGroup{DisplayName: "Sam Smith", PartyAttendance: domain.Accepted, PartyCount: 5},
			want:  1,
		},
		{
			name:  "joint invite reports stored count",
			group: domain.GuestGroup{DisplayName: "Sam & Alex", PartyAttendance: domain.Accepted, PartyCount: 4},
			want:  4,
		},
		{
			name:  "joint invite ignores plus one",
			group: domain.GuestGroup{DisplayName: "Sam & Alex", PartyAttendance: domain.Accepted, PartyCount: 4, PlusOne: true},
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.PartyTotal(); got != tt.want {
				t.Errorf("PartyTotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCeremonyTotal(t *testing.T) {
	g := domain.GuestGroup{
		DisplayName:        "Sam & Alex",
		PartyAttendance:    domain.Declined,
		CeremonyAttendance: domain.Accepted,
		PartyCount:         4,
		CeremonyCount:      2,
	}
	if got := g.CeremonyTotal(); got != 2 {
		t.Errorf("CeremonyTotal() = %d, want 2", got)
	}
	if got := g.PartyTotal(); got != 0 {
		t.Errorf("PartyTotal() = %d, want 0", got)
	}
}

func TestResponded(t *testing.T) {
	tests := []struct {
		name  string
		group domain.GuestGroup
		want  bool
	}{
		{
			name:  "party only group with no answer",
			group: domain.GuestGroup{PartyCount: 2, PartyAttendance: domain.NoResponse, CeremonyAttendance: domain.NoResponse},
			want:  false,
		},
		{
			name:  "party only group that declined",
			group: domain.GuestGroup{PartyCount: 2, PartyAttendance: domain.Declined, CeremonyAttendance: domain.NoResponse},
			want:  true,
		},
		{
			name:  "ceremony invitee answering party counts",
			group: domain.GuestGroup{PartyCount: 2, CeremonyCount: 2, PartyAttendance: domain.Accepted, CeremonyAttendance: domain.NoResponse},
			want:  true,
		},
		{
			name:  "ceremony invitee answering ceremony counts",
			group: domain.GuestGroup{PartyCount: 2, CeremonyCount: 2, PartyAttendance: domain.NoResponse, CeremonyAttendance: domain.Declined},
			want:  true,
		},
		{
			name:  "ceremony invitee with no answers",
			group: domain.GuestGroup{PartyCount: 2, CeremonyCount: 2, PartyAttendance: domain.NoResponse, CeremonyAttendance: domain.NoResponse},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.Responded(); got != tt.want {
				t.Errorf("Responded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalsAreBounded(t *testing.T) {
	groups := []domain.GuestGroup{
		{DisplayName: "A", PartyAttendance: domain.Accepted, PartyCount: 0},
		{DisplayName: "B", PartyAttendance: domain.Accepted, PartyCount: 1, PlusOne: true},
		{DisplayName: "C & D", PartyAttendance: domain.Accepted, PartyCount: 6},
		{DisplayName: "E & F", PartyAttendance: domain.Declined, PartyCount: 6},
	}
	for _, g := range groups {
		total := g.PartyTotal()
		if total < 0 {
			t.Errorf("%s: PartyTotal() = %d, must be non-negative", g.DisplayName, total)
		}
		bound := g.PartyCount
		if bound < 2 {
			bound = 2
		}
		if total > bound {
			t.Errorf("%s: PartyTotal() = %d exceeds bound %d", g.DisplayName, total, bound)
		}
	}
}

func TestParseEvent(t *testing.T) {
	if _, ok := domain.ParseEvent("party"); !ok {
		t.Error("party should parse")
	}
	if _, ok := domain.ParseEvent("ceremony"); !ok {
		t.Error("ceremony should parse")
	}
	if _, ok := domain.ParseEvent("afterparty"); ok {
		t.Error("afterparty should not parse")
	}
	if _, ok := domain.ParseEvent(""); ok {
		t.Error("empty event should not parse")
	}
}

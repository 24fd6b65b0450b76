package domain

import (
	"strings"
	"time"
)

// Tri-state attendance values.
const (
	NoResponse = -1
	Declined   = 0
	Accepted   = 1
)

// JointMarker in a display name means the invitation names more than one
// person ("Rachel & James"), so the group self-reports its headcount.
const JointMarker = "&"

type Event string

const (
	EventParty    Event = "party"
	EventCeremony Event = "ceremony"
)

func ParseEvent(s string) (Event, bool) {
	switch Event(s) {
	case EventParty, EventCeremony:
		return Event(s), true
	default:
		return "", false
	}
}

// GuestGroup is one invitation unit: an individual, couple, or family sharing
// a single invite code. Rows are created only by a bulk guest-list import and
// mutated field-by-field by guest actions.
type GuestGroup struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Code        string `json:"code"`

	PartyCount    int `json:"party_count"`
	CeremonyCount int `json:"ceremony_count"`

	PartyAttendance    int  `json:"party_attendance"`
	CeremonyAttendance int  `json:"ceremony_attendance"`
	PlusOne            bool `json:"plus_one"`

	DietaryRequirements *string `json:"dietary_requirements"`
	SongChoice          *string `json:"song_choice"`
	Address             *string `json:"address"`
	Postcode            *string `json:"postcode"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`

	ParkingRequired bool `json:"parking_required"`
	Admin           bool `json:"admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JointInvite reports whether the group was invited as multiple named people.
func (g *GuestGroup) JointInvite() bool {
	return strings.Contains(g.DisplayName, JointMarker)
}

// PartyTotal is the number of seats the group fills at the party. Zero until
// the group accepts. Single-named invitees count themselves plus an optional
// plus-one; joint invites are trusted to self-report via party_count.
func (g *GuestGroup) PartyTotal() int {
	return g.headcount(g.PartyAttendance, g.PartyCount)
}

// CeremonyTotal is the ceremony headcount, same rule as PartyTotal.
func (g *GuestGroup) CeremonyTotal() int {
	return g.headcount(g.CeremonyAttendance, g.CeremonyCount)
}

func (g *GuestGroup) headcount(attendance, count int) int {
	if attendance < Accepted {
		return 0
	}
	if !g.JointInvite() {
		if g.PlusOne {
			return 2
		}
		return 1
	}
	return count
}

// Responded reports whether the group has answered for the sub-events it is
// invited to. A ceremony-invited group counts once either sub-event is
// answered; a party-only group needs a party answer.
func (g *GuestGroup) Responded() bool {
	if g.CeremonyCount > 0 {
		return g.PartyAttendance != NoResponse || g.CeremonyAttendance != NoResponse
	}
	return g.PartyAttendance != NoResponse
}

// MusicEntry is the reduced shape served by the song list endpoint.
type MusicEntry struct {
	DisplayName string `json:"display_name"`
	SongChoice  string `json:"song_choice"`
}

// AttendanceReport holds the fleet-wide derived totals for the admin
// dashboard. Recomputed by full scan on every request.
type AttendanceReport struct {
	PartyCount     int `json:"party_count"`
	CeremonyCount  int `json:"ceremony_count"`
	RespondedCount int `json:"responded_count"`
	GroupCount     int `json:"group_count"`
}

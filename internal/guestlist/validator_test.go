package guestlist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rjwedding/rsvp-backend/internal/domain"
	"github.com/rjwedding/rsvp-backend/internal/guestlist"
)

const validList = `display_name,party_count,ceremony_count,code
Rachel & James,2,2,RJ01
Sam Smith,1,0,SS02
Admin,0,0,secret
`

func parse(t *testing.T, input string) ([]domain.GuestGroup, error) {
	t.Helper()
	v := guestlist.NewValidator("Admin")
	return v.Parse(strings.NewReader(input))
}

func assertRejected(t *testing.T, input, wantCode string) {
	t.Helper()
	groups, err := parse(t, input)
	if err == nil {
		t.Fatalf("expected rejection %s, got %d groups", wantCode, len(groups))
	}
	var verr *guestlist.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Code != wantCode {
		t.Errorf("rejection code = %s, want %s (message: %s)", verr.Code, wantCode, verr.Message)
	}
}

func TestParseValidList(t *testing.T) {
	groups, err := parse(t, validList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	joint := groups[0]
	if joint.DisplayName != "Rachel & James" || joint.Code != "RJ01" {
		t.Errorf("unexpected first group: %+v", joint)
	}
	if joint.PartyCount != 2 || joint.CeremonyCount != 2 {
		t.Errorf("unexpected counts: %+v", joint)
	}
	if joint.PartyAttendance != domain.NoResponse || joint.CeremonyAttendance != domain.NoResponse {
		t.Errorf("new groups must start unanswered: %+v", joint)
	}
	if joint.Admin {
		t.Error("non-admin row flagged admin")
	}
	if !groups[2].Admin {
		t.Error("Admin row not flagged admin")
	}
}

func TestParseMissingColumn(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count
Admin,0,0
`, guestlist.ErrCodeFormat)
}

func TestParseGarbage(t *testing.T) {
	assertRejected(t, "a,b\nAdmin", guestlist.ErrCodeFormat)
}

func TestParseEmptyFile(t *testing.T) {
	assertRejected(t, "", guestlist.ErrCodeFormat)
}

func TestParseDuplicateNames(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Admin,0,0,a1
Admin,0,0,a2
`, guestlist.ErrCodeDuplicateName)
}

func TestParseDuplicateCodes(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,1,0,same
Admin,0,0,same
`, guestlist.ErrCodeDuplicateCode)
}

func TestParseMissingAdmin(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,1,0,SS02
`, guestlist.ErrCodeMissingAdmin)
}

func TestParseAdminNameIsCaseSensitive(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
admin,0,0,secret
`, guestlist.ErrCodeMissingAdmin)
}

func TestParseNullValues(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,1,,SS02
Admin,0,0,secret
`, guestlist.ErrCodeNullValue)
}

func TestParseNonNumericCount(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,two,0,SS02
Admin,0,0,secret
`, guestlist.ErrCodeFormat)
}

func TestParseNegativeCount(t *testing.T) {
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,-1,0,SS02
Admin,0,0,secret
`, guestlist.ErrCodeFormat)
}

func TestParseStripsWhitespaceFromCodes(t *testing.T) {
	groups, err := parse(t, `display_name,party_count,ceremony_count,code
Sam Smith,1,0,AB 12
Admin,0,0, secret
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups[0].Code != "AB12" {
		t.Errorf("code = %q, want AB12", groups[0].Code)
	}
	if groups[1].Code != "secret" {
		t.Errorf("code = %q, want secret", groups[1].Code)
	}
}

func TestParseRejectsCollisionAfterStripping(t *testing.T) {
	// "AB 12" and "AB12" are distinct raw but identical once normalized.
	assertRejected(t, `display_name,party_count,ceremony_count,code
Sam Smith,1,0,AB 12
Admin,0,0,AB12
`, guestlist.ErrCodeDuplicateCode)
}

func TestParseAllowsExtraColumns(t *testing.T) {
	groups, err := parse(t, `display_name,party_count,ceremony_count,code,notes
Admin,0,0,secret,bring cake
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
}

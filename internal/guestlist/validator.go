package guestlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rjwedding/rsvp-backend/internal/domain"
)

// Rejection codes, one per validation rule.
const (
	ErrCodeFormat        = "invalid-format"
	ErrCodeDuplicateName = "duplicate-name"
	ErrCodeDuplicateCode = "duplicate-code"
	ErrCodeMissingAdmin  = "missing-admin"
	ErrCodeNullValue     = "null-value"
)

// ValidationError is a rejection of an uploaded guest list. The whole table is
// validated before any row is written, so a ValidationError always means the
// existing guest list is untouched.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func reject(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

var requiredColumns = []string{"display_name", "party_count", "ceremony_count", "code"}

// Validator checks and normalizes an uploaded guest list before it replaces
// the stored collection.
type Validator struct {
	// AdminName is the display_name literal that marks the admin row.
	// Case-sensitive; exactly this spelling must appear in every upload.
	AdminName string
}

func NewValidator(adminName string) *Validator {
	return &Validator{AdminName: adminName}
}

// Parse reads a comma-separated guest list with a header row and returns one
// GuestGroup per data row. Checks run in a fixed, documented order against the
// entire table:
//
//  1. required columns present
//  2. no duplicate display_name
//  3. no duplicate code
//  4. an AdminName row present
//  5. no empty cell in any column
//
// then every code has its whitespace stripped and code uniqueness is
// re-checked on the normalized values. The first failed check wins.
func (v *Validator) Parse(r io.Reader) ([]domain.GuestGroup, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, reject(ErrCodeFormat, "invalid guest list file: %v", err)
	}
	if len(records) == 0 {
		return nil, v.formatError()
	}

	header := records[0]
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, v.formatError()
		}
	}

	rows := records[1:]

	names := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		names[row[cols["display_name"]]] = struct{}{}
	}
	if len(names) != len(rows) {
		return nil, reject(ErrCodeDuplicateName, "invalid guest list: cannot contain duplicate names")
	}

	codes := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		codes[row[cols["code"]]] = struct{}{}
	}
	if len(codes) != len(rows) {
		return nil, reject(ErrCodeDuplicateCode, "invalid guest list: cannot contain duplicate codes")
	}

	if _, ok := names[v.AdminName]; !ok {
		return nil, reject(ErrCodeMissingAdmin, "invalid guest list: must contain an %q row", v.AdminName)
	}

	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				return nil, reject(ErrCodeNullValue, "invalid guest list: cannot contain null values")
			}
		}
	}

	// Codes are login tokens: interior spaces ("AB 12") are a data-entry
	// artifact, not part of the code. Stripping can collide two codes that
	// were distinct raw, so uniqueness is finalized on the normalized form.
	normalized := make(map[string]struct{}, len(rows))
	groups := make([]domain.GuestGroup, 0, len(rows))
	for _, row := range rows {
		code := stripWhitespace(row[cols["code"]])
		if _, dup := normalized[code]; dup {
			return nil, reject(ErrCodeDuplicateCode, "invalid guest list: cannot contain duplicate codes")
		}
		normalized[code] = struct{}{}

		name := row[cols["display_name"]]
		partyCount, err := parseCount(row[cols["party_count"]])
		if err != nil {
			return nil, reject(ErrCodeFormat, "invalid guest list: bad party_count for %q: %v", name, err)
		}
		ceremonyCount, err := parseCount(row[cols["ceremony_count"]])
		if err != nil {
			return nil, reject(ErrCodeFormat, "invalid guest list: bad ceremony_count for %q: %v", name, err)
		}

		groups = append(groups, domain.GuestGroup{
			DisplayName:        name,
			Code:               code,
			PartyCount:         partyCount,
			CeremonyCount:      ceremonyCount,
			PartyAttendance:    domain.NoResponse,
			CeremonyAttendance: domain.NoResponse,
			Admin:              name == v.AdminName,
		})
	}

	return groups, nil
}

func (v *Validator) formatError() *ValidationError {
	return reject(ErrCodeFormat,
		"invalid guest list format: must contain the columns: %s", strings.Join(requiredColumns, ", "))
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

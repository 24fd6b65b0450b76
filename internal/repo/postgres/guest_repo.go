package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rjwedding/rsvp-backend/internal/domain"
)

type GuestRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.GuestGroup, error)
	List(ctx context.Context) ([]domain.GuestGroup, error)
	SetAttendance(ctx context.Context, code string, event domain.Event, status int) (*domain.GuestGroup, error)
	SetPlusOne(ctx context.Context, code string, granted bool) (*domain.GuestGroup, error)
	SetSongChoice(ctx context.Context, code, songChoice string) (*domain.GuestGroup, error)
	SetDietaryRequirements(ctx context.Context, code, requirements string) (*domain.GuestGroup, error)
	SetParkingRequired(ctx context.Context, code string, required bool) (*domain.GuestGroup, error)
	SetContactDetails(ctx context.Context, code string, in domain.ContactDetailsRequest) (*domain.GuestGroup, error)
	ReplaceAll(ctx context.Context, groups []domain.GuestGroup) ([]int64, error)
}

type GuestRepoImpl struct{ pool *pgxpool.Pool }

func NewGuestRepo(pool *pgxpool.Pool) *GuestRepoImpl { return &GuestRepoImpl{pool: pool} }

const guestCols = `id, display_name, code,
party_count, ceremony_count,
party_attendance, ceremony_attendance, plus_one,
dietary_requirements, song_choice,
address, postcode, email, phone,
parking_required, admin, created_at, updated_at`

func scanGroup(row pgx.Row) (*domain.GuestGroup, error) {
	var g domain.GuestGroup
	err := row.Scan(
		&g.ID, &g.DisplayName, &g.Code,
		&g.PartyCount, &g.CeremonyCount,
		&g.PartyAttendance, &g.CeremonyAttendance, &g.PlusOne,
		&g.DietaryRequirements, &g.SongChoice,
		&g.Address, &g.Postcode, &g.Email, &g.Phone,
		&g.ParkingRequired, &g.Admin, &g.CreatedAt, &g.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepoImpl) GetByCode(ctx context.Context, code string) (*domain.GuestGroup, error) {
	const q = `SELECT ` + guestCols + ` FROM guest_groups WHERE code=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return scanGroup(r.pool.QueryRow(ctx, q, code))
}

func (r *GuestRepoImpl) List(ctx context.Context) ([]domain.GuestGroup, error) {
	const q = `SELECT ` + guestCols + ` FROM guest_groups ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gs []domain.GuestGroup
	for rows.Next() {
		var g domain.GuestGroup
		if err := rows.Scan(
			&g.ID, &g.DisplayName, &g.Code,
			&g.PartyCount, &g.CeremonyCount,
			&g.PartyAttendance, &g.CeremonyAttendance, &g.PlusOne,
			&g.DietaryRequirements, &g.SongChoice,
			&g.Address, &g.Postcode, &g.Email, &g.Phone,
			&g.ParkingRequired, &g.Admin, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		gs = append(gs, g)
	}
	return gs, rows.Err()
}

func (r *GuestRepoImpl) setField(ctx context.Context, code, column string, value any) (*domain.GuestGroup, error) {
	q := fmt.Sprintf(`UPDATE guest_groups SET %s=$2, updated_at=now() WHERE code=$1 RETURNING `+guestCols, column)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return scanGroup(r.pool.QueryRow(ctx, q, code, value))
}

func (r *GuestRepoImpl) SetAttendance(ctx context.Context, code string, event domain.Event, status int) (*domain.GuestGroup, error) {
	column := "party_attendance"
	if event == domain.EventCeremony {
		column = "ceremony_attendance"
	}
	return r.setField(ctx, code, column, status)
}

func (r *GuestRepoImpl) SetPlusOne(ctx context.Context, code string, granted bool) (*domain.GuestGroup, error) {
	return r.setField(ctx, code, "plus_one", granted)
}

func (r *GuestRepoImpl) SetSongChoice(ctx context.Context, code, songChoice string) (*domain.GuestGroup, error) {
	return r.setField(ctx, code, "song_choice", songChoice)
}

func (r *GuestRepoImpl) SetDietaryRequirements(ctx context.Context, code, requirements string) (*domain.GuestGroup, error) {
	return r.setField(ctx, code, "dietary_requirements", requirements)
}

func (r *GuestRepoImpl) SetParkingRequired(ctx context.Context, code string, required bool) (*domain.GuestGroup, error) {
	return r.setField(ctx, code, "parking_required", required)
}

func (r *GuestRepoImpl) SetContactDetails(ctx context.Context, code string, in domain.ContactDetailsRequest) (*domain.GuestGroup, error) {
	const q = `UPDATE guest_groups SET
		address=COALESCE($2, address),
		postcode=COALESCE($3, postcode),
		email=COALESCE($4, email),
		phone=COALESCE($5, phone),
		updated_at=now()
	WHERE code=$1 RETURNING ` + guestCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return scanGroup(r.pool.QueryRow(ctx, q, code, in.Address, in.Postcode, in.Email, in.Phone))
}

// ReplaceAll swaps the entire guest list for the given rows inside one
// transaction, so concurrent readers see either the old list or the new one,
// never a half-populated window. Returns the new row IDs in input order.
func (r *GuestRepoImpl) ReplaceAll(ctx context.Context, groups []domain.GuestGroup) ([]int64, error) {
	const insert = `INSERT INTO guest_groups (
		display_name, code,
		party_count, ceremony_count,
		party_attendance, ceremony_attendance, plus_one,
		dietary_requirements, song_choice,
		address, postcode, email, phone,
		parking_required, admin
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	RETURNING id`

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM guest_groups`); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		var id int64
		err := tx.QueryRow(ctx, insert,
			g.DisplayName, g.Code,
			g.PartyCount, g.CeremonyCount,
			g.PartyAttendance, g.CeremonyAttendance, g.PlusOne,
			g.DietaryRequirements, g.SongChoice,
			g.Address, g.Postcode, g.Email, g.Phone,
			g.ParkingRequired, g.Admin,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

var _ GuestRepo = (*GuestRepoImpl)(nil)

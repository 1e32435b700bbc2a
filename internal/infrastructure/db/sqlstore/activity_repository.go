package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityRow struct {
	ID       int64          `db:"id"`
	UserID   int64          `db:"user_id"`
	Category string         `db:"category"`
	Action   string         `db:"action"`
	Value    float64        `db:"value"`
	Unit     string         `db:"unit"`
	Notes    sql.NullString `db:"notes"`
	Date     time.Time      `db:"date"`
}

func (r activityRow) toDomain() *domain.Activity {
	a := &domain.Activity{
		ID:       r.ID,
		UserID:   r.UserID,
		Category: r.Category,
		Action:   r.Action,
		Value:    r.Value,
		Unit:     r.Unit,
		Date:     r.Date.UTC(),
	}
	if r.Notes.Valid {
		notes := r.Notes.String
		a.Notes = &notes
	}
	return a
}

const (
	activityColumns = `id, user_id, category, action, value, unit, notes, date`
	newestFirst     = ` ORDER BY date DESC, id DESC`
)

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	date := a.Date.UTC()
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO activities (user_id, category, action, value, unit, notes, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		a.UserID, a.Category, a.Action, a.Value, a.Unit, a.Notes, date,
	)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	created := *a
	created.ID = id
	created.Date = date
	return &created, nil
}

func (r *ActivityRepository) List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Activity, error) {
	return r.selectOwned(ctx, `SELECT `+activityColumns+` FROM activities WHERE user_id = ?`+newestFirst+` LIMIT ? OFFSET ?`,
		ownerID, limit, skip)
}

func (r *ActivityRepository) ListAll(ctx context.Context, ownerID int64) ([]*domain.Activity, error) {
	return r.selectOwned(ctx, `SELECT `+activityColumns+` FROM activities WHERE user_id = ?`+newestFirst, ownerID)
}

func (r *ActivityRepository) selectOwned(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]*domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, ownerID, id int64) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row activityRow
	query := r.db.Rebind(`SELECT ` + activityColumns + ` FROM activities WHERE id = ? AND user_id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, ownerID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM activities WHERE id = ? AND user_id = ?`), id, ownerID)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if n == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

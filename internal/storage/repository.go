package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/renanmoretto/dias-uteis/internal/domain/models"
)

// ErrDuplicateHoliday is returned when a custom holiday already exists for
// the same month/day.
var ErrDuplicateHoliday = errors.New("custom holiday already exists for this date")

// HolidaysRepository defines the contract for persisting user-defined extra
// holidays. The national calendar is pure computation and never touches the
// database; only custom entries live here.
type HolidaysRepository interface {
	ListCustomHolidays() ([]models.CustomHoliday, error)
	InsertCustomHoliday(name string, month, day int) (models.CustomHoliday, error)
	DeleteCustomHoliday(id int64) (bool, error)
}

type holidaysRepository struct {
	db *sql.DB
}

func NewHolidaysRepository(db *sql.DB) HolidaysRepository {
	return &holidaysRepository{db: db}
}

// ListCustomHolidays returns every custom holiday ordered by calendar
// position (month, then day).
func (r *holidaysRepository) ListCustomHolidays() ([]models.CustomHoliday, error) {
	rows, err := r.db.Query(`
		SELECT id, name, month, day
		FROM custom_holidays
		ORDER BY month, day
	`)
	if err != nil {
		return nil, fmt.Errorf("list custom holidays: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.CustomHoliday, 0)
	for rows.Next() {
		var h models.CustomHoliday
		if err := rows.Scan(&h.ID, &h.Name, &h.Month, &h.Day); err != nil {
			return nil, fmt.Errorf("scan custom holiday: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom holidays: %w", err)
	}
	return out, nil
}

// InsertCustomHoliday stores a new custom holiday and returns it with its
// assigned id. A month/day collision maps to ErrDuplicateHoliday.
func (r *holidaysRepository) InsertCustomHoliday(name string, month, day int) (models.CustomHoliday, error) {
	h := models.CustomHoliday{Name: name, Month: month, Day: day}

	err := r.db.QueryRow(`
		INSERT INTO custom_holidays (name, month, day)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, month, day).Scan(&h.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.CustomHoliday{}, ErrDuplicateHoliday
		}
		return models.CustomHoliday{}, fmt.Errorf("insert custom holiday: %w", err)
	}
	return h, nil
}

// DeleteCustomHoliday removes a custom holiday by id, reporting whether a
// row was actually deleted.
func (r *holidaysRepository) DeleteCustomHoliday(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM custom_holidays WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete custom holiday: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete custom holiday: rows affected: %w", err)
	}
	return n > 0, nil
}

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/models"
)

// Journal implements the data half of Provider over any sqlx database.
// Queries use ? placeholders and are rebound for the driver, so the
// SQLite and PostgreSQL stores share it and only own their lifecycle.
type Journal struct {
	DB *sqlx.DB
}

func (j *Journal) db() (*sqlx.DB, error) {
	if j.DB == nil {
		return nil, ErrNotInitialized
	}
	return j.DB, nil
}

func pageSize(limit int) int {
	if limit <= 0 {
		return constants.DefaultHistoryLimit
	}
	return limit
}

// stamp normalises timestamps so text-backed columns sort correctly.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (j *Journal) GetSettings() (models.Settings, error) {
	db, err := j.db()
	if err != nil {
		return models.Settings{}, err
	}
	var rows []settingRow
	if err := db.Select(&rows, `SELECT key, value FROM settings`); err != nil {
		return models.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return decodeSettings(rows)
}

func (j *Journal) SaveSettings(s models.Settings) error {
	db, err := j.db()
	if err != nil {
		return err
	}
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
	for _, row := range encodeSettings(s) {
		if _, err := tx.Exec(query, row.Key, row.Value); err != nil {
			return fmt.Errorf("saving setting %s: %w", row.Key, err)
		}
	}
	return tx.Commit()
}

// EnsureSettings writes the defaults when no settings are stored yet.
func (j *Journal) EnsureSettings() error {
	db, err := j.db()
	if err != nil {
		return err
	}
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM settings`); err != nil {
		return fmt.Errorf("counting settings: %w", err)
	}
	if count > 0 {
		return nil
	}
	return j.SaveSettings(DefaultSettings())
}

func (j *Journal) AddSession(r models.SessionRecord) error {
	db, err := j.db()
	if err != nil {
		return err
	}
	r.StartedAt, r.EndedAt = stamp(r.StartedAt), stamp(r.EndedAt)
	_, err = db.NamedExec(`INSERT INTO sessions
		(id, started_at, ended_at, planned_sec, elapsed_sec, blocks, completed)
		VALUES (:id, :started_at, :ended_at, :planned_sec, :elapsed_sec, :blocks, :completed)`, r)
	if err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	return nil
}

func (j *Journal) GetSessions(limit int) ([]models.SessionRecord, error) {
	db, err := j.db()
	if err != nil {
		return nil, err
	}
	var out []models.SessionRecord
	err = db.Select(&out, db.Rebind(`SELECT id, started_at, ended_at, planned_sec, elapsed_sec, blocks, completed
		FROM sessions ORDER BY started_at DESC, id DESC LIMIT ?`), pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return out, nil
}

func (j *Journal) AddMoodCheckIn(r models.MoodRecord) error {
	db, err := j.db()
	if err != nil {
		return err
	}
	r.RecordedAt = stamp(r.RecordedAt)
	_, err = db.NamedExec(`INSERT INTO mood_checkins (id, value, label, recorded_at)
		VALUES (:id, :value, :label, :recorded_at)`, r)
	if err != nil {
		return fmt.Errorf("recording mood check-in: %w", err)
	}
	return nil
}

func (j *Journal) GetMoodCheckIns(limit int) ([]models.MoodRecord, error) {
	db, err := j.db()
	if err != nil {
		return nil, err
	}
	var out []models.MoodRecord
	err = db.Select(&out, db.Rebind(`SELECT id, value, label, recorded_at
		FROM mood_checkins ORDER BY recorded_at DESC, id DESC LIMIT ?`), pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("listing mood check-ins: %w", err)
	}
	return out, nil
}

type wheelRow struct {
	ID        string    `db:"id"`
	Ratings   []byte    `db:"ratings"`
	Mean      float64   `db:"mean"`
	StdDev    float64   `db:"std_dev"`
	Balance   string    `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

func (r wheelRow) snapshot() (models.WheelSnapshot, error) {
	s := models.WheelSnapshot{
		ID:        r.ID,
		Mean:      r.Mean,
		StdDev:    r.StdDev,
		Balance:   models.BalanceStatus(r.Balance),
		CreatedAt: r.CreatedAt,
	}
	if err := json.Unmarshal(r.Ratings, &s.Ratings); err != nil {
		return models.WheelSnapshot{}, fmt.Errorf("decoding wheel snapshot %s: %w", r.ID, err)
	}
	return s, nil
}

func (j *Journal) AddWheelSnapshot(s models.WheelSnapshot) error {
	db, err := j.db()
	if err != nil {
		return err
	}
	ratings, err := json.Marshal(s.Ratings)
	if err != nil {
		return err
	}
	_, err = db.Exec(db.Rebind(`INSERT INTO wheel_snapshots (id, ratings, mean, std_dev, balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		s.ID, string(ratings), s.Mean, s.StdDev, string(s.Balance), stamp(s.CreatedAt))
	if err != nil {
		return fmt.Errorf("recording wheel snapshot: %w", err)
	}
	return nil
}

func (j *Journal) GetWheelSnapshots(limit int) ([]models.WheelSnapshot, error) {
	db, err := j.db()
	if err != nil {
		return nil, err
	}
	var rows []wheelRow
	err = db.Select(&rows, db.Rebind(`SELECT id, ratings, mean, std_dev, balance, created_at
		FROM wheel_snapshots ORDER BY created_at DESC, id DESC LIMIT ?`), pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("listing wheel snapshots: %w", err)
	}
	out := make([]models.WheelSnapshot, 0, len(rows))
	for _, r := range rows {
		s, err := r.snapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (j *Journal) GetLatestWheelSnapshot() (models.WheelSnapshot, error) {
	db, err := j.db()
	if err != nil {
		return models.WheelSnapshot{}, err
	}
	var row wheelRow
	err = db.Get(&row, `SELECT id, ratings, mean, std_dev, balance, created_at
		FROM wheel_snapshots ORDER BY created_at DESC, id DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WheelSnapshot{}, ErrNotFound
	}
	if err != nil {
		return models.WheelSnapshot{}, fmt.Errorf("loading latest wheel snapshot: %w", err)
	}
	return row.snapshot()
}

func (j *Journal) AddTaskEvent(e models.TaskEvent) error {
	db, err := j.db()
	if err != nil {
		return err
	}
	e.CreatedAt = stamp(e.CreatedAt)
	_, err = db.NamedExec(`INSERT INTO task_events (id, area_id, task_text, completed, points, created_at)
		VALUES (:id, :area_id, :task_text, :completed, :points, :created_at)`, e)
	if err != nil {
		return fmt.Errorf("recording task event: %w", err)
	}
	return nil
}

func (j *Journal) CountTaskEvents(day time.Time) (int, error) {
	db, err := j.db()
	if err != nil {
		return 0, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var n int
	err = db.Get(&n, db.Rebind(`SELECT COUNT(*) FROM task_events
		WHERE completed = ? AND created_at >= ? AND created_at < ?`), true, stamp(start), stamp(end))
	if err != nil {
		return 0, fmt.Errorf("counting task events: %w", err)
	}
	return n, nil
}

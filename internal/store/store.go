// Package store persists profiles and their attendance snapshots in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrLastProfile is returned when deleting the only remaining profile.
var ErrLastProfile = errors.New("cannot delete the last profile")

// Store provides SQLite-backed persistence for profile snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Profiles returns every profile, oldest first.
func (s *Store) Profiles() ([]model.Profile, error) {
	rows, err := s.db.Query("SELECT profile_id, name, avatar_url, created_at FROM profiles ORDER BY created_at, profile_id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		var avatar sql.NullString
		var created string
		if err := rows.Scan(&p.ID, &p.Name, &avatar, &created); err != nil {
			return nil, err
		}
		if avatar.Valid {
			p.AvatarURL = avatar.String
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ActiveProfile returns the active profile, creating a default one on
// first run so every command has a profile to work with.
func (s *Store) ActiveProfile() (model.Profile, error) {
	var p model.Profile
	var avatar sql.NullString
	var created string
	err := s.db.QueryRow("SELECT profile_id, name, avatar_url, created_at FROM profiles WHERE is_active = 1").
		Scan(&p.ID, &p.Name, &avatar, &created)
	if err == nil {
		if avatar.Valid {
			p.AvatarURL = avatar.String
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, err
	}

	// No active profile: promote the oldest, or seed the default one.
	profiles, err := s.Profiles()
	if err != nil {
		return model.Profile{}, err
	}
	if len(profiles) > 0 {
		if err := s.SwitchProfile(profiles[0].ID); err != nil {
			return model.Profile{}, err
		}
		return profiles[0], nil
	}

	created0, err := s.CreateProfile("Profile 1", "")
	if err != nil {
		return model.Profile{}, err
	}
	if err := s.SaveSnapshot(created0.ID, model.Snapshot{Timetable: model.DefaultTimetable()}); err != nil {
		return model.Profile{}, err
	}
	return created0, nil
}

// CreateProfile adds a profile and makes it active.
func (s *Store) CreateProfile(name, avatarURL string) (model.Profile, error) {
	p := model.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		AvatarURL: avatarURL,
		CreatedAt: time.Now(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return model.Profile{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("UPDATE profiles SET is_active = 0"); err != nil {
		return model.Profile{}, err
	}
	_, err = tx.Exec("INSERT INTO profiles (profile_id, name, avatar_url, created_at, is_active) VALUES (?, ?, ?, ?, 1)",
		p.ID, p.Name, p.AvatarURL, p.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return model.Profile{}, err
	}
	return p, tx.Commit()
}

// SwitchProfile makes the given profile active.
func (s *Store) SwitchProfile(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("UPDATE profiles SET is_active = (profile_id = ?)", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no profile %s", id)
	}
	var active int
	if err := tx.QueryRow("SELECT COUNT(*) FROM profiles WHERE is_active = 1").Scan(&active); err != nil {
		return err
	}
	if active == 0 {
		return fmt.Errorf("no profile %s", id)
	}
	return tx.Commit()
}

// RenameProfile updates a profile's display name.
func (s *Store) RenameProfile(id, name string) error {
	res, err := s.db.Exec("UPDATE profiles SET name = ? WHERE profile_id = ?", name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no profile %s", id)
	}
	return nil
}

// DeleteProfile removes a profile and its data. The last profile cannot
// be deleted; deleting the active one activates the oldest survivor.
func (s *Store) DeleteProfile(id string) error {
	profiles, err := s.Profiles()
	if err != nil {
		return err
	}
	if len(profiles) <= 1 {
		return ErrLastProfile
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("DELETE FROM profiles WHERE profile_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no profile %s", id)
	}

	var active int
	if err := tx.QueryRow("SELECT COUNT(*) FROM profiles WHERE is_active = 1").Scan(&active); err != nil {
		return err
	}
	if active == 0 {
		for _, p := range profiles {
			if p.ID != id {
				if _, err := tx.Exec("UPDATE profiles SET is_active = 1 WHERE profile_id = ?", p.ID); err != nil {
					return err
				}
				break
			}
		}
	}
	return tx.Commit()
}

// SaveSnapshot stores a profile's complete snapshot, replacing whatever
// was there. One transaction: a reader never observes a half-written day.
func (s *Store) SaveSnapshot(profileID string, snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"subjects", "timetable_slots", "attendance_records", "academic_settings", "special_days"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile_id = ?", profileID); err != nil {
			return err
		}
	}

	for _, sub := range snap.Subjects {
		var criteria any
		if sub.Criteria != nil {
			criteria = *sub.Criteria
		}
		_, err = tx.Exec(`INSERT INTO subjects (profile_id, subject_id, name, color, created_at, criteria)
			VALUES (?, ?, ?, ?, ?, ?)`,
			profileID, sub.ID, sub.Name, sub.Color, sub.CreatedAt.UTC().Format(time.RFC3339), criteria)
		if err != nil {
			return err
		}
	}

	for _, day := range snap.Timetable.Schedule {
		for pos, slot := range day.TimeSlots {
			_, err = tx.Exec(`INSERT INTO timetable_slots (profile_id, day, position, slot_id, start_time, end_time, subject_id)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				profileID, int(day.Day), pos, slot.ID, slot.StartTime, slot.EndTime, slot.SubjectID)
			if err != nil {
				return err
			}
		}
	}

	for _, r := range snap.AttendanceRecords {
		_, err = tx.Exec(`INSERT OR REPLACE INTO attendance_records (profile_id, date, slot_id, day, subject_id, status)
			VALUES (?, ?, ?, ?, ?, ?)`,
			profileID, r.Date, r.TimeSlotID, int(r.Day), r.SubjectID, string(r.Status))
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT INTO academic_settings (profile_id, semester_start, semester_end) VALUES (?, ?, ?)`,
		profileID, snap.Settings.SemesterStart, snap.Settings.SemesterEnd)
	if err != nil {
		return err
	}
	for _, h := range snap.Settings.Holidays {
		if _, err := tx.Exec("INSERT OR IGNORE INTO special_days (profile_id, date, kind) VALUES (?, ?, 'holiday')", profileID, h); err != nil {
			return err
		}
	}
	for _, e := range snap.Settings.ExamDays {
		if _, err := tx.Exec("INSERT OR IGNORE INTO special_days (profile_id, date, kind) VALUES (?, ?, 'exam')", profileID, e); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads a profile's complete snapshot.
func (s *Store) LoadSnapshot(profileID string) (model.Snapshot, error) {
	var snap model.Snapshot

	subRows, err := s.db.Query(`SELECT subject_id, name, color, created_at, criteria
		FROM subjects WHERE profile_id = ? ORDER BY created_at, subject_id`, profileID)
	if err != nil {
		return snap, err
	}
	defer func() { _ = subRows.Close() }()
	for subRows.Next() {
		var sub model.Subject
		var color sql.NullString
		var created string
		var criteria sql.NullFloat64
		if err := subRows.Scan(&sub.ID, &sub.Name, &color, &created, &criteria); err != nil {
			return snap, err
		}
		if color.Valid {
			sub.Color = color.String
		}
		sub.CreatedAt, _ = time.Parse(time.RFC3339, created)
		if criteria.Valid {
			v := criteria.Float64
			sub.Criteria = &v
		}
		snap.Subjects = append(snap.Subjects, sub)
	}
	if err := subRows.Err(); err != nil {
		return snap, err
	}

	slotRows, err := s.db.Query(`SELECT day, slot_id, start_time, end_time, subject_id
		FROM timetable_slots WHERE profile_id = ? ORDER BY day, position`, profileID)
	if err != nil {
		return snap, err
	}
	defer func() { _ = slotRows.Close() }()
	byDay := make(map[model.Weekday][]model.TimeSlot)
	for slotRows.Next() {
		var day int
		var slot model.TimeSlot
		var start, end, subject sql.NullString
		if err := slotRows.Scan(&day, &slot.ID, &start, &end, &subject); err != nil {
			return snap, err
		}
		slot.StartTime = start.String
		slot.EndTime = end.String
		slot.SubjectID = subject.String
		byDay[model.Weekday(day)] = append(byDay[model.Weekday(day)], slot)
	}
	if err := slotRows.Err(); err != nil {
		return snap, err
	}
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, int(day))
	}
	sort.Ints(days)
	for _, day := range days {
		snap.Timetable.Schedule = append(snap.Timetable.Schedule, model.DaySchedule{
			Day:       model.Weekday(day),
			TimeSlots: byDay[model.Weekday(day)],
		})
	}

	recRows, err := s.db.Query(`SELECT date, slot_id, day, subject_id, status
		FROM attendance_records WHERE profile_id = ? ORDER BY date, slot_id`, profileID)
	if err != nil {
		return snap, err
	}
	defer func() { _ = recRows.Close() }()
	for recRows.Next() {
		var r model.AttendanceRecord
		var day int
		var subject sql.NullString
		var status string
		if err := recRows.Scan(&r.Date, &r.TimeSlotID, &day, &subject, &status); err != nil {
			return snap, err
		}
		r.Day = model.Weekday(day)
		r.SubjectID = subject.String
		r.Status = model.Status(status)
		snap.AttendanceRecords = append(snap.AttendanceRecords, r)
	}
	if err := recRows.Err(); err != nil {
		return snap, err
	}

	var start, end sql.NullString
	err = s.db.QueryRow("SELECT semester_start, semester_end FROM academic_settings WHERE profile_id = ?", profileID).
		Scan(&start, &end)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return snap, err
	}
	if start.Valid {
		snap.Settings.SemesterStart = start.String
	}
	if end.Valid {
		snap.Settings.SemesterEnd = end.String
	}

	dayRows, err := s.db.Query("SELECT date, kind FROM special_days WHERE profile_id = ? ORDER BY date", profileID)
	if err != nil {
		return snap, err
	}
	defer func() { _ = dayRows.Close() }()
	for dayRows.Next() {
		var date, kind string
		if err := dayRows.Scan(&date, &kind); err != nil {
			return snap, err
		}
		switch kind {
		case "holiday":
			snap.Settings.Holidays = append(snap.Settings.Holidays, date)
		case "exam":
			snap.Settings.ExamDays = append(snap.Settings.ExamDays, date)
		}
	}
	return snap, dayRows.Err()
}

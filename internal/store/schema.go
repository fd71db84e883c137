package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
    profile_id           TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    avatar_url           TEXT,
    created_at           TEXT NOT NULL,
    is_active            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS subjects (
    profile_id           TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    subject_id           TEXT NOT NULL,
    name                 TEXT NOT NULL,
    color                TEXT,
    created_at           TEXT NOT NULL,
    criteria             REAL,
    PRIMARY KEY (profile_id, subject_id)
);

CREATE TABLE IF NOT EXISTS timetable_slots (
    profile_id           TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    day                  INTEGER NOT NULL,
    position             INTEGER NOT NULL,
    slot_id              TEXT NOT NULL,
    start_time           TEXT,
    end_time             TEXT,
    subject_id           TEXT,
    PRIMARY KEY (profile_id, day, slot_id)
);

CREATE TABLE IF NOT EXISTS attendance_records (
    profile_id           TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    date                 TEXT NOT NULL,
    slot_id              TEXT NOT NULL,
    day                  INTEGER NOT NULL,
    subject_id           TEXT,
    status               TEXT NOT NULL,
    PRIMARY KEY (profile_id, date, slot_id)
);

CREATE TABLE IF NOT EXISTS academic_settings (
    profile_id           TEXT PRIMARY KEY REFERENCES profiles(profile_id) ON DELETE CASCADE,
    semester_start       TEXT,
    semester_end         TEXT
);

CREATE TABLE IF NOT EXISTS special_days (
    profile_id           TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    date                 TEXT NOT NULL,
    kind                 TEXT NOT NULL,
    PRIMARY KEY (profile_id, date, kind)
);

CREATE INDEX IF NOT EXISTS idx_records_date ON attendance_records(profile_id, date);
CREATE INDEX IF NOT EXISTS idx_special_kind ON special_days(profile_id, kind);
`

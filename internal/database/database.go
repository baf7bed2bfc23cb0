package database

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared database
func DBPath() string {
	return filepath.Join("data", "surfcast.db")
}

// Open opens the database at dbPath with the pragmas the app relies on.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")
	_, _ = db.Exec("PRAGMA foreign_keys=ON")
	return db, nil
}

// EnsureSchema ensures the spot, forecast, tide and preference tables exist.
// Safe to call repeatedly; existing data is never dropped.
func EnsureSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS spots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			timezone TEXT NOT NULL DEFAULT 'UTC',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_spots_name ON spots(name);

		CREATE TABLE IF NOT EXISTS forecasts (
			spot_id INTEGER NOT NULL REFERENCES spots(id),
			timestamp_utc DATETIME NOT NULL,
			wave_height REAL,
			wave_direction REAL,
			wave_period REAL,
			swell_height REAL,
			swell_direction REAL,
			swell_period REAL,
			secondary_swell_height REAL,
			secondary_swell_direction REAL,
			secondary_swell_period REAL,
			wind_speed REAL,
			wind_direction REAL,
			water_temperature REAL,
			air_temperature REAL,
			current_speed REAL,
			current_direction REAL,
			sea_level REAL,
			collected_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (spot_id, timestamp_utc)
		);

		CREATE TABLE IF NOT EXISTS tide_extremes (
			spot_id INTEGER NOT NULL REFERENCES spots(id),
			timestamp_utc DATETIME NOT NULL,
			tide_type TEXT NOT NULL CHECK (tide_type IN ('low','high')),
			height REAL NOT NULL,
			PRIMARY KEY (spot_id, timestamp_utc)
		);

		CREATE TABLE IF NOT EXISTS spot_preferences (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			spot_id INTEGER NOT NULL REFERENCES spots(id),
			user_id INTEGER,
			surf_level TEXT NOT NULL DEFAULT 'intermediate',
			min_wave_height REAL, ideal_wave_height REAL, max_wave_height REAL,
			min_wave_period REAL, ideal_wave_period REAL, max_wave_period REAL,
			min_swell_height REAL, ideal_swell_height REAL, max_swell_height REAL,
			min_swell_period REAL, ideal_swell_period REAL, max_swell_period REAL,
			ideal_secondary_swell_height REAL,
			ideal_secondary_swell_period REAL,
			min_wind_speed REAL, ideal_wind_speed REAL, max_wind_speed REAL,
			min_sea_level REAL, ideal_sea_level REAL, max_sea_level REAL,
			ideal_water_temperature REAL,
			ideal_air_temperature REAL,
			ideal_current_speed REAL,
			preferred_wave_directions TEXT,
			preferred_swell_directions TEXT,
			preferred_secondary_swell_directions TEXT,
			preferred_wind_directions TEXT,
			preferred_current_directions TEXT,
			preferred_tide_phases TEXT
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_spot_prefs_scope
			ON spot_preferences(spot_id, surf_level, COALESCE(user_id, -1));
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// Package spots persists registered surf breaks and their per-surfer or
// per-level preference profiles.
package spots

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmotta/surfcast/internal/compass"
	"github.com/jmotta/surfcast/internal/database"
	"github.com/jmotta/surfcast/internal/models"
	_ "modernc.org/sqlite"
)

// Repository handles persistence for spots and preferences
type Repository struct {
	dbPath string
}

// NewRepository creates a repository against the shared database.
func NewRepository() *Repository {
	return &Repository{dbPath: database.DBPath()}
}

// NewRepositoryAt creates a repository against a specific database file.
// Used by tests and one-off tooling.
func NewRepositoryAt(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

func (r *Repository) open() (*sql.DB, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}
	return database.Open(r.dbPath)
}

// SaveSpot inserts or updates a spot by name and fills in its ID.
func (r *Repository) SaveSpot(spot *models.Spot) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if spot.CreatedAt.IsZero() {
		spot.CreatedAt = time.Now().UTC()
	}

	_, err = db.Exec(`
		INSERT INTO spots (name, latitude, longitude, timezone, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			timezone = excluded.timezone
	`, spot.Name, spot.Latitude, spot.Longitude, spot.Timezone, spot.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving spot: %w", err)
	}

	if err := db.QueryRow("SELECT id FROM spots WHERE name = ?", spot.Name).Scan(&spot.ID); err != nil {
		return fmt.Errorf("reading spot id: %w", err)
	}
	return nil
}

// ListSpots retrieves all registered spots ordered by name.
func (r *Repository) ListSpots() ([]models.Spot, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, latitude, longitude, timezone, created_at FROM spots ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying spots: %w", err)
	}
	defer rows.Close()

	var out []models.Spot
	for rows.Next() {
		var s models.Spot
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.Timezone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning spot: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSpot retrieves a single spot by ID.
func (r *Repository) GetSpot(id int64) (*models.Spot, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var s models.Spot
	err = db.QueryRow("SELECT id, name, latitude, longitude, timezone, created_at FROM spots WHERE id = ?", id).
		Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.Timezone, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying spot %d: %w", id, err)
	}
	return &s, nil
}

// DeleteSpot removes a spot by name.
func (r *Repository) DeleteSpot(name string) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM spots WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting spot: %w", err)
	}
	return nil
}

const preferenceColumns = `
	min_wave_height, ideal_wave_height, max_wave_height,
	min_wave_period, ideal_wave_period, max_wave_period,
	min_swell_height, ideal_swell_height, max_swell_height,
	min_swell_period, ideal_swell_period, max_swell_period,
	ideal_secondary_swell_height, ideal_secondary_swell_period,
	min_wind_speed, ideal_wind_speed, max_wind_speed,
	min_sea_level, ideal_sea_level, max_sea_level,
	ideal_water_temperature, ideal_air_temperature, ideal_current_speed,
	preferred_wave_directions, preferred_swell_directions,
	preferred_secondary_swell_directions, preferred_wind_directions,
	preferred_current_directions, preferred_tide_phases`

// SavePreference inserts or replaces the preference row for its scope:
// (spot, user) when UserID is set, (spot, surf level) otherwise.
func (r *Repository) SavePreference(pref models.SpotPreference) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	level := pref.SurfLevel
	if level == "" {
		level = models.LevelIntermediate
	}

	_, err = db.Exec(`
		INSERT INTO spot_preferences (spot_id, user_id, surf_level,`+preferenceColumns+`)
		VALUES (?, ?, ?, ?,?,?, ?,?,?, ?,?,?, ?,?,?, ?,?, ?,?,?, ?,?,?, ?,?,?, ?,?,?,?,?,?)
		ON CONFLICT(spot_id, surf_level, COALESCE(user_id, -1)) DO UPDATE SET
			min_wave_height = excluded.min_wave_height,
			ideal_wave_height = excluded.ideal_wave_height,
			max_wave_height = excluded.max_wave_height,
			min_wave_period = excluded.min_wave_period,
			ideal_wave_period = excluded.ideal_wave_period,
			max_wave_period = excluded.max_wave_period,
			min_swell_height = excluded.min_swell_height,
			ideal_swell_height = excluded.ideal_swell_height,
			max_swell_height = excluded.max_swell_height,
			min_swell_period = excluded.min_swell_period,
			ideal_swell_period = excluded.ideal_swell_period,
			max_swell_period = excluded.max_swell_period,
			ideal_secondary_swell_height = excluded.ideal_secondary_swell_height,
			ideal_secondary_swell_period = excluded.ideal_secondary_swell_period,
			min_wind_speed = excluded.min_wind_speed,
			ideal_wind_speed = excluded.ideal_wind_speed,
			max_wind_speed = excluded.max_wind_speed,
			min_sea_level = excluded.min_sea_level,
			ideal_sea_level = excluded.ideal_sea_level,
			max_sea_level = excluded.max_sea_level,
			ideal_water_temperature = excluded.ideal_water_temperature,
			ideal_air_temperature = excluded.ideal_air_temperature,
			ideal_current_speed = excluded.ideal_current_speed,
			preferred_wave_directions = excluded.preferred_wave_directions,
			preferred_swell_directions = excluded.preferred_swell_directions,
			preferred_secondary_swell_directions = excluded.preferred_secondary_swell_directions,
			preferred_wind_directions = excluded.preferred_wind_directions,
			preferred_current_directions = excluded.preferred_current_directions,
			preferred_tide_phases = excluded.preferred_tide_phases
	`,
		pref.SpotID, nullableID(pref.UserID), string(level),
		pref.WaveHeight.Min, pref.WaveHeight.Ideal, pref.WaveHeight.Max,
		pref.WavePeriod.Min, pref.WavePeriod.Ideal, pref.WavePeriod.Max,
		pref.SwellHeight.Min, pref.SwellHeight.Ideal, pref.SwellHeight.Max,
		pref.SwellPeriod.Min, pref.SwellPeriod.Ideal, pref.SwellPeriod.Max,
		pref.IdealSecondarySwellHeight, pref.IdealSecondarySwellPeriod,
		pref.WindSpeed.Min, pref.WindSpeed.Ideal, pref.WindSpeed.Max,
		pref.SeaLevel.Min, pref.SeaLevel.Ideal, pref.SeaLevel.Max,
		pref.IdealWaterTemperature, pref.IdealAirTemperature, pref.IdealCurrentSpeed,
		nullableSectors(pref.PreferredWaveDirections),
		nullableSectors(pref.PreferredSwellDirections),
		nullableSectors(pref.PreferredSecondarySwellDirections),
		nullableSectors(pref.PreferredWindDirections),
		nullableSectors(pref.PreferredCurrentDirections),
		nullablePhases(pref.PreferredTidePhases),
	)
	if err != nil {
		return fmt.Errorf("saving preference: %w", err)
	}
	return nil
}

// GetPreference loads the preference for a (spot, user, level) triple. A
// user-specific row wins over the level default. When neither exists the
// returned preference is empty, which the engine treats as "nothing to
// weigh" rather than an error.
func (r *Repository) GetPreference(spotID int64, userID *int64, level models.SurfLevel) (models.SpotPreference, error) {
	db, err := r.open()
	if err != nil {
		return models.SpotPreference{}, err
	}
	defer db.Close()

	if level == "" {
		level = models.LevelIntermediate
	}

	if userID != nil {
		pref, found, err := scanPreference(db.QueryRow(
			`SELECT spot_id, user_id, surf_level,`+preferenceColumns+
				` FROM spot_preferences WHERE spot_id = ? AND user_id = ?`, spotID, *userID))
		if err != nil {
			return models.SpotPreference{}, err
		}
		if found {
			return pref, nil
		}
	}

	pref, found, err := scanPreference(db.QueryRow(
		`SELECT spot_id, user_id, surf_level,`+preferenceColumns+
			` FROM spot_preferences WHERE spot_id = ? AND user_id IS NULL AND surf_level = ?`, spotID, string(level)))
	if err != nil {
		return models.SpotPreference{}, err
	}
	if !found {
		return models.SpotPreference{SpotID: spotID, SurfLevel: level}, nil
	}
	return pref, nil
}

func scanPreference(row *sql.Row) (models.SpotPreference, bool, error) {
	var p models.SpotPreference
	var userID sql.NullInt64
	var level string
	var (
		minWH, idealWH, maxWH, minWP, idealWP, maxWP        sql.NullFloat64
		minSH, idealSH, maxSH, minSP, idealSP, maxSP        sql.NullFloat64
		idealSSH, idealSSP                                  sql.NullFloat64
		minWS, idealWS, maxWS, minSL, idealSL, maxSL        sql.NullFloat64
		idealWT, idealAT, idealCS                           sql.NullFloat64
		waveDirs, swellDirs, secSwellDirs, windDirs, curDirs sql.NullString
		tidePhases                                          sql.NullString
	)

	err := row.Scan(
		&p.SpotID, &userID, &level,
		&minWH, &idealWH, &maxWH,
		&minWP, &idealWP, &maxWP,
		&minSH, &idealSH, &maxSH,
		&minSP, &idealSP, &maxSP,
		&idealSSH, &idealSSP,
		&minWS, &idealWS, &maxWS,
		&minSL, &idealSL, &maxSL,
		&idealWT, &idealAT, &idealCS,
		&waveDirs, &swellDirs, &secSwellDirs, &windDirs, &curDirs,
		&tidePhases,
	)
	if err == sql.ErrNoRows {
		return models.SpotPreference{}, false, nil
	}
	if err != nil {
		return models.SpotPreference{}, false, fmt.Errorf("scanning preference: %w", err)
	}

	if userID.Valid {
		p.UserID = &userID.Int64
	}
	p.SurfLevel = models.SurfLevel(level)
	p.WaveHeight = models.RangeIdeal{Min: nf(minWH), Ideal: nf(idealWH), Max: nf(maxWH)}
	p.WavePeriod = models.RangeIdeal{Min: nf(minWP), Ideal: nf(idealWP), Max: nf(maxWP)}
	p.SwellHeight = models.RangeIdeal{Min: nf(minSH), Ideal: nf(idealSH), Max: nf(maxSH)}
	p.SwellPeriod = models.RangeIdeal{Min: nf(minSP), Ideal: nf(idealSP), Max: nf(maxSP)}
	p.IdealSecondarySwellHeight = nf(idealSSH)
	p.IdealSecondarySwellPeriod = nf(idealSSP)
	p.WindSpeed = models.RangeIdeal{Min: nf(minWS), Ideal: nf(idealWS), Max: nf(maxWS)}
	p.SeaLevel = models.RangeIdeal{Min: nf(minSL), Ideal: nf(idealSL), Max: nf(maxSL)}
	p.IdealWaterTemperature = nf(idealWT)
	p.IdealAirTemperature = nf(idealAT)
	p.IdealCurrentSpeed = nf(idealCS)
	p.PreferredWaveDirections = parseSectors(waveDirs)
	p.PreferredSwellDirections = parseSectors(swellDirs)
	p.PreferredSecondarySwellDirections = parseSectors(secSwellDirs)
	p.PreferredWindDirections = parseSectors(windDirs)
	p.PreferredCurrentDirections = parseSectors(curDirs)
	p.PreferredTidePhases = parsePhases(tidePhases)

	return p, true, nil
}

func nf(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullableID(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func nullableSectors(secs []compass.Sector) interface{} {
	if len(secs) == 0 {
		return nil
	}
	return compass.FormatSectorList(secs)
}

func parseSectors(v sql.NullString) []compass.Sector {
	if !v.Valid || v.String == "" {
		return nil
	}
	return compass.ParseSectorList(v.String)
}

func nullablePhases(phases []models.TidePhase) interface{} {
	if len(phases) == 0 {
		return nil
	}
	out := ""
	for i, ph := range phases {
		if i > 0 {
			out += ","
		}
		out += string(ph)
	}
	return out
}

func parsePhases(v sql.NullString) []models.TidePhase {
	if !v.Valid || v.String == "" {
		return nil
	}
	var out []models.TidePhase
	for _, part := range strings.Split(v.String, ",") {
		switch ph := models.TidePhase(strings.ToLower(strings.TrimSpace(part))); ph {
		case models.PhaseLow, models.PhaseHigh, models.PhaseRising, models.PhaseFalling, models.PhaseMid:
			out = append(out, ph)
		}
	}
	return out
}

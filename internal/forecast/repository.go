// Package forecast persists the hourly forecast samples and tide extremes
// the ingestion pipeline produces, keyed by (spot, UTC hour). Upserts are
// idempotent so re-fetching a window just refreshes it.
package forecast

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmotta/surfcast/internal/database"
	"github.com/jmotta/surfcast/internal/models"
	_ "modernc.org/sqlite"
)

// Repository handles persistence for forecast time series
type Repository struct {
	dbPath string
}

// NewRepository creates a repository against the shared database.
func NewRepository() *Repository {
	return &Repository{dbPath: database.DBPath()}
}

// NewRepositoryAt creates a repository against a specific database file.
func NewRepositoryAt(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

func (r *Repository) open() (*sql.DB, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}
	return database.Open(r.dbPath)
}

// UpsertSamples writes a batch of hourly samples in one transaction,
// replacing any previously collected values for the same hour.
func (r *Repository) UpsertSamples(samples []models.ForecastSample) error {
	if len(samples) == 0 {
		return nil
	}

	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO forecasts (
			spot_id, timestamp_utc,
			wave_height, wave_direction, wave_period,
			swell_height, swell_direction, swell_period,
			secondary_swell_height, secondary_swell_direction, secondary_swell_period,
			wind_speed, wind_direction,
			water_temperature, air_temperature,
			current_speed, current_direction,
			sea_level, collected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (spot_id, timestamp_utc) DO UPDATE SET
			wave_height = excluded.wave_height,
			wave_direction = excluded.wave_direction,
			wave_period = excluded.wave_period,
			swell_height = excluded.swell_height,
			swell_direction = excluded.swell_direction,
			swell_period = excluded.swell_period,
			secondary_swell_height = excluded.secondary_swell_height,
			secondary_swell_direction = excluded.secondary_swell_direction,
			secondary_swell_period = excluded.secondary_swell_period,
			wind_speed = excluded.wind_speed,
			wind_direction = excluded.wind_direction,
			water_temperature = excluded.water_temperature,
			air_temperature = excluded.air_temperature,
			current_speed = excluded.current_speed,
			current_direction = excluded.current_direction,
			sea_level = excluded.sea_level,
			collected_at = excluded.collected_at
	`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, s := range samples {
		_, err := stmt.Exec(
			s.SpotID, s.TimestampUTC.UTC(),
			fv(s.WaveHeight), fv(s.WaveDirection), fv(s.WavePeriod),
			fv(s.SwellHeight), fv(s.SwellDirection), fv(s.SwellPeriod),
			fv(s.SecondarySwellHeight), fv(s.SecondarySwellDirection), fv(s.SecondarySwellPeriod),
			fv(s.WindSpeed), fv(s.WindDirection),
			fv(s.WaterTemperature), fv(s.AirTemperature),
			fv(s.CurrentSpeed), fv(s.CurrentDirection),
			fv(s.SeaLevel), now,
		)
		if err != nil {
			return fmt.Errorf("upserting sample %s: %w", s.TimestampUTC.Format(time.RFC3339), err)
		}
	}

	return tx.Commit()
}

// UpsertTideExtremes writes a batch of tide extremes in one transaction.
func (r *Repository) UpsertTideExtremes(extremes []models.TideExtreme) error {
	if len(extremes) == 0 {
		return nil
	}

	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO tide_extremes (spot_id, timestamp_utc, tide_type, height)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (spot_id, timestamp_utc) DO UPDATE SET
			tide_type = excluded.tide_type,
			height = excluded.height
	`)
	if err != nil {
		return fmt.Errorf("preparing tide upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range extremes {
		if _, err := stmt.Exec(e.SpotID, e.TimestampUTC.UTC(), string(e.Type), e.Height); err != nil {
			return fmt.Errorf("upserting tide extreme %s: %w", e.TimestampUTC.Format(time.RFC3339), err)
		}
	}

	return tx.Commit()
}

// SamplesForSpot retrieves samples for a spot within [start, end], ordered by
// time.
func (r *Repository) SamplesForSpot(spotID int64, start, end time.Time) ([]models.ForecastSample, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT spot_id, timestamp_utc,
			wave_height, wave_direction, wave_period,
			swell_height, swell_direction, swell_period,
			secondary_swell_height, secondary_swell_direction, secondary_swell_period,
			wind_speed, wind_direction,
			water_temperature, air_temperature,
			current_speed, current_direction,
			sea_level
		FROM forecasts
		WHERE spot_id = ? AND timestamp_utc >= ? AND timestamp_utc <= ?
		ORDER BY timestamp_utc
	`, spotID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	var out []models.ForecastSample
	for rows.Next() {
		var s models.ForecastSample
		var (
			wh, wd, wp, sh, sd, sp, ssh, ssd, ssp sql.NullFloat64
			ws, wdir, wt, at, cs, cd, sl          sql.NullFloat64
		)
		if err := rows.Scan(
			&s.SpotID, &s.TimestampUTC,
			&wh, &wd, &wp, &sh, &sd, &sp, &ssh, &ssd, &ssp,
			&ws, &wdir, &wt, &at, &cs, &cd, &sl,
		); err != nil {
			return nil, fmt.Errorf("scanning sample: %w", err)
		}
		s.TimestampUTC = s.TimestampUTC.UTC()
		s.WaveHeight, s.WaveDirection, s.WavePeriod = nf(wh), nf(wd), nf(wp)
		s.SwellHeight, s.SwellDirection, s.SwellPeriod = nf(sh), nf(sd), nf(sp)
		s.SecondarySwellHeight, s.SecondarySwellDirection, s.SecondarySwellPeriod = nf(ssh), nf(ssd), nf(ssp)
		s.WindSpeed, s.WindDirection = nf(ws), nf(wdir)
		s.WaterTemperature, s.AirTemperature = nf(wt), nf(at)
		s.CurrentSpeed, s.CurrentDirection = nf(cs), nf(cd)
		s.SeaLevel = nf(sl)
		out = append(out, s)
	}
	return out, rows.Err()
}

// TideExtremesForSpot retrieves tide extremes for a spot within [start, end],
// ordered by time.
func (r *Repository) TideExtremesForSpot(spotID int64, start, end time.Time) ([]models.TideExtreme, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT spot_id, timestamp_utc, tide_type, height
		FROM tide_extremes
		WHERE spot_id = ? AND timestamp_utc >= ? AND timestamp_utc <= ?
		ORDER BY timestamp_utc
	`, spotID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("querying tide extremes: %w", err)
	}
	defer rows.Close()

	var out []models.TideExtreme
	for rows.Next() {
		var e models.TideExtreme
		var typ string
		if err := rows.Scan(&e.SpotID, &e.TimestampUTC, &typ, &e.Height); err != nil {
			return nil, fmt.Errorf("scanning tide extreme: %w", err)
		}
		e.TimestampUTC = e.TimestampUTC.UTC()
		e.Type = models.TideType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}

func fv(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nf(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

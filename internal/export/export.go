// Package export writes yearly calendar tables to disk as CSV files, one
// file per year, suitable for spreadsheets and downstream batch jobs.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renanmoretto/dias-uteis/internal/calendar"
	"github.com/renanmoretto/dias-uteis/internal/logger"
)

const (
	fileDateLayout = "2006-01-02"
	filePrefix     = "dias_uteis_"
	fileExt        = ".csv"

	maxParallelCap = 7
)

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// FileName returns the CSV file name used for a year.
func FileName(year int) string {
	return fmt.Sprintf("%s%d%s", filePrefix, year, fileExt)
}

// WriteYears renders one CSV per year in [startYear, endYear] under dir.
//
// Behavior:
//   - Each file has a header row and one row per calendar day:
//     data;dia_da_semana;dia_util;feriado
//   - Years are rendered concurrently, capped at min(7, NumCPU) workers,
//     or at the provided parallel clamp(1..7).
//   - Existing files are skipped unless force is set.
//   - The first error cancels the remaining years and is returned.
func WriteYears(ctx context.Context, dir string, cal *calendar.Calendar, startYear, endYear, parallel int, force bool) error {
	if startYear > endYear {
		return fmt.Errorf("invalid year range: %d > %d", startYear, endYear)
	}
	if !calendar.ValidYear(startYear) || !calendar.ValidYear(endYear) {
		return fmt.Errorf("year range out of bounds: %d-%d", startYear, endYear)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	maxParallel := maxParallelCap
	if parallel > 0 {
		if parallel > maxParallelCap {
			parallel = maxParallelCap
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().
		Int("start_year", startYear).
		Int("end_year", endYear).
		Int("max_parallel", maxParallel).
		Str("dir", dir).
		Msg("export start")

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for year := startYear; year <= endYear; year++ {
		y := year
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(dir, FileName(y))
			if !force {
				if _, err := os.Stat(path); err == nil {
					logger.L().Info().Int("year", y).Str("file", path).Bool("skipped", true).Msg("file exists")
					return nil
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("stat %s: %w", path, err)
				}
			}

			start := time.Now()
			if err := writeYear(path, cal, y); err != nil {
				logger.L().Error().Int("year", y).Err(err).Msg("year failed")
				return fmt.Errorf("year %d: %w", y, err)
			}
			logger.L().Info().Int("year", y).Dur("elapsed", time.Since(start)).Str("file", path).Msg("year done")
			return nil
		})
	}

	return g.Wait()
}

// writeYear renders a single year to path atomically: the CSV is written to
// a temp file in the same directory and renamed into place.
func writeYear(path string, cal *calendar.Calendar, year int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	w.Comma = ';'

	if err := w.Write([]string{"data", "dia_da_semana", "dia_util", "feriado"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	first := calendar.MustDate(year, time.January, 1)
	for d := first; d.Year() == year; d = d.AddDate(0, 0, 1) {
		business := "nao"
		if cal.IsBusinessDay(d) {
			business = "sim"
		}
		name, _ := cal.HolidayName(d)

		record := []string{
			d.Format(fileDateLayout),
			weekdayNames[d.Weekday()],
			business,
			name,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", d.Format(fileDateLayout), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

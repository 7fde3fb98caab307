// Package loader reads the JSONC source files and assembles one immutable
// snapshot from them.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/pkg/jsonc"
	"github.com/landagri/backend/internal/pkg/logger"
	"github.com/landagri/backend/internal/service/catalog"
	"github.com/landagri/backend/internal/service/conab"
	"golang.org/x/sync/errgroup"
)

// Sources are the four metadata inputs. Each is a file path or an http(s)
// URL. Initiatives is required; the others are skipped when empty.
type Sources struct {
	Initiatives   string
	Sensors       string
	ConabCoverage string
	CropCalendar  string
}

type Loader struct {
	sources Sources
	conab   *conab.Service
}

func New(sources Sources) *Loader {
	return &Loader{sources: sources, conab: conab.NewService()}
}

// Load reads all configured sources concurrently and builds a snapshot.
// A decode failure in any source fails the whole load; an invalid CONAB
// calendar payload only drops the calendar.
func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	if l.sources.Initiatives == "" {
		return nil, fmt.Errorf("initiatives source is not configured")
	}

	var (
		rawInitiatives map[string]*domain.RawInitiative
		rawSensors     map[string]*domain.RawSensor
		rawCoverage    *domain.RawConabCoverage
		rawCalendar    *domain.RawCropCalendar
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := l.decodeSource(egCtx, l.sources.Initiatives, &rawInitiatives); err != nil {
			return fmt.Errorf("initiatives: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if l.sources.Sensors == "" {
			return nil
		}
		if err := l.decodeSource(egCtx, l.sources.Sensors, &rawSensors); err != nil {
			return fmt.Errorf("sensors: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if l.sources.ConabCoverage == "" {
			return nil
		}
		if err := l.decodeSource(egCtx, l.sources.ConabCoverage, &rawCoverage); err != nil {
			return fmt.Errorf("conab coverage: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if l.sources.CropCalendar == "" {
			return nil
		}
		if err := l.decodeSource(egCtx, l.sources.CropCalendar, &rawCalendar); err != nil {
			return fmt.Errorf("crop calendar: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	result := catalog.Assemble(ctx, rawInitiatives)
	timeline := catalog.BuildTimeline(result.Records)

	snapshot := &domain.Snapshot{
		ID:              uuid.New(),
		LoadedAt:        time.Now().UTC(),
		Initiatives:     result.Records,
		ByName:          result.ByName,
		Rows:            result.Rows,
		Dropped:         result.Dropped,
		Timeline:        timeline,
		TimelineSummary: catalog.SummarizeTimeline(timeline),
		Sensors:         normalizeSensors(rawSensors),
		ConabCoverage:   rawCoverage,
	}

	if rawCalendar != nil {
		if l.conab.Validate(rawCalendar) {
			snapshot.Calendar = l.conab.Flatten(ctx, rawCalendar)
		} else {
			logger.Warnf(ctx, "crop calendar payload failed validation, calendar omitted")
		}
	}

	logger.Infof(ctx, "snapshot %s loaded: %d initiatives, %d sensors, %d calendar rows",
		snapshot.ID, len(snapshot.Initiatives), len(snapshot.Sensors), len(snapshot.Calendar))

	return snapshot, nil
}

// ModTimes stats every file-backed source. URL sources have no mtime and
// are left out.
func (l *Loader) ModTimes() (map[string]time.Time, error) {
	modTimes := make(map[string]time.Time, 4)
	for _, src := range []string{l.sources.Initiatives, l.sources.Sensors, l.sources.ConabCoverage, l.sources.CropCalendar} {
		if src == "" || isURL(src) {
			continue
		}
		info, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("os.Stat %s: %w", src, err)
		}
		modTimes[src] = info.ModTime()
	}
	return modTimes, nil
}

func (l *Loader) decodeSource(ctx context.Context, src string, v interface{}) error {
	content, err := l.readSource(ctx, src)
	if err != nil {
		return err
	}
	if err := jsonc.Unmarshal(content, v); err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}
	return nil
}

func (l *Loader) readSource(ctx context.Context, src string) ([]byte, error) {
	if !isURL(src) {
		content, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}
		return content, nil
	}

	var resp *http.Response
	err := backoff.Retry(
		func() error {
			var httpErr error

			resp, httpErr = http.Get(src)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	return content, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func normalizeSensors(raw map[string]*domain.RawSensor) []domain.SensorRecord {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sensors := make([]domain.SensorRecord, 0, len(keys))
	for _, key := range keys {
		entry := raw[key]
		if entry == nil {
			continue
		}

		resolutions := make([]float64, 0, len(entry.SpatialResolutionsM))
		for _, value := range entry.SpatialResolutionsM {
			resolutions = append(resolutions, catalog.ParseResolution(value))
		}

		sensors = append(sensors, domain.SensorRecord{
			Key:                 key,
			DisplayName:         entry.DisplayName,
			PlatformName:        entry.PlatformName,
			Agency:              entry.Agency,
			Status:              entry.Status,
			LaunchYear:          entry.LaunchYear,
			SpatialResolutionsM: resolutions,
			RevisitTimeDays:     entry.RevisitTimeDays,
			SpectralBands:       entry.SpectralBands,
		})
	}
	return sensors
}

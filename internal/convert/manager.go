package convert

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/autoeq"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/cache"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/config"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/fiio"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/http"
	ioutils "github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/io"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrNoEQData is returned when a profile entry has neither a
// ParametricEQ .txt nor .csv file in the results repository.
var ErrNoEQData = errors.New("no parametric EQ data found for profile")

// Result is the outcome of one profile conversion.
type Result struct {
	// Entry is the index entry that was converted.
	Entry autoeq.Entry

	// Preset is the mapped device preset.
	Preset *fiio.Preset

	// XML is the serialized FiiO_DSP document.
	XML string

	// FilterCount is the number of enabled bands parsed from the source.
	FilterCount int

	// Truncated reports whether bands beyond the device's slot capacity
	// were dropped.
	Truncated bool
}

// Manager coordinates the index load, profile fetch, and conversion.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	store      *cache.Store

	entries []autoeq.Entry

	onProgress func(ProgressEvent)
}

// NewManager creates a new conversion Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(),
		store:      cache.NewStore(settings.CacheDir),
		onProgress: onProgress,
	}
}

// LoadIndex fetches and parses the AutoEq profile index.
//
// The index is revalidated against the on-disk cache with a conditional
// GET: a 304 answer reuses the cached copy, a fresh answer updates it.
// If the network fetch fails entirely, a cached copy (when present) is
// used as a fallback so the tool keeps working offline.
func (m *Manager) LoadIndex(ctx context.Context) error {
	cached, etag, cacheErr := m.store.Load(m.settings.IndexURL)
	if cacheErr != nil && !errors.Is(cacheErr, cache.ErrMiss) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cache unreadable: %v", cacheErr), Level: LevelWarning})
	}

	body, newETag, notModified, err := m.httpClient.GetConditional(ctx, m.settings.IndexURL, etag)
	switch {
	case err != nil:
		if cached == nil {
			return fmt.Errorf("failed to fetch index: %w", err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Index fetch failed (%v), using cached copy", err), Level: LevelWarning})
		body = cached
	case notModified:
		m.progress(ProgressEvent{Message: "Remote index unchanged, using cached copy", Level: LevelVerbose})
		body = cached
	default:
		m.progress(ProgressEvent{Message: "Fetched fresh profile index", Level: LevelVerbose})
		if saveErr := m.store.Save(ctx, m.settings.IndexURL, body, newETag); saveErr != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Could not cache index: %v", saveErr), Level: LevelWarning})
		}
	}

	entries, err := autoeq.ParseIndex(string(body))
	if err != nil {
		return err
	}
	m.entries = entries

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d headphone profiles", len(entries)), Level: LevelInfo})
	return nil
}

// Entries returns all profiles from the loaded index.
func (m *Manager) Entries() []autoeq.Entry {
	return m.entries
}

// Search filters the loaded index by a case-insensitive substring match.
func (m *Manager) Search(term string) []autoeq.Entry {
	return autoeq.Search(m.entries, term)
}

// Convert fetches and converts one profile into a FiiO preset.
//
// The per-headphone .txt form and the generic .csv fallback are fetched
// concurrently; the .txt form wins when both exist, matching AutoEq's
// own preference. Parse failures are returned as-is so callers can
// distinguish an unrecognized format from a malformed field.
func (m *Manager) Convert(ctx context.Context, entry autoeq.Entry) (*Result, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching EQ data for %s", entry.Name), Level: LevelVerbose})

	text, err := m.fetchProfileText(ctx, entry)
	if err != nil {
		return nil, err
	}

	profile, err := autoeq.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", entry.Name, err)
	}
	profile.Name = entry.Name

	if !profile.HasPreamp {
		m.progress(ProgressEvent{Message: "Preamp line not found, using 0.0 dB", Level: LevelVerbose})
	}
	if fiio.Truncated(profile.Filters) {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Profile has %d bands, limiting to %d for the device", len(profile.Filters), model.SlotCount),
			Level:   LevelWarning,
		})
	}

	preset := fiio.BuildPreset(profile, fiio.Options{
		DSPModel:     m.settings.DSPModel,
		SuppressGain: m.settings.SuppressGain,
	})

	xmlText, err := fiio.Serialize(preset)
	if err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Converted %s: %d bands, master gain %.1f dB", entry.Name, len(profile.Filters), preset.MasterGain),
		Level:   LevelInfo,
	})

	return &Result{
		Entry:       entry,
		Preset:      preset,
		XML:         xmlText,
		FilterCount: len(profile.Filters),
		Truncated:   fiio.Truncated(profile.Filters),
	}, nil
}

// Save writes a conversion result to the configured output directory
// using the configured file-name template, and returns the path written.
func (m *Manager) Save(ctx context.Context, result *Result) (string, error) {
	fileName := model.OutputFileName(m.settings.OutputFileNameFormat, result.Entry.Name, result.Preset.DSPModel)
	path := filepath.Join(m.settings.OutputDir, fileName)

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return "", err
	}
	if err := ioutils.WriteFile(ctx, path, []byte(result.XML)); err != nil {
		return "", err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved preset to %s", path), Level: LevelSuccess})
	return path, nil
}

// fetchProfileText retrieves the raw profile text, preferring the
// fixed-band .txt file over the tabular .csv fallback.
func (m *Manager) fetchProfileText(ctx context.Context, entry autoeq.Entry) (string, error) {
	txtURL := m.profileURL(entry, entry.Name+" ParametricEQ.txt")
	csvURL := m.profileURL(entry, "ParametricEQ.csv")

	var txtBody, csvBody []byte

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := m.httpClient.Get(ctx, txtURL)
		if errors.Is(err, http.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		txtBody = body
		return nil
	})
	g.Go(func() error {
		body, err := m.httpClient.Get(ctx, csvURL)
		if errors.Is(err, http.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		csvBody = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("fetching EQ data for %s: %w", entry.Name, err)
	}

	switch {
	case txtBody != nil:
		return string(txtBody), nil
	case csvBody != nil:
		m.progress(ProgressEvent{Message: "Text profile not found, using CSV fallback", Level: LevelVerbose})
		return string(csvBody), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNoEQData, entry.Name)
	}
}

// profileURL joins the raw base URL, the entry path, and a file name,
// percent-escaping each path segment (profile directories and file
// names routinely contain spaces).
func (m *Manager) profileURL(entry autoeq.Entry, fileName string) string {
	return m.settings.BaseRawURL + escapePath(entry.Path+fileName)
}

// escapePath percent-escapes each segment of a relative URL path while
// preserving the separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

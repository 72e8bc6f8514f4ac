package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
	"github.com/san-kum/particles/internal/sim"
)

// Store keeps the metric series of finished runs. Particle state is never
// written, so a run cannot be resumed from a store.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	Workers   int                `json:"workers"`
	Frames    int                `json:"frames"`
	Elapsed   time.Duration      `json:"elapsed"`
	FrameRate float64            `json:"frame_rate"`
	Bounds    particle.Bounds    `json:"bounds"`
	Physics   engine.Params      `json:"physics"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and series.csv for a run and returns its id. The
// run fields of meta are filled from result.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("run_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Seed = result.Seed
	meta.Frames = result.Frames
	meta.Elapsed = result.Elapsed
	meta.FrameRate = result.FrameRate()
	meta.Metrics = result.Metrics

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := w.Write(append([]string{"frame"}, names...)); err != nil {
		return "", err
	}

	for i := 0; i < result.Frames; i++ {
		row := []string{strconv.Itoa(i)}
		for _, name := range names {
			val := 0.0
			if i < len(result.Series[name]) {
				val = result.Series[name][i]
			}
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the per-frame metric values of a run, keyed by metric name.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := make(map[string][]float64)
	if len(records) == 0 {
		return series, nil
	}

	header := records[0]
	for _, name := range header[1:] {
		series[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for j := 1; j < len(record) && j < len(header); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("series %s row %s: %w", header[j], record[0], err)
			}
			series[header[j]] = append(series[header[j]], val)
		}
	}

	return series, nil
}

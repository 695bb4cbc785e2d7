package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/sweep"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

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
	ID           string             `json:"id"`
	Label        string             `json:"label"`
	Timestamp    time.Time          `json:"timestamp"`
	CoreDiameter float64            `json:"core_diameter"`
	ActiveHeight float64            `json:"active_height"`
	ElementOD    float64            `json:"element_od"`
	PitchRatio   float64            `json:"pitch_ratio"`
	Points       int                `json:"points"`
	Summary      map[string]float64 `json:"summary"`
}

// Save writes one sweep run as a directory holding metadata.json and
// points.csv (enrichment, k_eff, group fluxes). Returns the run ID.
func (s *Store) Save(label string, geom cell.Geometry, summary map[string]float64, points []sweep.Point) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Label:        label,
		Timestamp:    time.Now(),
		CoreDiameter: geom.CoreDiameter,
		ActiveHeight: geom.ActiveHeight,
		ElementOD:    geom.ElementOD,
		PitchRatio:   geom.PitchRatio,
		Points:       len(points),
		Summary:      summary,
	}

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

	csvPath := filepath.Join(runDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"enrichment", "k_eff"}
	for g := 0; g < xs.Groups; g++ {
		header = append(header, fmt.Sprintf("phi%d", g))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Enrichment, 'g', -1, 64),
			strconv.FormatFloat(p.KEff, 'g', -1, 64),
		}
		for g := 0; g < xs.Groups; g++ {
			row = append(row, strconv.FormatFloat(p.Flux[g], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

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

func (s *Store) LoadPoints(runID string) ([]sweep.Point, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
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

	if len(records) < 2 {
		return []sweep.Point{}, nil
	}

	points := make([]sweep.Point, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2+xs.Groups {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		k, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		p := sweep.Point{Enrichment: x, KEff: k}
		ok := true
		for g := 0; g < xs.Groups; g++ {
			val, err := strconv.ParseFloat(record[2+g], 64)
			if err != nil {
				ok = false
				break
			}
			p.Flux[g] = val
		}
		if !ok {
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

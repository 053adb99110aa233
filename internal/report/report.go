// Package report persists analysis run artifacts: a small JSON record of
// what was analyzed, with which thresholds, and what came out. The annotated
// table itself is exported separately as CSV; the artifact is the durable
// audit trail the reports command lists.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	"github.com/KaramelBytes/stockloom-cli/internal/engine"
	"github.com/KaramelBytes/stockloom-cli/internal/utils"
	"github.com/google/uuid"
)

const fileSuffix = ".report.json"

// Run is one persisted analysis run.
type Run struct {
	ID            string         `json:"id"`
	Source        string         `json:"source"`
	CreatedAt     time.Time      `json:"created_at"`
	SlowThreshold float64        `json:"slow_threshold"`
	FastThreshold float64        `json:"fast_threshold"`
	Products      int            `json:"products"`
	Notices       []clean.Notice `json:"notices,omitempty"`
	Stats         engine.Stats   `json:"stats"`
}

// NewRun constructs a run artifact with a fresh ID.
func NewRun(source string, th engine.Thresholds) *Run {
	return &Run{
		ID:            uuid.NewString(),
		Source:        source,
		CreatedAt:     time.Now(),
		SlowThreshold: th.Slow,
		FastThreshold: th.Fast,
	}
}

// Save writes the run as <id>.report.json under dir using an atomic write.
// It returns the file path.
func (r *Run) Save(dir string) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure reports dir: %w", err)
	}
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, r.ID+fileSuffix)
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a run artifact from path.
func Load(path string) (*Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("report not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}

// List loads every run artifact in dir, newest first. A missing directory is
// not an error; it means no runs were saved yet.
func List(dir string) ([]*Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reports dir: %w", err)
	}
	var runs []*Run
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}
		r, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			// Skip unreadable artifacts rather than failing the listing.
			continue
		}
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })
	return runs, nil
}

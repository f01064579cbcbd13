package model

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/intellihealth/api/internal/domain"
)

// Artifact file naming: <metric>_model.gob holds the gob-encoded predictor,
// <metric>_features.gob holds the gob-encoded ordered feature-name list.
const (
	modelFileSuffix    = "_model.gob"
	featuresFileSuffix = "_features.gob"
)

// Registry holds, for process lifetime, the three loaded predictors and
// their feature schemas. It is immutable after Load.
type Registry struct {
	artifacts map[domain.Metric]artifact
}

type artifact struct {
	predictor Predictor
	schema    []string
}

var (
	loadOnce  sync.Once
	loadedReg *Registry
	loadErr   error
)

// Load reads all six artifact files from dir and returns the registry.
// Any missing or unreadable artifact is an error; callers treat that as
// fatal, since serving with partially loaded models is never allowed.
//
// The first successful or failed load is cached for process lifetime:
// subsequent calls return the same result without touching the filesystem
// again.
func Load(dir string) (*Registry, error) {
	loadOnce.Do(func() {
		loadedReg, loadErr = LoadDir(dir)
	})
	return loadedReg, loadErr
}

// LoadDir reads the artifact files without the process-lifetime cache.
// Load wraps it; tests use it directly to load throwaway artifact sets.
func LoadDir(dir string) (*Registry, error) {
	reg := &Registry{artifacts: make(map[domain.Metric]artifact, len(domain.Metrics))}

	for _, m := range domain.Metrics {
		var lm LinearModel
		if err := decodeGob(filepath.Join(dir, string(m)+modelFileSuffix), &lm); err != nil {
			return nil, fmt.Errorf("loading %s model: %w", m, err)
		}

		var schema []string
		if err := decodeGob(filepath.Join(dir, string(m)+featuresFileSuffix), &schema); err != nil {
			return nil, fmt.Errorf("loading %s feature schema: %w", m, err)
		}

		reg.artifacts[m] = artifact{predictor: &lm, schema: schema}
	}

	return reg, nil
}

// Predictor returns the loaded predictor for a metric.
func (r *Registry) Predictor(m domain.Metric) Predictor {
	return r.artifacts[m].predictor
}

// Schema returns the ordered feature names the metric's predictor expects.
// The schema is held verbatim as loaded; it is the runtime contract the
// feature builder aligns against.
func (r *Registry) Schema(m domain.Metric) []string {
	return r.artifacts[m].schema
}

func decodeGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Command artifact-pack converts a JSON description of an externally
// trained linear regression into the gob artifact pair the model registry
// loads: <metric>_model.gob and <metric>_features.gob.
//
// The input file looks like:
//
//	{
//	  "metric": "stress",
//	  "features": ["rmssd", "nremhr", ...],
//	  "weights": [0.12, -0.4, ...],
//	  "intercept": 42.0
//	}
//
// Training itself happens elsewhere; this only packages coefficients.
package main

import (
	"encoding/gob"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/model"
)

type artifactSpec struct {
	Metric    string    `json:"metric"`
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func main() {
	in := flag.String("in", "", "path to the JSON artifact description")
	outDir := flag.String("out", "models", "directory to write the gob artifacts into")
	flag.Parse()

	if *in == "" {
		log.Fatal("missing required -in flag")
	}

	if err := pack(*in, *outDir); err != nil {
		log.Fatal(err)
	}
}

func pack(inPath, outDir string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	var spec artifactSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	metric, err := domain.ParseMetric(spec.Metric)
	if err != nil {
		return err
	}
	if len(spec.Weights) != len(spec.Features) {
		return fmt.Errorf("%d weights for %d features", len(spec.Weights), len(spec.Features))
	}

	lm := model.LinearModel{Weights: spec.Weights, Intercept: spec.Intercept}
	if err := writeGob(filepath.Join(outDir, string(metric)+"_model.gob"), &lm); err != nil {
		return err
	}
	if err := writeGob(filepath.Join(outDir, string(metric)+"_features.gob"), spec.Features); err != nil {
		return err
	}

	fmt.Printf("Packed %s artifacts into %s\n", metric, outDir)
	return nil
}

func writeGob(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

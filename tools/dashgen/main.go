package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/quicklist/tools/dashgen/dashboards"
	"github.com/donaldgifford/quicklist/tools/dashgen/rules"
	"github.com/donaldgifford/quicklist/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	dailyLimit := flag.Int("daily-limit", 0, "Sell API daily call budget used by the quota alert")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *dailyLimit > 0 {
		cfg.DailyLimit = *dailyLimit
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	files, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, f := range files {
		dst := filepath.Join(cfg.OutputDir, f.path)
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, f.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Printf("dashgen: wrote %s\n", dst)
	}
	return nil
}

func generate(cfg Config) ([]artifact, error) {
	known := maps.Clone(KnownMetrics)
	var files []artifact

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules(cfg.DailyLimit)} {
			if res := validate.Rules(&cr, known); !res.Ok() {
				return nil, fmt.Errorf("rules %s: %s", cr.Metadata.Name, strings.Join(res.Errors, "; "))
			}
			data, err := yaml.Marshal(cr)
			if err != nil {
				return nil, fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err)
			}
			files = append(files, artifact{
				path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, known); !res.Ok() {
			return nil, errors.New("dashboard: " + strings.Join(res.Errors, "; "))
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		files = append(files, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	return files, nil
}

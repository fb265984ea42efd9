// Package bench loads and runs benchmark suites: directories holding a
// grammar, one or more example files, and a Settings.csv describing
// the run configuration plus the expected stdout per example file.
package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Settings is one benchmark's Settings.csv: run configuration keys
// plus one expected-output entry per example-file stem.
type Settings struct {
	Description     string
	Metric          string
	MetricParameter string
	Tactic          string
	TacticParameter string
	MaxHeight       int

	// Expected maps an example file's stem to the stdout the
	// synthesizer should produce for it.
	Expected map[string]string
}

// ReadSettings parses a Settings.csv of key,value rows.
func ReadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s := &Settings{
		MaxHeight: 2,
		Expected:  map[string]string{},
	}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%s:%d: expected key,value", path, i+1)
		}
		key, val := row[0], row[1]
		switch key {
		case "description":
			s.Description = val
		case "metric":
			s.Metric = val
		case "metric-parameter":
			s.MetricParameter = val
		case "tactic":
			s.Tactic = val
		case "tactic-parameter":
			s.TacticParameter = val
		case "max-height":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: max-height %q is not an integer", path, i+1, val)
			}
			s.MaxHeight = n
		default:
			s.Expected[key] = val
		}
	}
	return s, nil
}

package synthio

import (
	"encoding/csv"
	"os"

	"github.com/approxsynth/synth/value"
)

// Examples is a loaded, positionally-aligned example set: one
// assignment map and one expected output per row, in file order.
// Duplicate rows are kept and scored twice.
type Examples struct {
	Variables   []string
	Assignments []map[string]value.Value
	Expected    []value.Value
}

// ReadExamplesCSV loads an input-output example file: a header row of
// variable names with one trailing "output" column, then one row of
// literals per example.
func ReadExamplesCSV(path string) (*Examples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}
	if len(rows) < 2 {
		return nil, &ParseError{File: path, Detail: "need a header row and at least one example row"}
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, &ParseError{File: path, Line: 1, Detail: "header must name at least one variable and the output column"}
	}
	variables := header[:len(header)-1]

	ex := &Examples{Variables: variables}
	for lineNo, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, &ParseError{File: path, Line: lineNo + 2, Detail: "row width does not match header"}
		}
		assignment := make(map[string]value.Value, len(variables))
		for i, cell := range row[:len(row)-1] {
			v, err := ParseLiteral(cell)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNo + 2, Detail: err.Error()}
			}
			assignment[variables[i]] = v
		}
		out, err := ParseLiteral(row[len(row)-1])
		if err != nil {
			return nil, &ParseError{File: path, Line: lineNo + 2, Detail: err.Error()}
		}
		ex.Assignments = append(ex.Assignments, assignment)
		ex.Expected = append(ex.Expected, out)
	}
	return ex, nil
}

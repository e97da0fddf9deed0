package dataframe

import (
	"encoding/csv"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

var nan = math.NaN()

// ReadCSV loads a table from CSV with a header row. Columns whose non-empty cells
// are all numeric become float columns, everything else stays as strings.
// Date columns are converted by the caller with ToDatetime.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("csv input is empty")
		}
		return nil, errors.Wrap(err, "read csv header")
	}

	cells := make([][]string, len(header))
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "read csv line %d", line)
		}

		if len(record) != len(header) {
			return nil, errors.Wrapf(ErrLengthMismatch, "csv line %d has %d fields, header has %d", line, len(record), len(header))
		}

		for i, cell := range record {
			cells[i] = append(cells[i], cell)
		}
	}

	t := &Table{columns: make(map[string]Column, len(header))}
	for i, name := range header {
		if t.Has(name) {
			return nil, errors.Errorf("duplicate csv column %q", name)
		}

		if err := t.Set(inferColumn(name, cells[i])); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck // read only
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

func inferColumn(name string, raw []string) Column {
	if raw == nil {
		raw = []string{}
	}

	nonEmpty := 0
	for _, s := range raw {
		if s != "" {
			nonEmpty++
		}
	}

	if nonEmpty > 0 {
		if values, ok := parseFloats(raw); ok {
			return NewFloatColumn(name, values)
		}
	}
	return NewStringColumn(name, raw...)
}

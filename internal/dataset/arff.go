package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table holds the parsed contents of one archive member: financial ratio
// features and binary bankruptcy labels for a single forecasting horizon.
type Table struct {
	Relation   string
	Attributes []string    // feature names, label column excluded
	Features   [][]float64 // row-major, NaN marks a missing cell
	Labels     []int       // 0 = survived, 1 = bankrupt
}

func (t *Table) NumSamples() int { return len(t.Labels) }

func (t *Table) NumFeatures() int { return len(t.Attributes) }

// BankruptCount returns the number of positive samples in the table.
func (t *Table) BankruptCount() int {
	count := 0
	for _, label := range t.Labels {
		if label == 1 {
			count++
		}
	}
	return count
}

// LoadTable parses the ARFF member file at the given path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening member file: %w", err)
	}
	defer f.Close() // nolint

	table, err := ParseARFF(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return table, nil
}

// ParseARFF reads the subset of the ARFF format used by the bankruptcy
// archive: numeric attributes, a final nominal class attribute, and
// comma-separated data rows with "?" marking missing values.
func ParseARFF(r io.Reader) (*Table, error) {
	table := &Table{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inData := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if !inData {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "@relation"):
				table.Relation = strings.TrimSpace(line[len("@relation"):])
			case strings.HasPrefix(lower, "@attribute"):
				fields := strings.Fields(line)
				if len(fields) < 3 {
					return nil, fmt.Errorf("malformed attribute declaration: %q", line)
				}
				table.Attributes = append(table.Attributes, fields[1])
			case strings.HasPrefix(lower, "@data"):
				if len(table.Attributes) < 2 {
					return nil, fmt.Errorf("data section before attribute declarations")
				}
				// The last declared attribute is the class label.
				table.Attributes = table.Attributes[:len(table.Attributes)-1]
				inData = true
			}
			continue
		}

		features, label, err := parseDataRow(line, len(table.Attributes))
		if err != nil {
			return nil, err
		}
		table.Features = append(table.Features, features)
		table.Labels = append(table.Labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ARFF data: %w", err)
	}
	if !inData {
		return nil, fmt.Errorf("missing @data section")
	}

	return table, nil
}

func parseDataRow(line string, numFeatures int) ([]float64, int, error) {
	values := strings.Split(line, ",")
	if len(values) != numFeatures+1 {
		return nil, 0, fmt.Errorf("row has %d values, want %d", len(values), numFeatures+1)
	}

	features := make([]float64, numFeatures)
	for i := 0; i < numFeatures; i++ {
		v := strings.TrimSpace(values[i])
		if v == "?" {
			features[i] = math.NaN()
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("bad numeric value %q: %w", v, err)
		}
		features[i] = parsed
	}

	label, err := strconv.Atoi(strings.TrimSpace(values[numFeatures]))
	if err != nil || (label != 0 && label != 1) {
		return nil, 0, fmt.Errorf("bad class label %q", values[numFeatures])
	}

	return features, label, nil
}

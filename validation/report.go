// This file is part of model2rom.
//
// model2rom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// model2rom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with model2rom.  If not, see <https://www.gnu.org/licenses/>.

package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/model2emu/model2rom/catalog"
)

// Result of a checksum comparison.
type Result int

// List of valid Result values.
const (
	// checksums were not computed because of the validation policy
	NotChecked Result = iota

	// the catalog has no reference digest for the algorithm
	NoReference

	Match
	Mismatch
)

func (r Result) String() string {
	switch r {
	case NotChecked:
		return "not checked"
	case NoReference:
		return "no reference"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	}
	return "undefined"
}

// Status is the overall outcome of validation.
type Status int

// List of valid Status values.
const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Warn:
		return "WARN"
	case Fail:
		return "FAIL"
	}
	return "undefined"
}

// ChecksumResult is the comparison for one algorithm.
type ChecksumResult struct {
	Algorithm Algorithm
	Expected  string
	Actual    string
	Result    Result
}

// Report is the outcome of validating one ROM image.
type Report struct {
	Name         string
	Size         int
	ExpectedSize int

	Declared catalog.RomType
	Detected catalog.RomType
	Entropy  float64

	// indexed by Algorithm
	Checksums [numAlgorithms]ChecksumResult

	// digests computed from the data. zero if checksums were not computed
	Computed catalog.Checksums

	Warnings []string
	Errors   []string

	Status Status
}

// Checksum returns the comparison for the algorithm.
func (r Report) Checksum(alg Algorithm) ChecksumResult {
	return r.Checksums[alg]
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Report) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) settle() {
	switch {
	case len(r.Errors) > 0:
		r.Status = Fail
	case len(r.Warnings) > 0:
		r.Status = Warn
	default:
		r.Status = Pass
	}
}

func (r Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s\n", r.Name, r.Status))
	s.WriteString(fmt.Sprintf("  size: %d bytes (expected %d)\n", r.Size, r.ExpectedSize))
	s.WriteString(fmt.Sprintf("  type: %s (detected %s)\n", r.Declared, r.Detected))
	s.WriteString(fmt.Sprintf("  entropy: %.2f\n", r.Entropy))
	for _, c := range r.Checksums {
		switch c.Result {
		case Match:
			s.WriteString(fmt.Sprintf("  %s: %s (%s)\n", c.Algorithm, c.Result, c.Actual))
		case Mismatch:
			s.WriteString(fmt.Sprintf("  %s: %s (expected %s, got %s)\n", c.Algorithm, c.Result, c.Expected, c.Actual))
		default:
			s.WriteString(fmt.Sprintf("  %s: %s\n", c.Algorithm, c.Result))
		}
	}
	for _, w := range r.Warnings {
		s.WriteString(fmt.Sprintf("  warning: %s\n", w))
	}
	for _, e := range r.Errors {
		s.WriteString(fmt.Sprintf("  error: %s\n", e))
	}
	return s.String()
}

// WriteReports writes every report followed by a summary line.
func WriteReports(output io.Writer, reports []Report) error {
	var pass, warn, fail int
	for _, r := range reports {
		if _, err := io.WriteString(output, r.String()); err != nil {
			return err
		}
		switch r.Status {
		case Pass:
			pass++
		case Warn:
			warn++
		case Fail:
			fail++
		}
	}

	_, err := fmt.Fprintf(output, "Summary: %d passed, %d with warnings, %d failed (%d total)\n",
		pass, warn, fail, len(reports))
	return err
}

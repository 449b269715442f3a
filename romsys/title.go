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

package romsys

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/model2emu/model2rom/memorymap"
	"github.com/model2emu/model2rom/romloader"
	"github.com/model2emu/model2rom/validation"
)

// the number of bins and the width of the entropy histogram.
const (
	histogramBins  = 8
	histogramWidth = 40
)

// Title is a loaded and mapped title.
type Title struct {
	Set *romloader.Set
	Map *memorymap.Map
}

// Report returns the output of WriteReport() as a string.
func (t *Title) Report() string {
	s := strings.Builder{}
	_ = t.WriteReport(&s)
	return s.String()
}

// WriteReport writes a description of the title, the validation report of
// every ROM, the memory map, usage statistics and any warnings raised during
// the load.
func (t *Title) WriteReport(output io.Writer) error {
	rec := t.Set.Title

	w := &reportWriter{output: output}
	w.printf("%s\n", rec)
	w.printf("version %s, %s\n", rec.Version, rec.Region)
	w.printf("%s\n", rec.System)
	w.printf("state: %s\n", t.Set.State)

	w.printf("\n")
	if w.err == nil {
		w.err = validation.WriteReports(output, t.Set.Reports())
	}

	w.printf("\nmemory map\n")
	w.printf("%s", t.Map.Summary())
	w.printf("%s", t.Map.Stats())

	if len(t.Set.Warnings) > 0 {
		w.printf("\nwarnings\n")
		for _, s := range t.Set.Warnings {
			w.printf("  %s\n", s)
		}
	}

	w.printf("\nentropy\n")
	if w.err == nil {
		w.err = t.writeEntropy(output)
	}

	return w.err
}

// writeEntropy draws a histogram of the entropy of every ROM in the title.
func (t *Title) writeEntropy(output io.Writer) error {
	var e []float64
	for _, r := range t.Set.Reports() {
		e = append(e, r.Entropy)
	}

	if len(e) == 0 {
		_, err := io.WriteString(output, "no roms\n")
		return err
	}

	distinct := false
	for _, v := range e[1:] {
		if v != e[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		_, err := fmt.Fprintf(output, "%.2f bits per byte for %d roms\n", e[0], len(e))
		return err
	}

	h := histogram.Hist(histogramBins, e)
	return histogram.Fprint(output, h, histogram.Linear(histogramWidth))
}

// reportWriter stops writing after the first error.
type reportWriter struct {
	output io.Writer
	err    error
}

func (w *reportWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.output, format, args...)
}

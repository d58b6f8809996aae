// Package histogram renders count arrays as aligned text bar charts.
package histogram

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// BarMax is the bar width, in glyphs, of the row holding the largest count.
const BarMax = 50

// BarGlyph is the unit a bar is drawn with.
const BarGlyph = "█"

// Labels selects how histogram rows are labelled: either caller-supplied
// strings (Labeled) or the row index (Indexed).
type Labels interface {
	isLabels()
}

// LabeledRows labels row i with Names[i].
type LabeledRows struct {
	Names []string
}

// IndexedRows labels row i with the decimal string of i.
type IndexedRows struct{}

func (LabeledRows) isLabels() {}
func (IndexedRows) isLabels() {}

// Labeled returns Labels that use names, one per count.
func Labeled(names []string) Labels { return LabeledRows{Names: names} }

// Indexed returns Labels that use the row index.
func Indexed() Labels { return IndexedRows{} }

// FaceLabels returns "1".."n".
func FaceLabels(n int) []string {
	if n < 1 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

// Row is one rendered histogram line before formatting.
type Row struct {
	Label   string
	Indexed bool
	Count   int64
	// Percent is Count/total*100, or NaN when total is zero.
	Percent float64
	// Bar is the bar length in glyphs.
	Bar int
}

// Rows computes one Row per count.
//
// Precondition: when labels is LabeledRows, len(Names) == len(counts); labels
// must be non-nil. Panics otherwise.
// Postcondition: the row with the largest positive count has Bar == BarMax.
func Rows(counts []int64, labels Labels, total int64) []Row {
	var maxCount int64
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	label := labelFunc(labels, len(counts))

	rows := make([]Row, len(counts))
	for i, c := range counts {
		pct := math.NaN()
		if total != 0 {
			pct = float64(c) / float64(total) * 100
		}
		text, indexed := label(i)
		rows[i] = Row{
			Label:   text,
			Indexed: indexed,
			Count:   c,
			Percent: pct,
			Bar:     int(math.Round(float64(c) / float64(maxCount) * BarMax)),
		}
	}
	return rows
}

func labelFunc(labels Labels, n int) func(int) (string, bool) {
	switch l := labels.(type) {
	case LabeledRows:
		if len(l.Names) != n {
			panic(fmt.Sprintf("histogram: Rows precondition violated: %d labels for %d counts", len(l.Names), n))
		}
		return func(i int) (string, bool) { return l.Names[i], false }
	case IndexedRows:
		return func(i int) (string, bool) { return strconv.Itoa(i), true }
	default:
		panic(fmt.Sprintf("histogram: unknown Labels variant %T", labels))
	}
}

// String formats the row as "label: count (pct%) bar". Indexed rows are
// prefixed with "k=". An undefined percentage renders as N/A.
func (r Row) String() string {
	var label string
	if r.Indexed {
		label = fmt.Sprintf("k=%2s", r.Label)
	} else {
		label = fmt.Sprintf("%3s", r.Label)
	}
	pct := "    N/A"
	if !math.IsNaN(r.Percent) {
		pct = fmt.Sprintf("%6.2f%%", r.Percent)
	}
	return fmt.Sprintf("%s: %10d (%s) %s", label, r.Count, pct, strings.Repeat(BarGlyph, r.Bar))
}

// Render returns the formatted lines for counts.
//
// Precondition: see Rows.
func Render(counts []int64, labels Labels, total int64) []string {
	rows := Rows(counts, labels, total)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return lines
}

// Write renders counts to w, one row per line.
//
// Precondition: see Rows.
// Postcondition: Returns the first write error, if any.
func Write(w io.Writer, counts []int64, labels Labels, total int64) error {
	for _, line := range Render(counts, labels, total) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing histogram row: %w", err)
		}
	}
	return nil
}

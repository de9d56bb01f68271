package metrics

import (
	"math"
	"strings"

	"github.com/san-kum/sortviz/internal/seq"
)

// Class is an empirical complexity family.
type Class int

const (
	Linear Class = iota
	LogLinear
	Quadratic
)

func (c Class) Notation() string {
	switch c {
	case Linear:
		return "O(n)"
	case LogLinear:
		return "O(n log n)"
	default:
		return "O(n²)"
	}
}

func (c Class) String() string {
	switch c {
	case Linear:
		return "Linear"
	case LogLinear:
		return "Log-linear"
	default:
		return "Quadratic"
	}
}

// FamilyOf maps a documented time complexity such as "O(n log n)" to its
// Class. Only the three families the analyzer can report are recognised.
func FamilyOf(notation string) (Class, bool) {
	switch strings.ReplaceAll(strings.TrimSpace(notation), "^2", "²") {
	case "O(n)":
		return Linear, true
	case "O(n log n)":
		return LogLinear, true
	case "O(n²)":
		return Quadratic, true
	}
	return 0, false
}

const (
	Excellent = "Excellent"
	VeryGood  = "Very Good"
	Average   = "Average"
	Poor      = "Poor"
)

// Report is the post-run classification of a run's operation count.
type Report struct {
	N          int    `json:"n"`
	TotalOps   int    `json:"total_ops"`
	Class      Class  `json:"class"`
	Label      string `json:"label"`
	Scale      string `json:"scale"`
	Efficiency string `json:"efficiency"`
	Note       string `json:"note,omitempty"`
}

// String renders the label with the theoretical-case note, e.g.
// "O(n²) - Quadratic (Matches worst case)".
func (r Report) String() string {
	if r.Note == "" {
		return r.Label
	}
	return r.Label + " (" + r.Note + ")"
}

// Analyze classifies comparisons+swaps against n, n log2 n and n² and notes
// whether the result matches the documented best or worst case.
func Analyze(c seq.Counters, n int, best, worst string) Report {
	total := c.Total()
	fn := float64(n)
	nLogN := 0.0
	if n > 0 {
		nLogN = fn * math.Log2(fn)
	}

	r := Report{N: n, TotalOps: total}
	ops := float64(total)
	switch {
	case ops <= 1.5*fn:
		r.Class, r.Efficiency = Linear, Excellent
	case ops <= 1.5*nLogN:
		r.Class, r.Efficiency = LogLinear, VeryGood
	case ops <= 0.5*fn*fn:
		r.Class, r.Efficiency = Quadratic, Average
	default:
		r.Class, r.Efficiency = Quadratic, Poor
	}
	r.Scale = r.Class.String()
	r.Label = r.Class.Notation() + " - " + r.Class.String()

	bestClass, bestOK := FamilyOf(best)
	worstClass, worstOK := FamilyOf(worst)
	matchBest := bestOK && bestClass == r.Class
	matchWorst := worstOK && worstClass == r.Class
	switch {
	case matchBest && matchWorst:
		r.Note = "Matches best and worst case"
	case matchBest:
		r.Note = "Matches best case"
	case matchWorst:
		r.Note = "Matches worst case"
	}
	return r
}

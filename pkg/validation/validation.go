package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Level indicates which stage produced the result.
type Level string

const (
	LevelInput  Level = "input"
	LevelConfig Level = "config"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding. Field is a dotted path such as
// "scenarios[1].inputs.age".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Field       string   `json:"field"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Zeroed describes an input the engine replaced with 0.
func Zeroed(field string, actual any, why, expected string) Result {
	return Result{
		Level:       LevelInput,
		Message:     fmt.Sprintf("%s %s; treated as 0", field, why),
		Field:       field,
		ActualValue: actual,
		Expected:    expected,
	}
}

// Path joins field segments with dots, skipping empty ones.
func Path(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// Index names the i-th element of a list field: Index("scenarios", 2) is
// "scenarios[2]".
func Index(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	r.MergeAt("", other)
}

// MergeAt merges other with every field re-rooted under prefix, so findings
// about a nested inputs block point at their place in the project.
func (r *Report) MergeAt(prefix string, other *Report) {
	if other == nil {
		return
	}
	r.Errors = appendAt(r.Errors, prefix, other.Errors)
	r.Warnings = appendAt(r.Warnings, prefix, other.Warnings)
	r.Info = appendAt(r.Info, prefix, other.Info)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

func appendAt(dst []Result, prefix string, src []Result) []Result {
	for _, res := range src {
		res.Field = Path(prefix, res.Field)
		dst = append(dst, res)
	}
	return dst
}

// For returns every finding on field, errors first.
func (r *Report) For(field string) []Result {
	var out []Result
	for _, group := range [][]Result{r.Errors, r.Warnings, r.Info} {
		for _, res := range group {
			if res.Field == field {
				out = append(out, res)
			}
		}
	}
	return out
}

// Empty reports whether the report carries no findings at all.
func (r *Report) Empty() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0 && len(r.Info) == 0
}

func (r *Report) updateSummary() {
	if r.Empty() {
		r.Summary = "no findings"
		return
	}
	r.Summary = fmt.Sprintf("%s, %s, %s",
		plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"), plural(len(r.Info), "note"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

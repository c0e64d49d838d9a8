// Package policy checks coverage results against minimum percentages.
package policy

import (
	"fmt"
	"math"

	"github.com/dgallion1/doccover/internal/coverage"
)

// Limits are minimum coverage percentages. Zero disables a limit.
type Limits struct {
	Package   float64 `toml:"package" json:"package"`
	Interface float64 `toml:"interface" json:"interface"`
	Class     float64 `toml:"class" json:"class"`
	Method    float64 `toml:"method" json:"method"`
}

// NoLimits accepts any coverage.
func NoLimits() Limits { return Limits{} }

// Validate rejects limits outside 0..100.
func (l Limits) Validate() error {
	for _, v := range []struct {
		name string
		min  float64
	}{
		{"package", l.Package},
		{"interface", l.Interface},
		{"class", l.Class},
		{"method", l.Method},
	} {
		if v.min < 0 || v.min > 100 || math.IsNaN(v.min) {
			return fmt.Errorf("%s min coverage must be between 0 and 100, got %v", v.name, v.min)
		}
	}
	return nil
}

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Violation is one element whose coverage is below its limit.
type Violation struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Owner    string  `json:"owner,omitempty"`
	Percent  float64 `json:"percent"`
	Required float64 `json:"required"`
}

func (v Violation) String() string {
	name := v.Name
	if v.Owner != "" {
		name = v.Owner + "." + v.Name
	}
	return fmt.Sprintf("%s %s: %.1f%% < %.1f%%", v.Kind, name, v.Percent, v.Required)
}

// Result of evaluating a project.
type Result struct {
	Status     Status      `json:"status"`
	Passed     bool        `json:"passed"`
	Checked    int         `json:"checked"`
	Violations []Violation `json:"violations,omitempty"`
}

// Evaluate checks every package, type and method of project against limits.
// Enums and annotation types use the class limit; constructors use the
// method limit.
func Evaluate(limits Limits, project *coverage.ProjectStats) Result {
	r := Result{Status: StatusPass, Passed: true}
	check := func(n coverage.DocStats, required float64) {
		if required <= 0 {
			return
		}
		r.Checked++
		percent := round1(n.Percent())
		if percent >= required {
			return
		}
		r.Violations = append(r.Violations, Violation{
			Kind:     n.Kind(),
			Name:     n.Name(),
			Owner:    n.Qualifier(),
			Percent:  percent,
			Required: required,
		})
	}

	for _, ps := range project.Packages() {
		check(ps, limits.Package)
		for _, ts := range ps.Types() {
			if ts.Kind() == coverage.KindInterface {
				check(ts, limits.Interface)
			} else {
				check(ts, limits.Class)
			}
			for _, ms := range ts.Constructors() {
				check(ms, limits.Method)
			}
			for _, ms := range ts.Methods() {
				check(ms, limits.Method)
			}
		}
	}

	if len(r.Violations) > 0 {
		r.Status = StatusFail
		r.Passed = false
	}
	return r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/quicklist/tools/dashgen/rules"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other *Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses expr and checks each selected metric against known.
func Expr(where, expr string, known map[string]bool) *Result {
	res := &Result{}
	if expr == "" {
		res.Errors = append(res.Errors, where+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: selector without metric name", where))
			return nil
		}
		if !known[vs.Name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
	return res
}

// panelJSON is the slice of the dashboard model the validator reads. Going
// through JSON keeps it independent of the panel variant types.
type panelJSON struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every target expression of every panel in d.
func Dashboard(d dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}

	data, err := json.Marshal(d)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("reading dashboard: %v", err))
		return res
	}

	var walk func(ps []panelJSON)
	walk = func(ps []panelJSON) {
		for _, p := range ps {
			if p.Type != "row" && len(p.Targets) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
			}
			for i, t := range p.Targets {
				res.merge(Expr(fmt.Sprintf("panel %q target %d", p.Title, i), t.Expr, known))
			}
			walk(p.Panels)
		}
	}
	walk(doc.Panels)

	return res
}

// Rules validates every rule expression in cr. Recording rule names are
// added to known so later rules and dashboards may reference them.
func Rules(cr *rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}
	for _, r := range cr.All() {
		name := r.Name()
		switch {
		case name == "":
			res.Errors = append(res.Errors, fmt.Sprintf("rule with expr %q has no name", r.Expr))
		case r.Record != "" && r.Alert != "":
			res.Errors = append(res.Errors, fmt.Sprintf("rule %q sets both record and alert", name))
		}
		res.merge(Expr(fmt.Sprintf("rule %q", name), r.Expr, known))
		if r.Record != "" {
			known[r.Record] = true
		}
		if r.Alert != "" && r.Labels["severity"] == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("alert %q has no severity", name))
		}
	}
	return res
}

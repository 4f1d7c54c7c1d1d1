// Package rules builds the quicklist recording and alert rules as Prometheus
// Operator PrometheusRule resources.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// Selector is the label the Prometheus instance selects rule resources by.
	Selector = "system-rules-prometheus"
)

// PrometheusRule is a monitoring.coreos.com/v1 PrometheusRule resource.
type PrometheusRule struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata is the object metadata written for a rule resource.
type Metadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// Spec holds the rule groups.
type Spec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as one unit by Prometheus.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record and Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Name returns the record or alert name.
func (r Rule) Name() string {
	if r.Record != "" {
		return r.Record
	}
	return r.Alert
}

// All returns every rule across the groups of cr.
func (cr *PrometheusRule) All() []Rule {
	var out []Rule
	for _, g := range cr.Spec.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

func newResource(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: Metadata{
			Name:   name,
			Labels: map[string]string{"prometheus": Selector},
		},
		Spec: Spec{Groups: groups},
	}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, forDuration, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDuration,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

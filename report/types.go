package report

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Metric is a float that survives JSON encoding when it is NaN or ±Inf:
// non-finite values are written as the strings "NaN", "+Inf" and "-Inf".
type Metric float64

// MarshalJSON implements json.Marshaler.
func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metric) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*m = Metric(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Metric(f)

	return nil
}

// BusRow is the per-bus line of the report.
type BusRow struct {
	ID             int    `json:"id" yaml:"id"`
	Degree         Metric `json:"degree" yaml:"degree"`
	Eigenvector    Metric `json:"eigenvector" yaml:"eigenvector"`
	Betweenness    Metric `json:"betweenness" yaml:"betweenness"`
	Closeness      Metric `json:"closeness" yaml:"closeness"`
	Clustering     Metric `json:"clustering" yaml:"clustering"`
	SelfAdmittance Metric `json:"self_admittance" yaml:"self_admittance"`
}

// BranchRow is the per-branch line of the report.
type BranchRow struct {
	Index           int     `json:"index" yaml:"index"`
	From            int     `json:"from" yaml:"from"`
	To              int     `json:"to" yaml:"to"`
	DegreeProduct   Metric  `json:"degree_product" yaml:"degree_product"`
	EdgeBetweenness Metric  `json:"edge_betweenness" yaml:"edge_betweenness"`
	CascadeCount    int     `json:"cascade_count" yaml:"cascade_count"`
	TotalShed       Metric  `json:"total_shed" yaml:"total_shed"`
}

// Counters are the run-level scenario counts.
type Counters struct {
	ScenarioCount       int `json:"scenario_count" yaml:"scenario_count"`
	ValidCascadeSamples int `json:"valid_cascade_samples" yaml:"valid_cascade_samples"`
	FailedSamples       int `json:"failed_samples" yaml:"failed_samples"`
	NoCascadeSamples    int `json:"no_cascade_samples" yaml:"no_cascade_samples"`
}

// Report is the Resilience Report. Buses and Branches follow network order.
type Report struct {
	RunID     uuid.UUID   `json:"run_id" yaml:"run_id"`
	CaseName  string      `json:"case_name,omitempty" yaml:"case_name,omitempty"`
	Mode      string      `json:"mode" yaml:"mode"`
	Seed      int64       `json:"seed" yaml:"seed"`
	Buses     []BusRow    `json:"buses" yaml:"buses"`
	Branches  []BranchRow `json:"branches" yaml:"branches"`
	Counters  Counters    `json:"counters" yaml:"counters"`
	Scenarios [][]int     `json:"scenarios" yaml:"scenarios"`
	Notes     []string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

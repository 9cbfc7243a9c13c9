package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders r in format f.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatTable:
		return WriteTable(w, r, false)
	case FormatMarkdown:
		return WriteTable(w, r, true)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteYAML writes r as YAML. Non-finite metrics use YAML's .nan/.inf.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// WriteTable renders the summary, bus and branch tables; markdown selects
// GitHub-flavoured output. The scenario list is omitted.
func WriteTable(w io.Writer, r *Report, markdown bool) error {
	render := func(t table.Writer) string {
		if markdown {
			return t.RenderMarkdown()
		}
		t.SetStyle(table.StyleLight)
		return t.Render()
	}
	right := func(cols ...int) []table.ColumnConfig {
		cfgs := make([]table.ColumnConfig, len(cols))
		for i, c := range cols {
			cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
		}
		return cfgs
	}

	sum := table.NewWriter()
	sum.AppendHeader(table.Row{"run", "case", "mode", "seed", "scenarios", "valid cascade", "failed", "no cascade"})
	sum.AppendRow(table.Row{
		r.RunID.String(), r.CaseName, r.Mode, r.Seed,
		r.Counters.ScenarioCount, r.Counters.ValidCascadeSamples,
		r.Counters.FailedSamples, r.Counters.NoCascadeSamples,
	})

	buses := table.NewWriter()
	buses.AppendHeader(table.Row{"bus", "degree", "eigenvector", "betweenness", "closeness", "clustering", "self admittance"})
	for _, b := range r.Buses {
		buses.AppendRow(table.Row{b.ID, num(b.Degree), num(b.Eigenvector), num(b.Betweenness),
			num(b.Closeness), num(b.Clustering), num(b.SelfAdmittance)})
	}
	buses.SetColumnConfigs(right(2, 3, 4, 5, 6, 7))

	branches := table.NewWriter()
	branches.AppendHeader(table.Row{"#", "from", "to", "degree product", "edge betweenness", "cascades", "total shed"})
	for _, b := range r.Branches {
		branches.AppendRow(table.Row{b.Index, b.From, b.To, num(b.DegreeProduct), num(b.EdgeBetweenness),
			b.CascadeCount, num(b.TotalShed)})
	}
	branches.SetColumnConfigs(right(4, 5, 6, 7))

	var sb strings.Builder
	for _, t := range []table.Writer{sum, buses, branches} {
		sb.WriteString(render(t))
		sb.WriteString("\n\n")
	}
	for _, n := range r.Notes {
		sb.WriteString("note: ")
		sb.WriteString(n)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func num(m Metric) string {
	return strconv.FormatFloat(float64(m), 'f', 4, 64)
}

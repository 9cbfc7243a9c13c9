// Package caseio reads and writes network cases as YAML or JSON documents.
//
// Document shape (YAML shown; JSON uses the same keys):
//
//	name: three-bus
//	base_mva: 100
//	buses:
//	  - {id: 1, type: ref, gen_mw: 100}
//	  - {id: 2, load_mw: 40}
//	branches:
//	  - {from: 1, to: 2, x: 0.1, rate_mw: 80}
//
// Bus and branch order in the document is preserved in the Network.
package caseio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridres/network"
)

// ErrUnknownFormat is returned for a file extension other than .yaml, .yml or .json.
var ErrUnknownFormat = errors.New("caseio: unknown case format")

// Format is a case encoding.
type Format int

const (
	YAML Format = iota + 1
	JSON
)

// Case is the on-disk document.
type Case struct {
	Name     string       `yaml:"name" json:"name"`
	BaseMVA  float64      `yaml:"base_mva,omitempty" json:"base_mva,omitempty"`
	Buses    []CaseBus    `yaml:"buses" json:"buses"`
	Branches []CaseBranch `yaml:"branches" json:"branches"`
}

// CaseBus is one bus entry.
type CaseBus struct {
	ID     int     `yaml:"id" json:"id"`
	Type   string  `yaml:"type,omitempty" json:"type,omitempty"`
	LoadMW float64 `yaml:"load_mw,omitempty" json:"load_mw,omitempty"`
	GenMW  float64 `yaml:"gen_mw,omitempty" json:"gen_mw,omitempty"`
}

// CaseBranch is one branch entry; X is the series reactance.
type CaseBranch struct {
	From   int     `yaml:"from" json:"from"`
	To     int     `yaml:"to" json:"to"`
	X      float64 `yaml:"x" json:"x"`
	RateMW float64 `yaml:"rate_mw,omitempty" json:"rate_mw,omitempty"`
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads a case file and builds its Network. The network is not
// validated beyond what network.Build enforces; callers run Validate.
func Load(path string) (*network.Network, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", path, err)
	}
	n, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}

	return n, nil
}

// Decode parses a case document from r.
func Decode(r io.Reader, f Format) (*network.Network, error) {
	var c Case
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	return c.Network()
}

// Network converts the document into a network.Network.
func (c Case) Network() (*network.Network, error) {
	opts := []network.Option{network.WithName(c.Name)}
	if c.BaseMVA > 0 {
		opts = append(opts, network.WithBaseMVA(c.BaseMVA))
	}
	buses := make([]network.Bus, len(c.Buses))
	for i, b := range c.Buses {
		t, err := network.ParseBusType(b.Type)
		if err != nil {
			return nil, fmt.Errorf("bus %d: %w", b.ID, err)
		}
		buses[i] = network.Bus{ID: b.ID, Type: t, LoadMW: b.LoadMW, GenMW: b.GenMW}
	}
	branches := make([]network.Branch, len(c.Branches))
	for k, br := range c.Branches {
		branches[k] = network.Branch{From: br.From, To: br.To, Reactance: br.X, RateMW: br.RateMW}
	}

	return network.Build(buses, branches, opts...)
}

// FromNetwork captures n as a document.
func FromNetwork(n *network.Network) Case {
	c := Case{Name: n.Name(), BaseMVA: n.BaseMVA()}
	for _, b := range n.Buses() {
		c.Buses = append(c.Buses, CaseBus{ID: b.ID, Type: strings.ToLower(b.Type.String()), LoadMW: b.LoadMW, GenMW: b.GenMW})
	}
	for _, br := range n.Branches() {
		c.Branches = append(c.Branches, CaseBranch{From: br.From, To: br.To, X: br.Reactance, RateMW: br.RateMW})
	}

	return c
}

// Encode writes n to w in format f.
func Encode(w io.Writer, n *network.Network, f Format) error {
	c := FromNetwork(n)
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		return ErrUnknownFormat
	}
}

// Save writes n to path, choosing the format from the extension.
func Save(path string, n *network.Network) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, n, f); err != nil {
		return fmt.Errorf("encode case %s: %w", path, err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

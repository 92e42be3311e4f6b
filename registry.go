// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ModeDef is one entry of a mode table: the layout line for a mode plus the
// format metadata the table declares about it.
type ModeDef struct {
	Mode         uint8  `json:"mode" yaml:"mode"`
	Layout       string `json:"layout" yaml:"layout"`
	EndpointBits int    `json:"endpoint_bits,omitempty" yaml:"endpoint_bits,omitempty"`
	DeltaBits    []int  `json:"delta_bits,omitempty" yaml:"delta_bits,omitempty"` // R, G, B
	PayloadBits  int    `json:"payload_bits,omitempty" yaml:"payload_bits,omitempty"`
	Partitioned  bool   `json:"partitioned,omitempty" yaml:"partitioned,omitempty"`
	Transformed  bool   `json:"transformed,omitempty" yaml:"transformed,omitempty"`
}

// channelWidths derives the expected per-channel destination widths from the
// declared metadata: endpoint 0 carries full endpoint values, the remaining
// endpoints carry per-channel deltas. Partitioned modes have four endpoints,
// single-region modes two.
func (d ModeDef) channelWidths() ChannelWidths {
	endpoints := 2
	if d.Partitioned {
		endpoints = 4
	}
	channels := [3]Channel{ChannelRed, ChannelGreen, ChannelBlue}

	w := make(ChannelWidths, endpoints*len(channels))
	for ep := 0; ep < endpoints; ep++ {
		for ci, ch := range channels {
			bits := d.EndpointBits
			if ep > 0 {
				bits = d.DeltaBits[ci]
			}
			w[ChannelKey{Endpoint: ep, Channel: ch}] = bits
		}
	}
	return w
}

// TableDef is a versioned mode table: the full set of layout lines for one
// block format. It is the single input to registry assembly; the package
// keeps no other process-wide state.
type TableDef struct {
	Name    string    `json:"name" yaml:"name"`
	Version int       `json:"version,omitempty" yaml:"version,omitempty"`
	Modes   []ModeDef `json:"modes" yaml:"modes"`
}

// ParseTable parses a mode table from a YAML document.
func ParseTable(data string) (*TableDef, error) {
	var table TableDef
	if err := yaml.Unmarshal([]byte(data), &table); err != nil {
		return nil, fmt.Errorf("failed to parse mode table: %w", err)
	}
	if len(table.Modes) == 0 {
		return nil, fmt.Errorf("mode table %q declares no modes", table.Name)
	}
	return &table, nil
}

// Registry maps mode identifiers to their compiled extraction programs.
// It is immutable after assembly and safe for concurrent readers.
type Registry struct {
	name     string
	version  int
	programs map[uint8]*ModeProgram
	defs     map[uint8]ModeDef
}

// NewRegistry compiles every table entry and assembles the mode registry.
// Assembly is all-or-nothing: a duplicate mode identifier yields a
// ConflictError, a bad layout line a FormatError, and a program that does
// not match the entry's declared metadata a CompileError.
func NewRegistry(table *TableDef) (*Registry, error) {
	r := &Registry{
		name:     table.Name,
		version:  table.Version,
		programs: make(map[uint8]*ModeProgram, len(table.Modes)),
		defs:     make(map[uint8]ModeDef, len(table.Modes)),
	}

	for _, def := range table.Modes {
		if _, dup := r.programs[def.Mode]; dup {
			return nil, &ConflictError{Mode: def.Mode}
		}

		tokens, err := ParseLine(def.Layout)
		if err != nil {
			return nil, fmt.Errorf("mode %d: %w", def.Mode, err)
		}
		prog, err := CompileProgram(def.Mode, tokens)
		if err != nil {
			return nil, err
		}

		if def.PayloadBits != 0 && prog.PayloadBits != def.PayloadBits {
			return nil, &CompileError{
				Mode:   def.Mode,
				Reason: fmt.Sprintf("layout consumes %d bits, table declares %d", prog.PayloadBits, def.PayloadBits),
			}
		}
		if def.EndpointBits > 0 && len(def.DeltaBits) == 3 {
			if err := prog.Verify(def.channelWidths()); err != nil {
				return nil, err
			}
		}

		r.programs[def.Mode] = prog
		r.defs[def.Mode] = def
	}

	return r, nil
}

// Name returns the table name the registry was assembled from.
func (r *Registry) Name() string { return r.name }

// Version returns the table version the registry was assembled from.
func (r *Registry) Version() int { return r.version }

// Lookup returns the compiled program for a mode identifier.
func (r *Registry) Lookup(mode uint8) (*ModeProgram, bool) {
	prog, ok := r.programs[mode]
	return prog, ok
}

// Info returns the table entry a mode was compiled from.
func (r *Registry) Info(mode uint8) (ModeDef, bool) {
	def, ok := r.defs[mode]
	return def, ok
}

// Modes returns the supported mode identifiers in ascending order.
func (r *Registry) Modes() []uint8 {
	modes := make([]uint8, 0, len(r.programs))
	for mode := range r.programs {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// SelectMode reads the mode selector from the head of a packed block and
// normalizes it: a 5-bit value with bit 1 clear is truncated to its 2-bit
// form. The second result reports whether the registry supports the mode;
// reserved identifiers (19, 23, 27, 31) report false.
func (r *Registry) SelectMode(block []byte) (uint8, bool) {
	if len(block) == 0 {
		return 0, false
	}
	mode := uint8(ReadBits(block, 0, 5))
	if mode&0x2 == 0 {
		mode &= 0x1
	}
	_, ok := r.programs[mode]
	return mode, ok
}

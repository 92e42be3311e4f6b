// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ChannelKey identifies one destination channel of one endpoint.
type ChannelKey struct {
	Endpoint int
	Channel  Channel
}

// ChannelWidths declares the expected bit width of every destination
// channel a mode's program may write.
type ChannelWidths map[ChannelKey]int

// Verify checks the program against the declared channel widths: every
// destination bit of every channel must be written exactly once, source
// offsets must be non-decreasing, and no read may run past the payload.
// A defect is reported as a CompileError.
func (p *ModeProgram) Verify(widths ChannelWidths) error {
	cover := make(map[ChannelKey]*bitset.BitSet, len(widths))

	prev := 0
	for _, op := range p.Ops {
		if op.SourceBit < prev {
			return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("source cursor rewinds at bit %d", op.SourceBit)}
		}
		prev = op.SourceBit
		if op.SourceBit+op.NumBits > p.PayloadBits {
			return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("read at bit %d overruns the %d-bit payload", op.SourceBit, p.PayloadBits)}
		}

		key := ChannelKey{Endpoint: op.Endpoint, Channel: op.Channel}
		width, ok := widths[key]
		if !ok {
			return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("unexpected destination %s%d", op.Channel, op.Endpoint)}
		}
		bs := cover[key]
		if bs == nil {
			bs = bitset.New(uint(width))
			cover[key] = bs
		}
		for b := op.DestBit; b < op.DestBit+op.NumBits; b++ {
			if b >= width {
				return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("%s%d bit %d beyond declared width %d", op.Channel, op.Endpoint, b, width)}
			}
			if bs.Test(uint(b)) {
				return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("%s%d bit %d written twice", op.Channel, op.Endpoint, b)}
			}
			bs.Set(uint(b))
		}
	}

	for key, width := range widths {
		bs := cover[key]
		if bs == nil || bs.Count() != uint(width) {
			covered := uint(0)
			if bs != nil {
				covered = bs.Count()
			}
			return &CompileError{Mode: p.Mode, Reason: fmt.Sprintf("%s%d covers %d of %d bits", key.Channel, key.Endpoint, covered, width)}
		}
	}
	return nil
}

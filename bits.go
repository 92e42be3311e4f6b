// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import "fmt"

// ReadBits reads numBits contiguous bits starting at bitOffset from the
// block, least-significant-bit-first within the block. numBits must be at
// most 32 and bitOffset+numBits must not exceed the block's bit width.
func ReadBits(block []byte, bitOffset, numBits int) uint32 {
	var v uint32
	for i := 0; i < numBits; i++ {
		bit := bitOffset + i
		if block[bit>>3]>>(uint(bit)&7)&1 == 1 {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Color holds one endpoint's quantized channel values as extracted from the
// block. Endpoint 0 holds full values; the remaining endpoints hold raw
// per-channel deltas in transformed modes.
type Color struct {
	R, G, B uint16
}

// Apply runs the extraction program against a packed block and returns the
// reconstructed endpoint values. Endpoints the mode does not use stay zero.
func (p *ModeProgram) Apply(block []byte) ([4]Color, error) {
	var colors [4]Color
	if len(block)*8 < p.PayloadBits {
		return colors, fmt.Errorf("block too short: program needs %d bits, block has %d", p.PayloadBits, len(block)*8)
	}

	for _, op := range p.Ops {
		v := uint16(ReadBits(block, op.SourceBit, op.NumBits)) << uint(op.DestBit)
		c := &colors[op.Endpoint]
		switch op.Channel {
		case ChannelRed:
			c.R |= v
		case ChannelGreen:
			c.G |= v
		case ChannelBlue:
			c.B |= v
		}
	}
	return colors, nil
}

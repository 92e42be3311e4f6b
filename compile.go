// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import "fmt"

// ExtractionOp is one instruction of a compiled mode program: read NumBits
// contiguous bits at SourceBit from the packed block and OR them into the
// destination channel value, shifted left by DestBit.
type ExtractionOp struct {
	SourceBit int
	NumBits   int
	Endpoint  int
	Channel   Channel
	DestBit   int
}

// ModeProgram is the ordered extraction program for one mode. It is built
// once during registry assembly and never mutated afterwards, so it is safe
// to share across concurrent decoders.
type ModeProgram struct {
	Mode         uint8
	SelectorBits int // bits consumed by the mode selector field(s)
	PayloadBits  int // cursor position after the last token
	Ops          []ExtractionOp
}

// CompileProgram consumes one token sequence and emits the ordered
// extraction program for the given mode. The bit cursor starts at 0,
// advances by each field's width in token order, and never rewinds.
//
// A forward field becomes a single op writing at the low end of its range.
// A reversed field expands into one op per bit: the first bit read from the
// stream lands at the highest destination bit of the range, each subsequent
// bit one position lower. Mode-selector fields advance the cursor without
// emitting ops.
func CompileProgram(mode uint8, tokens []FieldToken) (*ModeProgram, error) {
	prog := &ModeProgram{Mode: mode}

	cursor := 0
	for i, tok := range tokens {
		head, tail := int(tok.Head), int(tok.Tail)
		reversed := head < tail
		low, high := head, tail
		if !reversed {
			low, high = tail, head
		}
		numbits := high - low + 1

		switch tok.Channel {
		case ChannelSelector:
			if tok.Endpoint >= 0 {
				return nil, &CompileError{Mode: mode, Reason: fmt.Sprintf("field %d: mode selector carries an endpoint index", i)}
			}
			prog.SelectorBits += numbits
			cursor += numbits
			continue
		case ChannelRed, ChannelGreen, ChannelBlue:
			if tok.Endpoint < 0 || tok.Endpoint > 3 {
				return nil, &CompileError{Mode: mode, Reason: fmt.Sprintf("field %d: color channel without a valid endpoint index", i)}
			}
		default:
			return nil, &CompileError{Mode: mode, Reason: fmt.Sprintf("field %d: unknown channel %q", i, tok.Channel)}
		}

		if reversed {
			for j := 0; j < numbits; j++ {
				prog.Ops = append(prog.Ops, ExtractionOp{
					SourceBit: cursor + j,
					NumBits:   1,
					Endpoint:  tok.Endpoint,
					Channel:   tok.Channel,
					DestBit:   high - j,
				})
			}
		} else {
			prog.Ops = append(prog.Ops, ExtractionOp{
				SourceBit: cursor,
				NumBits:   numbits,
				Endpoint:  tok.Endpoint,
				Channel:   tok.Channel,
				DestBit:   low,
			})
		}
		cursor += numbits
	}

	prog.PayloadBits = cursor
	return prog, nil
}

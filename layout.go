// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

// Package layout compiles BC6H block bit-layout descriptions into per-mode
// extraction programs. A layout line describes, field by field, how a packed
// 128-bit block's bits map onto color-endpoint channels; the compiler turns
// each line into an ordered list of bit-extraction operations that a decoder
// replays against a block to reconstruct the quantized endpoint values.
package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// Channel identifies the destination of a layout field.
type Channel string

const (
	// ChannelSelector is the mode-selector pseudo channel. Its bits are
	// consumed from the stream but never written to an endpoint.
	ChannelSelector Channel = "m"
	ChannelRed      Channel = "r"
	ChannelGreen    Channel = "g"
	ChannelBlue     Channel = "b"
)

// FieldToken is one parsed element of a layout line.
//
// Head and Tail are the two bit indices exactly as written in the source
// text, both inclusive. Their written order is load-bearing: a field written
// low-bit-first is a reversed range and is scattered bit-by-bit into the
// destination in the opposite order of a normal field.
type FieldToken struct {
	Channel  Channel
	Endpoint int // 0-3; -1 for the mode selector
	Head     uint8
	Tail     uint8
}

// Reversed reports whether the token's range was written low-bit-first.
func (t FieldToken) Reversed() bool {
	return t.Head < t.Tail
}

// NumBits returns the width of the field in bits.
func (t FieldToken) NumBits() int {
	if t.Head >= t.Tail {
		return int(t.Head-t.Tail) + 1
	}
	return int(t.Tail-t.Head) + 1
}

var fieldPattern = regexp.MustCompile(`^([a-z])(\d?)\[(\d+)(?::(\d+))?\]$`)

// ParseLine parses one comma-separated layout line into an ordered token
// sequence. Order is preserved exactly; it defines cursor advancement during
// compilation. Any element that does not match the field grammar fails the
// whole line with a FormatError.
func ParseLine(line string) ([]FieldToken, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &FormatError{Field: line, Reason: "empty layout line"}
	}

	parts := strings.Split(line, ",")
	tokens := make([]FieldToken, 0, len(parts))
	for _, part := range parts {
		tok, err := parseField(part)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// parseField parses a single `<letter><digit?>[<bit>]` or
// `<letter><digit?>[<high>:<low>]` element.
func parseField(text string) (FieldToken, error) {
	m := fieldPattern.FindStringSubmatch(text)
	if m == nil {
		return FieldToken{}, &FormatError{Field: text, Reason: "does not match the field grammar"}
	}

	ch := Channel(m[1])
	switch ch {
	case ChannelSelector:
		if m[2] != "" {
			return FieldToken{}, &FormatError{Field: text, Reason: "mode selector takes no endpoint index"}
		}
	case ChannelRed, ChannelGreen, ChannelBlue:
		if m[2] == "" {
			return FieldToken{}, &FormatError{Field: text, Reason: "color channel requires an endpoint index"}
		}
	default:
		return FieldToken{}, &FormatError{Field: text, Reason: "unknown channel letter"}
	}

	endpoint := -1
	if m[2] != "" {
		endpoint, _ = strconv.Atoi(m[2])
		if endpoint > 3 {
			return FieldToken{}, &FormatError{Field: text, Reason: "endpoint index out of range"}
		}
	}

	head, _ := strconv.Atoi(m[3])
	tail := head
	if m[4] != "" {
		tail, _ = strconv.Atoi(m[4])
	}
	if head > 0xFF || tail > 0xFF {
		return FieldToken{}, &FormatError{Field: text, Reason: "bit index out of range"}
	}

	return FieldToken{
		Channel:  ch,
		Endpoint: endpoint,
		Head:     uint8(head),
		Tail:     uint8(tail),
	}, nil
}

// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FieldToken
	}{
		{"forward range", "r0[9:0]", FieldToken{Channel: ChannelRed, Endpoint: 0, Head: 9, Tail: 0}},
		{"single bit", "g2[4]", FieldToken{Channel: ChannelGreen, Endpoint: 2, Head: 4, Tail: 4}},
		{"reversed range", "b0[10:15]", FieldToken{Channel: ChannelBlue, Endpoint: 0, Head: 10, Tail: 15}},
		{"mode selector", "m[4:0]", FieldToken{Channel: ChannelSelector, Endpoint: -1, Head: 4, Tail: 0}},
		{"short selector", "m[1:0]", FieldToken{Channel: ChannelSelector, Endpoint: -1, Head: 1, Tail: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseField(tt.text)
			if err != nil {
				t.Fatalf("parseField(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseField(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown channel letter", "z[3:0]"},
		{"missing endpoint on color", "r[3:0]"},
		{"endpoint on selector", "m0[1:0]"},
		{"endpoint out of range", "r4[3:0]"},
		{"missing brackets", "r0"},
		{"non-numeric range", "r0[a:0]"},
		{"empty element", ""},
		{"trailing garbage", "r0[3:0]x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseField(tt.text)
			if err == nil {
				t.Fatalf("parseField(%q) succeeded, want FormatError", tt.text)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Errorf("parseField(%q) error = %T, want *FormatError", tt.text, err)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	tokens, err := ParseLine("m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[9:0],g1[9:0],b1[9:0]")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if len(tokens) != 7 {
		t.Fatalf("ParseLine() returned %d tokens, want 7", len(tokens))
	}

	// Source order is load-bearing.
	wantChannels := []Channel{ChannelSelector, ChannelRed, ChannelGreen, ChannelBlue, ChannelRed, ChannelGreen, ChannelBlue}
	wantEndpoints := []int{-1, 0, 0, 0, 1, 1, 1}
	for i, tok := range tokens {
		if tok.Channel != wantChannels[i] {
			t.Errorf("token %d channel = %q, want %q", i, tok.Channel, wantChannels[i])
		}
		if tok.Endpoint != wantEndpoints[i] {
			t.Errorf("token %d endpoint = %d, want %d", i, tok.Endpoint, wantEndpoints[i])
		}
	}
}

func TestParseLineRejectsWholeLine(t *testing.T) {
	_, err := ParseLine("m[4:0],r0[9:0],z[3:0]")
	if err == nil {
		t.Fatal("ParseLine() succeeded on a line with an invalid field")
	}
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("ParseLine() error = %T, want *FormatError", err)
	}
	if ferr.Field != "z[3:0]" {
		t.Errorf("FormatError.Field = %q, want %q", ferr.Field, "z[3:0]")
	}
}

func TestFieldTokenDirection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		reversed bool
		numBits  int
	}{
		{"high first is forward", "r1[5:0]", false, 6},
		{"low first is reversed", "r0[10:15]", true, 6},
		{"single bit is forward", "g2[5]", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := parseField(tt.text)
			if err != nil {
				t.Fatalf("parseField(%q) error = %v", tt.text, err)
			}
			if tok.Reversed() != tt.reversed {
				t.Errorf("Reversed() = %v, want %v", tok.Reversed(), tt.reversed)
			}
			if tok.NumBits() != tt.numBits {
				t.Errorf("NumBits() = %d, want %d", tok.NumBits(), tt.numBits)
			}
		})
	}
}

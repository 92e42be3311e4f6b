// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

// BuiltinTable returns the BC6H mode table as defined by the BPTC
// specification (ARB_texture_compression_bptc). Modes 0 and 1 use a 2-bit
// selector, all others a 5-bit selector; the identifiers never collide
// because a 5-bit selector value with bit 1 clear is by definition a 2-bit
// selector. Identifiers 19, 23, 27 and 31 are reserved and absent.
//
// Partitioned modes carry four endpoints and a 77-bit header payload;
// single-region modes carry two endpoints and a 65-bit header payload.
func BuiltinTable() *TableDef {
	return &TableDef{
		Name:    "bc6h",
		Version: 1,
		Modes: []ModeDef{
			{
				Mode:         0,
				Layout:       "m[1:0],g2[4],b2[4],b3[4],r0[9:0],g0[9:0],b0[9:0],r1[4:0],g3[4],g2[3:0],g1[4:0],b3[0],g3[3:0],b1[4:0],b3[1],b2[3:0],r2[4:0],b3[2],r3[4:0],b3[3]",
				EndpointBits: 10,
				DeltaBits:    []int{5, 5, 5},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         1,
				Layout:       "m[1:0],g2[5],g3[4],g3[5],r0[6:0],b3[0],b3[1],b2[4],g0[6:0],b2[5],b3[2],g2[4],b0[6:0],b3[3],b3[5],b3[4],r1[5:0],g2[3:0],g1[5:0],g3[3:0],b1[5:0],b2[3:0],r2[5:0],r3[5:0]",
				EndpointBits: 7,
				DeltaBits:    []int{6, 6, 6},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         2,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[4:0],r0[10],g2[3:0],g1[3:0],g0[10],b3[0],g3[3:0],b1[3:0],b0[10],b3[1],b2[3:0],r2[4:0],b3[2],r3[4:0],b3[3]",
				EndpointBits: 11,
				DeltaBits:    []int{5, 4, 4},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         3,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[9:0],g1[9:0],b1[9:0]",
				EndpointBits: 10,
				DeltaBits:    []int{10, 10, 10},
				PayloadBits:  65,
			},
			{
				Mode:         6,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[3:0],r0[10],g3[4],g2[3:0],g1[4:0],g0[10],g3[3:0],b1[3:0],b0[10],b3[1],b2[3:0],r2[3:0],b3[0],b3[2],r3[3:0],g2[4],b3[3]",
				EndpointBits: 11,
				DeltaBits:    []int{4, 5, 4},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         7,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[8:0],r0[10],g1[8:0],g0[10],b1[8:0],b0[10]",
				EndpointBits: 11,
				DeltaBits:    []int{9, 9, 9},
				PayloadBits:  65,
				Transformed:  true,
			},
			{
				Mode:         10,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[3:0],r0[10],b2[4],g2[3:0],g1[3:0],g0[10],b3[0],g3[3:0],b1[4:0],b0[10],b2[3:0],r2[3:0],b3[1],b3[2],r3[3:0],b3[4],b3[3]",
				EndpointBits: 11,
				DeltaBits:    []int{4, 4, 5},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         11,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[7:0],r0[10:11],g1[7:0],g0[10:11],b1[7:0],b0[10:11]",
				EndpointBits: 12,
				DeltaBits:    []int{8, 8, 8},
				PayloadBits:  65,
				Transformed:  true,
			},
			{
				Mode:         14,
				Layout:       "m[4:0],r0[8:0],b2[4],g0[8:0],g2[4],b0[8:0],b3[4],r1[4:0],g3[4],g2[3:0],g1[4:0],b3[0],g3[3:0],b1[4:0],b3[1],b2[3:0],r2[4:0],b3[2],r3[4:0],b3[3]",
				EndpointBits: 9,
				DeltaBits:    []int{5, 5, 5},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         15,
				Layout:       "m[4:0],r0[9:0],g0[9:0],b0[9:0],r1[3:0],r0[10:15],g1[3:0],g0[10:15],b1[3:0],b0[10:15]",
				EndpointBits: 16,
				DeltaBits:    []int{4, 4, 4},
				PayloadBits:  65,
				Transformed:  true,
			},
			{
				Mode:         18,
				Layout:       "m[4:0],r0[7:0],g3[4],b2[4],g0[7:0],b3[2],g2[4],b0[7:0],b3[3],b3[4],r1[5:0],g2[3:0],g1[4:0],b3[0],g3[3:0],b1[4:0],b3[1],b2[3:0],r2[5:0],r3[5:0]",
				EndpointBits: 8,
				DeltaBits:    []int{6, 5, 5},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         22,
				Layout:       "m[4:0],r0[7:0],b3[0],b2[4],g0[7:0],g2[5],g2[4],b0[7:0],g3[5],b3[4],r1[4:0],g3[4],g2[3:0],g1[5:0],g3[3:0],b1[4:0],b3[1],b2[3:0],r2[4:0],b3[2],r3[4:0],b3[3]",
				EndpointBits: 8,
				DeltaBits:    []int{5, 6, 5},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         26,
				Layout:       "m[4:0],r0[7:0],b3[1],b2[4],g0[7:0],b2[5],g2[4],b0[7:0],b3[5],b3[4],r1[4:0],g3[4],g2[3:0],g1[4:0],b3[0],g3[3:0],b1[5:0],b2[3:0],r2[4:0],b3[2],r3[4:0],b3[3]",
				EndpointBits: 8,
				DeltaBits:    []int{5, 5, 6},
				PayloadBits:  77,
				Partitioned:  true,
				Transformed:  true,
			},
			{
				Mode:         30,
				Layout:       "m[4:0],r0[5:0],g3[4],b3[0],b3[1],b2[4],g0[5:0],g2[5],b2[5],b3[2],g2[4],b0[5:0],g3[5],b3[3],b3[5],b3[4],r1[5:0],g2[3:0],g1[5:0],g3[3:0],b1[5:0],b2[3:0],r2[5:0],r3[5:0]",
				EndpointBits: 6,
				DeltaBits:    []int{6, 6, 6},
				PayloadBits:  77,
				Partitioned:  true,
			},
		},
	}
}

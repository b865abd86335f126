// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zigzag implements the zigzag mapping between signed and unsigned
// integers:
//	+0 <--> 0
//	-1 <--> 1
//	+1 <--> 2
//	-2 <--> 3
//	+2 <--> 4
//
// It is the same format used by protocol buffers. The format is described at
// https://protobuf.dev/programming-guides/encoding/#signed-ints
//
// A signed n-bit value x encodes as
//
//	(x >> (n-1)) ^ (x << 1)
//
// where >> is an arithmetic shift, and an unsigned value u decodes as
//
//	(u >> 1) ^ -(u & 1)
//
// where >> is a logical shift. Both directions are total: the minimum signed
// value encodes to the maximum unsigned value and back, at every width.
//
// Each width has its own pair of functions, Itou8/Utoi8 through
// Itou128/Utoi128. Itou and Utoi operate on int and uint, whose width is
// bits.UintSize on the target platform.
package zigzag // import "github.com/quentinmit/zigzag"

import "unsafe"

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// encode and decode must only be instantiated with S and U of equal size.
// The exported wrappers below are the only instantiations.
//
// The shift is n-1 for the instantiated width n. Any count >= n-1 would give
// the same sign fill; n-1 keeps the definition width-exact.
func encode[S signed, U unsigned](i S) U {
	return U(i>>(8*unsafe.Sizeof(i)-1)) ^ U(i<<1)
}

func decode[U unsigned, S signed](u U) S {
	return S(u>>1) ^ -S(u&1)
}

func Itou8(i int8) uint8 { return encode[int8, uint8](i) }

func Utoi8(u uint8) int8 { return decode[uint8, int8](u) }

func Itou16(i int16) uint16 { return encode[int16, uint16](i) }

func Utoi16(u uint16) int16 { return decode[uint16, int16](u) }

func Itou32(i int32) uint32 { return encode[int32, uint32](i) }

func Utoi32(u uint32) int32 { return decode[uint32, int32](u) }

func Itou64(i int64) uint64 { return encode[int64, uint64](i) }

func Utoi64(u uint64) int64 { return decode[uint64, int64](u) }

// Itou encodes a pointer-sized int.
func Itou(i int) uint { return encode[int, uint](i) }

// Utoi decodes a pointer-sized uint.
func Utoi(u uint) int { return decode[uint, int](u) }

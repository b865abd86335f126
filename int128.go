// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zigzag

import "math/big"

// Int128 is a two's complement signed 128-bit integer. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var (
	MinInt128  = Int128{Hi: -1 << 63, Lo: 0}
	MaxInt128  = Int128{Hi: 1<<63 - 1, Lo: 1<<64 - 1}
	MaxUint128 = Uint128{Hi: 1<<64 - 1, Lo: 1<<64 - 1}
)

// Int128FromInt64 sign-extends i to 128 bits.
func Int128FromInt64(i int64) Int128 {
	return Int128{Hi: i >> 63, Lo: uint64(i)}
}

func Uint128FromUint64(u uint64) Uint128 {
	return Uint128{Lo: u}
}

// Itou128 is the 128-bit counterpart of Itou64. The arithmetic shift by 127
// reduces to replicating the sign bit of Hi into both words.
func Itou128(i Int128) Uint128 {
	sign := uint64(i.Hi >> 63)
	return Uint128{
		Hi: (uint64(i.Hi)<<1 | i.Lo>>63) ^ sign,
		Lo: i.Lo<<1 ^ sign,
	}
}

func Utoi128(u Uint128) Int128 {
	neg := -(u.Lo & 1)
	return Int128{
		Hi: int64(u.Hi>>1 ^ neg),
		Lo: (u.Lo>>1 | u.Hi<<63) ^ neg,
	}
}

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64 = new(big.Int).Sub(two64, big.NewInt(1))
)

func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string { return i.Big().String() }

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string { return u.Big().String() }

// Int128FromBig reports false if b does not fit in 128 signed bits.
func Int128FromBig(b *big.Int) (Int128, bool) {
	if b.Cmp(MinInt128.Big()) < 0 || b.Cmp(MaxInt128.Big()) > 0 {
		return Int128{}, false
	}
	v := new(big.Int).Set(b)
	if v.Sign() < 0 {
		v.Add(v, two128)
	}
	hi, lo := split(v)
	return Int128{Hi: int64(hi), Lo: lo}, true
}

// Uint128FromBig reports false if b is negative or needs more than 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, false
	}
	hi, lo := split(b)
	return Uint128{Hi: hi, Lo: lo}, true
}

// split requires 0 <= v < 2^128.
func split(v *big.Int) (hi, lo uint64) {
	lo = new(big.Int).And(v, mask64).Uint64()
	hi = new(big.Int).Rsh(v, 64).Uint64()
	return hi, lo
}

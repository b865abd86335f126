// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/quentinmit/zigzag"
)

var (
	// ErrWidth reports an unsupported --width value.
	ErrWidth = errors.New("zigzagtool: unsupported width")
	// ErrValue reports an input that is not an integer of the chosen width.
	ErrValue = errors.New("zigzagtool: invalid value")
)

// ValidWidths lists the accepted --width values.
var ValidWidths = []string{"8", "16", "32", "64", "128", "ptr"}

// codec converts one textual value at a fixed width.
type codec struct {
	encode func(string) (string, error)
	decode func(string) (string, error)
}

func lookupCodec(width string) (codec, error) {
	switch width {
	case "8":
		return fixed(8, zigzag.Itou8, zigzag.Utoi8), nil
	case "16":
		return fixed(16, zigzag.Itou16, zigzag.Utoi16), nil
	case "32":
		return fixed(32, zigzag.Itou32, zigzag.Utoi32), nil
	case "64":
		return fixed(64, zigzag.Itou64, zigzag.Utoi64), nil
	case "ptr":
		return fixed(bits.UintSize, zigzag.Itou, zigzag.Utoi), nil
	case "128":
		return codec{encode: encode128, decode: decode128}, nil
	}
	return codec{}, fmt.Errorf("%w %q: must be one of %v", ErrWidth, width, ValidWidths)
}

func fixed[S ~int | ~int8 | ~int16 | ~int32 | ~int64, U ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](
	n int, itou func(S) U, utoi func(U) S) codec {
	return codec{
		encode: func(s string) (string, error) {
			i, err := strconv.ParseInt(s, 0, n)
			if err != nil {
				return "", fmt.Errorf("%w %q for int%d: %v", ErrValue, s, n, err)
			}
			return strconv.FormatUint(uint64(itou(S(i))), 10), nil
		},
		decode: func(s string) (string, error) {
			u, err := strconv.ParseUint(s, 0, n)
			if err != nil {
				return "", fmt.Errorf("%w %q for uint%d: %v", ErrValue, s, n, err)
			}
			return strconv.FormatInt(int64(utoi(U(u))), 10), nil
		},
	}
}

func parseBig(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 0)
}

func encode128(s string) (string, error) {
	b, ok := parseBig(s)
	if !ok {
		return "", fmt.Errorf("%w %q for int128", ErrValue, s)
	}
	i, ok := zigzag.Int128FromBig(b)
	if !ok {
		return "", fmt.Errorf("%w %q for int128: out of range", ErrValue, s)
	}
	return zigzag.Itou128(i).String(), nil
}

func decode128(s string) (string, error) {
	// Match strconv.ParseUint, which takes no sign.
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return "", fmt.Errorf("%w %q for uint128: unexpected sign", ErrValue, s)
	}
	b, ok := parseBig(s)
	if !ok {
		return "", fmt.Errorf("%w %q for uint128", ErrValue, s)
	}
	u, ok := zigzag.Uint128FromBig(b)
	if !ok {
		return "", fmt.Errorf("%w %q for uint128: out of range", ErrValue, s)
	}
	return zigzag.Utoi128(u).String(), nil
}

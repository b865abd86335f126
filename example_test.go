// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zigzag_test

import (
	"fmt"
	"math"

	"github.com/quentinmit/zigzag"
)

func Example() {
	for _, i := range []int64{0, -1, 1, -2, 2} {
		fmt.Print(zigzag.Itou64(i), " ")
	}
	fmt.Println()
	// Output:
	// 0 1 2 3 4
}

func ExampleItou8() {
	fmt.Println(zigzag.Itou8(0), zigzag.Itou8(-1), zigzag.Itou8(1))
	fmt.Println(zigzag.Itou8(math.MinInt8) == math.MaxUint8)
	// Output:
	// 0 1 2
	// true
}

func ExampleUtoi8() {
	fmt.Println(zigzag.Utoi8(0), zigzag.Utoi8(1), zigzag.Utoi8(2))
	fmt.Println(zigzag.Utoi8(math.MaxUint8) == math.MinInt8)
	// Output:
	// 0 -1 1
	// true
}

func ExampleItou16() {
	fmt.Println(zigzag.Itou16(0), zigzag.Itou16(-1), zigzag.Itou16(1))
	fmt.Println(zigzag.Itou16(math.MinInt16) == math.MaxUint16)
	// Output:
	// 0 1 2
	// true
}

func ExampleUtoi16() {
	fmt.Println(zigzag.Utoi16(0), zigzag.Utoi16(1), zigzag.Utoi16(2))
	fmt.Println(zigzag.Utoi16(math.MaxUint16) == math.MinInt16)
	// Output:
	// 0 -1 1
	// true
}

func ExampleItou32() {
	fmt.Println(zigzag.Itou32(0), zigzag.Itou32(-1), zigzag.Itou32(1))
	fmt.Println(zigzag.Itou32(math.MinInt32) == math.MaxUint32)
	// Output:
	// 0 1 2
	// true
}

func ExampleUtoi32() {
	fmt.Println(zigzag.Utoi32(0), zigzag.Utoi32(1), zigzag.Utoi32(2))
	fmt.Println(zigzag.Utoi32(math.MaxUint32) == math.MinInt32)
	// Output:
	// 0 -1 1
	// true
}

func ExampleItou64() {
	fmt.Println(zigzag.Itou64(0), zigzag.Itou64(-1), zigzag.Itou64(1))
	fmt.Println(zigzag.Itou64(math.MinInt64) == math.MaxUint64)
	// Output:
	// 0 1 2
	// true
}

func ExampleUtoi64() {
	fmt.Println(zigzag.Utoi64(0), zigzag.Utoi64(1), zigzag.Utoi64(2))
	fmt.Println(zigzag.Utoi64(math.MaxUint64) == math.MinInt64)
	// Output:
	// 0 -1 1
	// true
}

func ExampleItou() {
	fmt.Println(zigzag.Itou(0), zigzag.Itou(-1), zigzag.Itou(1))
	fmt.Println(zigzag.Itou(math.MinInt) == math.MaxUint)
	// Output:
	// 0 1 2
	// true
}

func ExampleUtoi() {
	fmt.Println(zigzag.Utoi(0), zigzag.Utoi(1), zigzag.Utoi(2))
	fmt.Println(zigzag.Utoi(math.MaxUint) == math.MinInt)
	// Output:
	// 0 -1 1
	// true
}

func ExampleItou128() {
	fmt.Println(zigzag.Itou128(zigzag.Int128FromInt64(-3)))
	fmt.Println(zigzag.Itou128(zigzag.MinInt128) == zigzag.MaxUint128)
	fmt.Println(zigzag.Itou128(zigzag.MaxInt128))
	// Output:
	// 5
	// true
	// 340282366920938463463374607431768211454
}

func ExampleUtoi128() {
	fmt.Println(zigzag.Utoi128(zigzag.Uint128FromUint64(5)))
	fmt.Println(zigzag.Utoi128(zigzag.MaxUint128) == zigzag.MinInt128)
	// Output:
	// -3
	// true
}

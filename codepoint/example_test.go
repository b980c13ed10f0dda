// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package codepoint_test

import (
	"fmt"

	"github.com/GermanBionicSystems/phrasedisplay/codepoint"
)

func ExampleEncode() {
	// Greek capital letter Omega.
	b, n := codepoint.Encode(0x03A9)
	if n == 0 {
		fmt.Println("invalid code point")
		return
	}
	fmt.Printf("% X %s\n", b[:n], b[:n])
	// Output: CE A9 Ω
}

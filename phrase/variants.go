// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package phrase

// HelloLao is the table for the "hello world in Lao" sketch.
var HelloLao = Table{
	Glyphs: []uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, // phrase 0
		0, 6, 6, 8, // phrase 1
		4, 4, // phrase 2
	},
	Starts:  []uint8{0, 9, 13},
	Lengths: []uint8{9, 4, 2},
}

// Greetings is the table generated by the font tools project.
var Greetings = Table{
	Glyphs: []uint8{
		0, 1, 2, 3, 4, 5, // phrase 0
		6, 7, 3, 8, 9, 3, 10, 11, 12, // phrase 1
	},
	Starts:  []uint8{0, 6},
	Lengths: []uint8{6, 9},
}

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types provides the fundamental data types for the chess engine
// (squares, bitboards, pieces, moves, values) shared by every other package.
package types

import (
	"github.com/arcbit-engine/arcbit/internal/logging"
)

var log = logging.GetLog()

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution.
type Key uint64

const (
	// MaxDepth is the maximum search depth supported by move/value encoding
	// and iteration arrays.
	MaxDepth = 128
	// MaxMoves is the maximum number of pseudo legal moves possible in any
	// single chess position.
	MaxMoves = 512

	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB

	// GamePhaseMax is the value of the game phase counter in the opening
	// position, decreasing towards 0 as material is traded off.
	GamePhaseMax = 24
)

var initialized = false

func init() {
	if initialized {
		return
	}
	log.Debug("Initializing data types")
	initBb()
	initPosValues()
	initialized = true
}

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

package transpositiontable

import (
	. "github.com/arcbit-engine/arcbit/internal/types"
)

// TtEntry is one slot of a four-entry bucket (see TtTable). Verification
// holds the upper 32 bits of the full 64-bit Zobrist key; the bucket index
// is derived from the lower bits, so a slot only needs the remaining half of
// the key to tell hits from collisions. Generation is zero for a slot that
// has never been written, which doubles as the "empty" marker used by the
// bucket replacement scan.
type TtEntry struct {
	Verification uint32    // upper 32 bit of the full Zobrist key
	Move         Move      // best move for this position, MoveNone if unknown
	Score        Value     // search value in centipawns, side to move at Depth
	Depth        int8      // remaining depth this entry was searched at
	Type         ValueType // Vnone (empty), EXACT, ALPHA (upper bound) or BETA (lower bound)
	Generation   uint8     // root-search generation this entry was written in, 0 == empty
}

// TtEntrySize is the size in bytes of one bucket slot.
const TtEntrySize = 16

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

package search

import (
	"time"

	"github.com/arcbit-engine/arcbit/internal/position"
)

// benchPositions is a short, fixed suite spanning the opening, a tactical
// middlegame, and pawn/rook endgames, used by the "bench" UCI command and
// the -bench CLI flag to produce a reproducible node count across commits.
var benchPositions = []string{
	position.StartFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4rrk1/pp1n3p/3q2pQ/2p1pb2/2PP4/2P3N1/P2B2PP/4RRK1 b - - 7 19",
	"6k1/p3q2p/1nr3pB/8/4P3/6P1/P3Q2P/2R3K1 b - - 0 1",
}

// BenchDepth is the fixed search depth used by Bench for reproducibility.
const BenchDepth = 6

// Bench runs a fixed canonical suite of positions through a depth-limited
// search and returns the total node count and nodes-per-second across the
// whole suite. It is used by the non-UCI "bench" command (spec compliance
// smoke test, not a playing-strength benchmark).
func Bench() (totalNodes uint64, nps uint64, elapsed time.Duration) {
	s := NewSearch()
	start := time.Now()
	for _, fen := range benchPositions {
		p := position.NewPosition(fen)
		sl := NewSearchLimits()
		sl.Depth = BenchDepth
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		totalNodes += s.NodesVisited()
	}
	elapsed = time.Since(start)
	if elapsed > 0 {
		nps = uint64(float64(totalNodes) / elapsed.Seconds())
	}
	return totalNodes, nps, elapsed
}

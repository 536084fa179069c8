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
	"github.com/arcbit-engine/arcbit/internal/types"
)

// This file contains the search's fixed tuning constants. Unlike the rest of
// the search configuration (searchconfig.go) these are not meant to be
// exposed as engine options - they are part of the algorithm itself.

// LmrReduction returns the late-move-reduction amount for a move at the
// given remaining depth and move-searched index: 2 plies once the position
// is both deep and far down the move order, 1 ply once it is merely far
// down the order, 0 otherwise.
func LmrReduction(depth int, movesSearched int) int {
	switch {
	case depth > 5 && movesSearched > 20:
		return 2
	case depth > 2 && movesSearched > 5:
		return 1
	default:
		return 0
	}
}

// fp holds the futility-pruning margin used per remaining depth (1-3); a
// node at one of these depths whose static eval plus the margin still
// fails low is dropped straight into quiescence search.
var fp = [4]types.Value{0, 300, 520, 900}

// lateMoveFutilityMargin is the margin used for the late-move-futility
// break in the main search move loop (spec's i >= 12, depth <= 2 cutoff).
const lateMoveFutilityMargin = types.Value(100)

// startWindow is the half-width of the aspiration window placed around the
// previous iteration's best value.
const startWindow = types.Value(30)

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

package types

// ScoredMove pairs a Move with a score. During generation and ordering the
// score is a sort key; the search also stores search values in it (root
// moves, pv[0][0]). The score never affects legality or evaluation and is
// not part of the packed Move word.
type ScoredMove struct {
	Move  Move
	Score int32
}

// ScoredMoveOf wraps a bare move with a zero sort score.
func ScoredMoveOf(m Move) ScoredMove {
	return ScoredMove{Move: m}
}

// String returns a string representation of the scored move.
func (sm ScoredMove) String() string {
	return sm.Move.String()
}

// StringUci returns the UCI representation of the underlying move.
func (sm ScoredMove) StringUci() string {
	return sm.Move.StringUci()
}

/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/arcbit-engine/arcbit/internal/config"
	"github.com/arcbit-engine/arcbit/internal/logging"
	"github.com/arcbit-engine/arcbit/internal/position"
	. "github.com/arcbit-engine/arcbit/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	// 2 MB / (4 entries * 16 bytes) = 32768 buckets -> rounds down to a power of 2
	assert.Equal(t, uint64(32_768), tt.numberOfBuckets)
	assert.Equal(t, 131_072, len(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(1_048_576), tt.numberOfBuckets)
	assert.Equal(t, 4_194_304, len(tt.data))
}

func TestProbeMiss(t *testing.T) {
	tt := NewTtTable(4)
	pos := position.NewPosition()

	entry, hit := tt.Probe(pos.ZobristKey())
	assert.False(t, hit)
	assert.NotNil(t, entry) // stalest slot in an empty bucket is returned for writing
	assert.EqualValues(t, 0, entry.Generation)
}

func TestStoreAndProbe(t *testing.T) {
	tt := NewTtTable(4)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)

	tt.Store(pos.ZobristKey(), move, 5, Value(111), ALPHA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	entry, hit := tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.Equal(t, move, entry.Move)
	assert.EqualValues(t, 111, entry.Score)
	assert.EqualValues(t, 5, entry.Depth)
	assert.Equal(t, ALPHA, entry.Type)

	// update same position: higher depth, different bound
	tt.Store(pos.ZobristKey(), move, 6, Value(112), BETA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	entry, hit = tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.EqualValues(t, 112, entry.Score)
	assert.EqualValues(t, 6, entry.Depth)
	assert.Equal(t, BETA, entry.Type)
}

func TestStorePreservesMoveOnMoveNoneUpdate(t *testing.T) {
	tt := NewTtTable(4)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)

	tt.Store(pos.ZobristKey(), move, 3, Value(10), EXACT)
	// a later store for the same key with no move (e.g. from an eval-only
	// probe) must not clobber the previously stored best move.
	tt.Store(pos.ZobristKey(), MoveNone, 3, Value(20), EXACT)

	entry, hit := tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.Equal(t, move, entry.Move)
	assert.EqualValues(t, 20, entry.Score)
}

func TestBucketCollisionReplacesStalestSlot(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)

	base := Key(1)
	// four distinct keys sharing the same bucket (same low bits, different
	// high bits) fill up all four slots without any eviction.
	keys := make([]Key, entriesPerBucket)
	for i := range keys {
		keys[i] = base | (Key(i+1) << 40)
		tt.Store(keys[i], move, int8(i), Value(i), EXACT)
	}
	assert.EqualValues(t, entriesPerBucket, tt.Len())
	for _, k := range keys {
		_, hit := tt.Probe(k)
		assert.True(t, hit)
	}

	// a fifth key in the same bucket must evict the generation-0... all
	// slots share the current generation here, so the lowest-depth slot
	// (keys[0], depth 0) is the one that gets replaced.
	fifth := base | (Key(5) << 40)
	tt.Store(fifth, move, 10, Value(99), EXACT)
	_, hit := tt.Probe(fifth)
	assert.True(t, hit)
	_, hit = tt.Probe(keys[0])
	assert.False(t, hit)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)

	tt.Store(pos.ZobristKey(), move, 5, Value(111), EXACT)
	_, hit := tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	_, hit = tt.Probe(pos.ZobristKey())
	assert.False(t, hit)
	assert.EqualValues(t, 0, tt.Len())
}

func TestNewGeneration(t *testing.T) {
	tt := NewTtTable(4)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)

	tt.Store(pos.ZobristKey(), move, 5, Value(111), EXACT)
	entry, hit := tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.EqualValues(t, 1, entry.Generation)

	tt.NewGeneration()
	entry, hit = tt.Probe(pos.ZobristKey())
	assert.True(t, hit) // entry survives, only its generation is stale
	assert.EqualValues(t, 1, entry.Generation)

	tt.Store(pos.ZobristKey(), move, 6, Value(222), EXACT)
	entry, hit = tt.Probe(pos.ZobristKey())
	assert.True(t, hit)
	assert.EqualValues(t, 2, entry.Generation)
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(4)
	assert.EqualValues(t, 0, tt.Hashfull())

	// Hashfull samples only the first 1000 entries, so use a key whose low
	// bits select bucket 0 to land inside the sample.
	move := CreateMove(SqE2, SqE4, Normal, PtNone, PtNone, White, PtNone)
	tt.Store(Key(1)<<40, move, 1, Value(1), EXACT)
	assert.Greater(t, tt.Hashfull(), 0)
}

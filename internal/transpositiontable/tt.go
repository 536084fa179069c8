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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// Entries live in four-entry buckets keyed by the low bits of the Zobrist
// key; a probe scans the whole bucket for a verified hit and otherwise
// returns the stalest slot in the bucket for the caller to overwrite.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/arcbit-engine/arcbit/internal/logging"
	. "github.com/arcbit-engine/arcbit/internal/types"
	"github.com/arcbit-engine/arcbit/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536

	// entriesPerBucket is the number of TtEntry slots sharing one bucket index.
	entriesPerBucket = 4

	// hashSampleSize is how many entries Hashfull samples, per spec §4.7.
	hashSampleSize = 1000
)

// TtTable is the actual transposition table object holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log            *logging.Logger
	data           []TtEntry
	sizeInByte     uint64
	bucketMask     uint64 // mask over bucket index, i.e. (numberOfBuckets - 1)
	numberOfBuckets uint64
	numberOfEntries uint64
	generation     uint8
	Stats          TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes
// as a maximum of memory usage. actual size will be determined
// by the number of buckets fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log:        myLogging.GetLog(),
		generation: 1,
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB

	// largest power of two number of buckets (4 entries each) fitting into
	// the requested memory budget
	bucketBytes := uint64(entriesPerBucket) * TtEntrySize
	if tt.sizeInByte < bucketBytes {
		tt.numberOfBuckets = 0
	} else {
		tt.numberOfBuckets = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/bucketBytes))))
	}
	if tt.numberOfBuckets == 0 {
		tt.bucketMask = 0
	} else {
		tt.bucketMask = tt.numberOfBuckets - 1
	}

	// calculate the real memory usage
	tt.sizeInByte = tt.numberOfBuckets * bucketBytes

	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]TtEntry, tt.numberOfBuckets*entriesPerBucket)
	tt.numberOfEntries = 0
	tt.generation = 1

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d buckets x %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.numberOfBuckets, entriesPerBucket, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// bucketBase returns the index of the first of the four slots belonging to key.
func (tt *TtTable) bucketBase(key Key) uint64 {
	return entriesPerBucket * (uint64(key) & tt.bucketMask)
}

// verificationOf returns the upper 32 bit of key used to verify a bucket hit.
func verificationOf(key Key) uint32 {
	return uint32(uint64(key) >> 32)
}

// find scans the bucket for key without touching probe statistics. It
// returns the matching entry and true on a hit, or the stalest entry in the
// bucket (lowest generation, ties broken by lowest depth) and false on a
// miss. Returns (nil, false) if the table has zero capacity.
func (tt *TtTable) find(key Key) (*TtEntry, bool) {
	if tt.numberOfBuckets == 0 {
		return nil, false
	}
	base := tt.bucketBase(key)
	verification := verificationOf(key)
	var stalest *TtEntry
	stalestGen := 256 // one past the max uint8, so the first slot always takes over
	var stalestDepth int8
	for i := uint64(0); i < entriesPerBucket; i++ {
		e := &tt.data[base+i]
		if e.Generation != 0 && e.Verification == verification {
			return e, true
		}
		gen := int(e.Generation)
		if gen < stalestGen || (gen == stalestGen && e.Depth < stalestDepth) {
			stalest = e
			stalestGen = gen
			stalestDepth = e.Depth
		}
	}
	return stalest, false
}

// Probe returns a pointer to the corresponding tt entry and whether it was
// a verified hit. On a miss, the returned entry is the bucket's stalest
// slot and callers must check the Verification/Generation fields before
// trusting its contents.
func (tt *TtTable) Probe(key Key) (*TtEntry, bool) {
	tt.Stats.numberOfProbes++
	e, hit := tt.find(key)
	if hit {
		tt.Stats.numberOfHits++
	} else {
		tt.Stats.numberOfMisses++
	}
	return e, hit
}

// Store writes a search result into the bucket for key, reusing the
// verified entry on a hit or overwriting the bucket's stalest slot
// otherwise. A MoveNone move does not clear a previously stored best move
// for the same position.
func (tt *TtTable) Store(key Key, move Move, depth int8, score Value, valueType ValueType) {
	if tt.numberOfBuckets == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	entry, hit := tt.find(key)
	if entry == nil {
		return
	}

	switch {
	case hit:
		tt.Stats.numberOfUpdates++
	case entry.Generation == 0:
		tt.numberOfEntries++
	default:
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
	}

	entry.Verification = verificationOf(key)
	if move != MoveNone || !hit {
		entry.Move = move
	}
	entry.Score = score
	entry.Depth = depth
	entry.Type = valueType
	entry.Generation = tt.generation
}

// NewGeneration ages the table by one generation. Call once per root search
// invocation (spec §3: "generation counter incremented per root search").
func (tt *TtTable) NewGeneration() {
	tt.generation++
	if tt.generation == 0 {
		tt.generation = 1
	}
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.numberOfBuckets*entriesPerBucket)
	tt.numberOfEntries = 0
	tt.generation = 1
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permille as per
// UCI, approximated by sampling the first 1000 entries (spec §4.7).
func (tt *TtTable) Hashfull() int {
	total := uint64(len(tt.data))
	if total == 0 {
		return 0
	}
	sample := uint64(hashSampleSize)
	if total < sample {
		sample = total
	}
	used := uint64(0)
	for i := uint64(0); i < sample; i++ {
		if tt.data[i].Generation != 0 {
			used++
		}
	}
	return int(1000 * used / sample)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB buckets %d entries %d of size %d Bytes used %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.numberOfBuckets, len(tt.data), unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

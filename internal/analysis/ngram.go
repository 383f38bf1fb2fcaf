package analysis

import (
	"slices"
	"sort"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// NGram is a turn sequence that occurs more than once.
type NGram struct {
	N           int               `json:"n"`
	Turns       []rubikscube.Turn `json:"-"`
	Sequence    string            `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []Occurrence      `json:"occurrences,omitempty"`
}

// Occurrence is where an n-gram was found.
type Occurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms"`
}

// NGramReport holds the most frequent n-grams keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

const maxOccurrences = 10

// RollingHash is a Rabin-Karp hash over a window of turns.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []rubikscube.Turn
	n      int
}

// NewRollingHash creates a hash for windows of n turns.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{base: 31, n: n, window: make([]rubikscube.Turn, 0, n)}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll pushes t into the window, dropping the oldest turn once it is full.
func (rh *RollingHash) Roll(t rubikscube.Turn) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, t)
		rh.hash = rh.hash*rh.base + uint64(t)
		return
	}
	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(t)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = t
}

// Hash returns the hash of the current window.
func (rh *RollingHash) Hash() uint64 { return rh.hash }

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []rubikscube.Turn { return slices.Clone(rh.window) }

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool { return len(rh.window) == rh.n }

// MineNGrams finds the topK most frequent repeated n-grams for each n in
// [minN, maxN]. Lengths below 1 are skipped.
func MineNGrams(turns []TimedTurn, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	minN = max(minN, 1)
	for n := minN; n <= maxN && n <= len(turns); n++ {
		if grams := mineN(turns, n, topK); len(grams) > 0 {
			report.TopNGrams[n] = grams
		}
	}
	return report
}

type entry struct {
	turns       []rubikscube.Turn
	count       int
	first       int
	occurrences []Occurrence
}

func mineN(turns []TimedTurn, n, topK int) []NGram {
	// Colliding windows chain in the same bucket.
	buckets := make(map[uint64][]*entry)
	var order []*entry
	rh := NewRollingHash(n)

	for i, tt := range turns {
		rh.Roll(tt.Turn)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1
		occ := Occurrence{StartIndex: start, TsMs: turns[start].TsMs}
		window := rh.Window()

		var found *entry
		for _, e := range buckets[rh.Hash()] {
			if slices.Equal(e.turns, window) {
				found = e
				break
			}
		}
		if found == nil {
			found = &entry{turns: window, first: start}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], found)
			order = append(order, found)
		}
		found.count++
		if len(found.occurrences) < maxOccurrences {
			found.occurrences = append(found.occurrences, occ)
		}
	}

	var repeated []*entry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{
			N:           n,
			Turns:       e.turns,
			Sequence:    rubikscube.FormatTurns(e.turns),
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

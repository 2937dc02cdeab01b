package uvec_test

import (
	"math/rand"
	"testing"

	"github.com/IvanoBilenchi/uvec/sortable"
	"github.com/IvanoBilenchi/uvec/uvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntComparable(t *testing.T, items ...int) *uvec.Comparable[sortable.Int] {
	t.Helper()

	v := uvec.NewComparable[sortable.Int]()

	for _, n := range items {
		require.NoError(t, v.Push(sortable.Int(n)))
	}

	return v
}

func toInts(v *uvec.Comparable[sortable.Int]) []int {
	out := make([]int, 0, v.Count())

	for _, n := range v.All() {
		out = append(out, int(n))
	}

	return out
}

// requireSorted asserts that no adjacent pair is out of order.
func requireSorted(t *testing.T, v *uvec.Comparable[sortable.Int]) {
	t.Helper()

	for i := 1; i < v.Count(); i++ {
		require.False(t, v.Get(i).LessThan(v.Get(i-1)),
			"elements %d and %d are out of order", i-1, i)
	}
}

func TestComparable_IndexOfMinMax(t *testing.T) {
	t.Parallel()

	t.Run("scan positions", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 3, 2, 2, 2, 4, 1, 5, 6, 5)

		minIdx, found := v.IndexOfMin().Get()
		require.True(t, found)
		assert.Equal(t, 5, minIdx)
		assert.Equal(t, sortable.Int(1), v.Get(minIdx))

		maxIdx, found := v.IndexOfMax().Get()
		require.True(t, found)
		assert.Equal(t, 7, maxIdx)
		assert.Equal(t, sortable.Int(6), v.Get(maxIdx))
	})

	t.Run("min and max match sorted extremes", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 9, 4, 7, 1, 8, 2)

		minVal := v.Get(v.IndexOfMin().GetOrPanic())
		maxVal := v.Get(v.IndexOfMax().GetOrPanic())

		v.Sort()
		assert.Equal(t, minVal, v.First())
		assert.Equal(t, maxVal, v.Last())
	})

	t.Run("ties resolve to first occurrence", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 2, 1, 1, 2)
		assert.Equal(t, 1, v.IndexOfMin().GetOrPanic())
		assert.Equal(t, 0, v.IndexOfMax().GetOrPanic())
	})

	t.Run("empty vector yields none", func(t *testing.T) {
		t.Parallel()

		v := uvec.NewComparable[sortable.Int]()
		assert.True(t, v.IndexOfMin().Empty())
		assert.True(t, v.IndexOfMax().Empty())
	})
}

func TestComparable_Sort(t *testing.T) {
	t.Parallel()

	t.Run("base scenario", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 3, 2, 4, 1)

		assert.Equal(t, sortable.Int(4), v.Get(2))

		v.Set(2, sortable.Int(5))
		assert.Equal(t, []int{3, 2, 5, 1}, toInts(v))

		require.NoError(t, v.Push(sortable.Int(4)))
		assert.Equal(t, []int{3, 2, 5, 1, 4}, toInts(v))

		assert.Equal(t, sortable.Int(4), v.Pop())

		v.Sort()
		assert.Equal(t, []int{1, 2, 3, 5}, toInts(v))

		v.Reverse()
		assert.Equal(t, []int{5, 3, 2, 1}, toInts(v))
	})

	t.Run("duplicates", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 3, 2, 2, 2, 4, 1, 5, 6, 5)

		v.Sort()
		assert.Equal(t, []int{1, 2, 2, 2, 3, 4, 5, 5, 6}, toInts(v))
	})

	t.Run("already sorted", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 2, 3, 4, 5)

		v.Sort()
		assert.Equal(t, []int{1, 2, 3, 4, 5}, toInts(v))
	})

	t.Run("reverse sorted", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 5, 4, 3, 2, 1)

		v.Sort()
		assert.Equal(t, []int{1, 2, 3, 4, 5}, toInts(v))
	})

	t.Run("all equal", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 7, 7, 7, 7)

		v.Sort()
		assert.Equal(t, []int{7, 7, 7, 7}, toInts(v))
	})

	t.Run("empty and single element", func(t *testing.T) {
		t.Parallel()

		v := uvec.NewComparable[sortable.Int]()
		v.Sort()
		assert.True(t, v.IsEmpty())

		require.NoError(t, v.Push(sortable.Int(1)))
		v.Sort()
		assert.Equal(t, []int{1}, toInts(v))
	})
}

func TestComparable_SortRange(t *testing.T) {
	t.Parallel()

	t.Run("sorts only the range", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 9, 5, 3, 4, 0)

		v.SortRange(1, 3)
		assert.Equal(t, []int{9, 3, 4, 5, 0}, toInts(v))
	})

	t.Run("whole vector range", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 2, 1)

		v.SortRange(0, v.Count())
		assert.Equal(t, []int{1, 2}, toInts(v))
	})

	t.Run("panics on invalid range", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 2)
		assert.Panics(t, func() { v.SortRange(1, 2) })
		assert.Panics(t, func() { v.SortRange(-1, 1) })
	})
}

func TestComparable_SortLargeInputs(t *testing.T) {
	t.Parallel()

	// Exercises deep partition trees, including the bounded-stack
	// coalescing path of the iterative quicksort.
	tests := []struct {
		name string
		gen  func() func(i int) int
	}{
		{
			name: "random",
			gen: func() func(int) int {
				rng := rand.New(rand.NewSource(42)) //nolint:gosec

				return func(int) int { return rng.Intn(1 << 20) }
			},
		},
		{
			name: "ascending",
			gen:  func() func(int) int { return func(i int) int { return i } },
		},
		{
			name: "descending",
			gen:  func() func(int) int { return func(i int) int { return 200_000 - i } },
		},
		{
			name: "few distinct values",
			gen: func() func(int) int {
				rng := rand.New(rand.NewSource(43)) //nolint:gosec

				return func(int) int { return rng.Intn(4) }
			},
		},
		{
			name: "sawtooth",
			gen:  func() func(int) int { return func(i int) int { return i % 1000 } },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const size = 200_000

			gen := tt.gen()

			v := uvec.NewComparable[sortable.Int]()
			require.NoError(t, v.ReserveCapacity(size))

			counts := make(map[int]int)

			for i := range size {
				n := gen(i)
				counts[n]++

				require.NoError(t, v.Push(sortable.Int(n)))
			}

			v.Sort()

			requireSorted(t, v)
			require.Equal(t, size, v.Count())

			// Sorting must permute, not lose or invent elements.
			for _, n := range v.All() {
				counts[int(n)]--
			}

			for n, c := range counts {
				require.Zero(t, c, "element %d count changed", n)
			}
		})
	}
}

func TestComparable_InsertionIndexSorted(t *testing.T) {
	t.Parallel()

	// linearInsertionIndex is the reference lower-bound implementation.
	linearInsertionIndex := func(v *uvec.Comparable[sortable.Int], item sortable.Int) int {
		i := 0
		for i < v.Count() && v.Get(i).LessThan(item) {
			i++
		}

		return i
	}

	t.Run("matches linear lower bound", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(7)) //nolint:gosec

		v := uvec.NewComparable[sortable.Int]()

		for range 500 {
			require.NoError(t, v.Push(sortable.Int(rng.Intn(100))))
		}

		v.Sort()

		for probe := -1; probe <= 100; probe++ {
			item := sortable.Int(probe)
			assert.Equal(t, linearInsertionIndex(v, item), v.InsertionIndexSorted(item),
				"probe %d", probe)
		}
	})

	t.Run("duplicates yield leftmost index", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 2, 2, 2, 3)
		assert.Equal(t, 1, v.InsertionIndexSorted(sortable.Int(2)))
	})

	t.Run("boundaries", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 10, 20, 30)
		assert.Equal(t, 0, v.InsertionIndexSorted(sortable.Int(5)))
		assert.Equal(t, 3, v.InsertionIndexSorted(sortable.Int(35)))
	})

	t.Run("empty vector", func(t *testing.T) {
		t.Parallel()

		v := uvec.NewComparable[sortable.Int]()
		assert.Equal(t, 0, v.InsertionIndexSorted(sortable.Int(1)))
	})
}

func TestComparable_IndexOfSorted(t *testing.T) {
	t.Parallel()

	v := newIntComparable(t, 1, 2, 2, 2, 3, 4, 5)

	t.Run("finds first equal occurrence", func(t *testing.T) {
		t.Parallel()

		idx, found := v.IndexOfSorted(sortable.Int(2)).Get()
		require.True(t, found)
		assert.Equal(t, 1, idx)
	})

	t.Run("miss returns none", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.IndexOfSorted(sortable.Int(9)).Empty())
		assert.True(t, v.IndexOfSorted(sortable.Int(0)).Empty())
	})

	t.Run("contains sorted", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.ContainsSorted(sortable.Int(4)))
		assert.False(t, v.ContainsSorted(sortable.Int(9)))
	})

	t.Run("empty vector", func(t *testing.T) {
		t.Parallel()

		empty := uvec.NewComparable[sortable.Int]()
		assert.True(t, empty.IndexOfSorted(sortable.Int(1)).Empty())
	})
}

func TestComparable_InsertSorted(t *testing.T) {
	t.Parallel()

	t.Run("keeps the vector sorted", func(t *testing.T) {
		t.Parallel()

		v := uvec.NewComparable[sortable.Int]()

		for _, n := range []int{5, 1, 4, 2, 3} {
			idx, err := v.InsertSorted(sortable.Int(n))
			require.NoError(t, err)
			assert.Equal(t, sortable.Int(n), v.Get(idx))
			requireSorted(t, v)
		}

		assert.Equal(t, []int{1, 2, 3, 4, 5}, toInts(v))
	})

	t.Run("duplicates are allowed", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 2, 3)

		idx, err := v.InsertSorted(sortable.Int(2))
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, []int{1, 2, 2, 3}, toInts(v))
	})
}

func TestComparable_InsertSortedUnique(t *testing.T) {
	t.Parallel()

	t.Run("inserts missing element", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 3)

		idx, inserted, err := v.InsertSortedUnique(sortable.Int(2))
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, 1, idx)
		assert.Equal(t, []int{1, 2, 3}, toInts(v))
	})

	t.Run("skips present element and reports its index", func(t *testing.T) {
		t.Parallel()

		v := newIntComparable(t, 1, 2, 3)

		idx, inserted, err := v.InsertSortedUnique(sortable.Int(2))
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, 1, idx)
		assert.Equal(t, []int{1, 2, 3}, toInts(v))
	})

	t.Run("inserts into empty vector", func(t *testing.T) {
		t.Parallel()

		v := uvec.NewComparable[sortable.Int]()

		idx, inserted, err := v.InsertSortedUnique(sortable.Int(7))
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, 0, idx)
	})
}

func TestComparable_Copy(t *testing.T) {
	t.Parallel()

	v := newIntComparable(t, 3, 1, 2)

	cp, err := v.Copy()
	require.NoError(t, err)
	assert.True(t, v.Equals(&cp.Equatable))

	cp.Sort()
	assert.Equal(t, []int{1, 2, 3}, toInts(cp))
	assert.Equal(t, []int{3, 1, 2}, toInts(v))
}

func TestComparable_NaturalStringSort(t *testing.T) {
	t.Parallel()

	v := uvec.NewComparable[sortable.NaturalString]()
	require.NoError(t, v.Append(
		sortable.NaturalString("file10"),
		sortable.NaturalString("file2"),
		sortable.NaturalString("file1"),
	))

	v.Sort()

	var got []string
	for _, s := range v.All() {
		got = append(got, string(s))
	}

	assert.Equal(t, []string{"file1", "file2", "file10"}, got)
}

// wideElement is larger than a cache line, forcing the hybrid search into
// its pure-binary regime with a single-element linear tail.
type wideElement struct {
	key int64
	pad [80]byte
}

func (e wideElement) Equals(other wideElement) bool {
	return e.key == other.key
}

func (e wideElement) LessThan(other wideElement) bool {
	return e.key < other.key
}

func TestComparable_WideElementSearch(t *testing.T) {
	t.Parallel()

	v := uvec.NewComparable[wideElement]()

	for i := range 100 {
		require.NoError(t, v.Push(wideElement{key: int64(i * 2)}))
	}

	for i := range 100 {
		assert.Equal(t, i, v.InsertionIndexSorted(wideElement{key: int64(i*2 - 1)}))
		assert.Equal(t, i, v.InsertionIndexSorted(wideElement{key: int64(i * 2)}))
	}

	assert.True(t, v.ContainsSorted(wideElement{key: 42}))
	assert.False(t, v.ContainsSorted(wideElement{key: 43}))
}

package pagetree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkAgainst compares the tree with the set of keys it should hold.
func checkAgainst(t *testing.T, tree *Tree, model map[int64]struct{}) {
	t.Helper()

	want := make([]int64, 0, len(model))
	for v := range model {
		want = append(want, v)
	}
	slices.Sort(want)

	require.Equal(t, len(want), tree.Len())
	require.Equal(t, want, tree.Values())
	for _, v := range want {
		require.True(t, tree.Search(v), "missing %d", v)
	}
}

// checkBalanced asserts every leaf sits at the same depth and each level
// holds pages of one level number.
func checkBalanced(t *testing.T, tree *Tree) {
	t.Helper()

	height := tree.Height()
	for depth, level := range tree.levels() {
		for _, p := range level {
			require.Equal(t, height-depth, p.Level)
			require.Equal(t, depth == height-1, p.IsLeaf())
		}
	}
}

func TestRandomOperations(t *testing.T) {
	t.Parallel()

	for _, rank := range []int{2, 3, 4, 7} {
		for seed := int64(1); seed <= 4; seed++ {
			rng := rand.New(rand.NewSource(seed*100 + int64(rank)))
			tree := setup(t, WithRank(rank))
			model := make(map[int64]struct{})

			for op := 0; op < 2000; op++ {
				v := rng.Int63n(300) - 150
				_, present := model[v]

				if rng.Intn(3) < 2 {
					err := tree.Insert(v)
					if present {
						require.True(t, errors.Is(err, ErrDuplicateKey), "rank %d seed %d: insert %d", rank, seed, v)
					} else {
						require.NoError(t, err, "rank %d seed %d: insert %d", rank, seed, v)
						model[v] = struct{}{}
					}
				} else {
					err := tree.Delete(v)
					switch {
					case present:
						require.NoError(t, err, "rank %d seed %d: delete %d", rank, seed, v)
						delete(model, v)
					case len(model) == 0:
						require.True(t, errors.Is(err, ErrTreeEmpty))
					default:
						require.True(t, errors.Is(err, ErrKeyNotFound), "rank %d seed %d: delete %d", rank, seed, v)
					}
				}

				require.NoError(t, tree.Verify(), "rank %d seed %d: after op %d on %d", rank, seed, op, v)
			}

			checkAgainst(t, tree, model)
			checkBalanced(t, tree)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for _, rank := range []int{2, 3, 5} {
		tree := setup(t, WithRank(rank))

		values := seq(1, 500)
		rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		build(t, tree, values...)

		for _, v := range values {
			assert.True(t, tree.Search(v))
		}
		checkBalanced(t, tree)

		rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		for _, v := range values {
			require.NoError(t, tree.Delete(v))
			require.NoError(t, tree.Verify())
			require.False(t, tree.Search(v))
		}
		assert.True(t, tree.Empty())
	}
}

func TestRejectedOperationsAreNoOps(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	tree := setup(t, WithRank(3))

	present := make([]int64, 0, 200)
	for len(present) < 200 {
		v := rng.Int63n(10_000)
		if tree.Insert(v) == nil {
			present = append(present, v)
		}
	}

	before := tree.Fingerprint()
	for i := 0; i < 100; i++ {
		v := present[rng.Intn(len(present))]
		require.True(t, errors.Is(tree.Insert(v), ErrDuplicateKey))
		require.Equal(t, before, tree.Fingerprint(), "insert %d", v)

		absent := int64(10_000 + i)
		require.True(t, errors.Is(tree.Delete(absent), ErrKeyNotFound))
		require.Equal(t, before, tree.Fingerprint(), "delete %d", absent)
	}
}

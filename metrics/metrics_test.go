package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagetree"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	tree, err := pagetree.New(pagetree.WithRank(2))
	require.NoError(t, err)
	for v := int64(1); v <= 17; v++ {
		require.NoError(t, tree.Insert(v))
	}
	require.Error(t, tree.Insert(5))
	require.NoError(t, tree.Delete(1))

	c := NewCollector("test", prometheus.Labels{"tree": "a"}, tree.Stats)

	// 3 gauges, 2 ops, 2 rejects, 5 structural, 2 cache
	assert.Equal(t, 14, testutil.CollectAndCount(c))
	problems, err := testutil.CollectAndLint(c)
	require.NoError(t, err)
	assert.Empty(t, problems)

	want := `
# HELP test_pagetree_height Levels from the root to the leaves.
# TYPE test_pagetree_height gauge
test_pagetree_height{tree="a"} 2
# HELP test_pagetree_keys Keys stored in the tree.
# TYPE test_pagetree_keys gauge
test_pagetree_keys{tree="a"} 16
# HELP test_pagetree_operations_total Successful operations.
# TYPE test_pagetree_operations_total counter
test_pagetree_operations_total{op="delete",tree="a"} 1
test_pagetree_operations_total{op="insert",tree="a"} 17
# HELP test_pagetree_rejected_total Operations rejected without changing the tree.
# TYPE test_pagetree_rejected_total counter
test_pagetree_rejected_total{reason="duplicate",tree="a"} 1
test_pagetree_rejected_total{reason="not_found",tree="a"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(want),
		"test_pagetree_height", "test_pagetree_keys", "test_pagetree_operations_total", "test_pagetree_rejected_total"))
}

func TestCollectorRegisters(t *testing.T) {
	t.Parallel()

	tree, err := pagetree.New()
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector("", nil, tree.Stats)))

	// Same descriptors twice are refused
	assert.Error(t, reg.Register(NewCollector("", nil, tree.Stats)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)
}

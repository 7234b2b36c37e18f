package trace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/trace"
	"github.com/ember-ml/ember/internal/value"
)

func buildFixture() (*value.Value, *value.Value) {
	a := value.New(2.0).SetLabel("a")
	b := value.New(-3.0).SetLabel("b")
	out := a.Mul(b).SetLabel("out")
	return a, out
}

// TestWriteDOT_Structure checks the digraph wrapper and that every node
// and operation appears.
func TestWriteDOT_Structure(t *testing.T) {
	_, out := buildFixture()
	out.Backward()

	var sb strings.Builder
	require.NoError(t, trace.WriteDOT(&sb, out))
	dot := sb.String()

	assert.True(t, strings.HasPrefix(dot, "digraph {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(dot), "}"))
	assert.Contains(t, dot, "a | ")
	assert.Contains(t, dot, "b | ")
	assert.Contains(t, dot, `"*"`)
	assert.Contains(t, dot, "grad 1.0000") // output node after backward
}

// TestWriteDOT_SharedOperandOnce verifies a diamond renders each node a
// single time.
func TestWriteDOT_SharedOperandOnce(t *testing.T) {
	x := value.New(1.5).SetLabel("x")
	z := x.Mul(x).Add(x)

	var sb strings.Builder
	require.NoError(t, trace.WriteDOT(&sb, z))

	assert.Equal(t, 1, strings.Count(sb.String(), "{ x | "))
}

// TestWriteSummary lists nodes in topological order with leaves first.
func TestWriteSummary(t *testing.T) {
	_, out := buildFixture()

	var sb strings.Builder
	require.NoError(t, trace.WriteSummary(&sb, out))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "leaf")
	assert.Contains(t, lines[1], "leaf")
	assert.Contains(t, lines[2], "out")
	assert.Contains(t, lines[2], "*")
}

// TestCounts groups reachable nodes by op tag.
func TestCounts(t *testing.T) {
	x := value.New(2.0)
	out := x.Tanh().Add(x.Exp())

	keys, counts := trace.Counts(out)

	assert.Equal(t, []string{"+", "exp", "leaf", "tanh"}, keys)
	assert.Equal(t, 1, counts["leaf"])
	assert.Equal(t, 1, counts["+"])
}

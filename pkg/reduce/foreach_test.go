package reduce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

func TestForEachVisitsInOrder(t *testing.T) {
	seq := stream.JSONArray[entry](strings.NewReader(`[{"v":"rust"},{"v":"go"},{"v":"rust"}]`))

	var seen []string
	err := ForEach(seq, func(e entry) {
		seen = append(seen, e.V)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"rust", "go", "rust"}, seen)
}

func TestForEachEmptySequence(t *testing.T) {
	seq := stream.JSONArray[entry](strings.NewReader(`[]`))

	calls := 0
	err := ForEach(seq, func(entry) {
		calls++
	})
	require.NoError(t, err)
	require.Zero(t, calls)
}

func TestForEachDecodeErrorAborts(t *testing.T) {
	seq := stream.JSONArray[int](strings.NewReader(`[1, "two", 3]`))

	var seen []int
	err := ForEach(seq, func(n int) {
		seen = append(seen, n)
	})
	require.Error(t, err)
	require.Equal(t, []int{1}, seen)
}

type recorder struct {
	seen []string
}

func (r *recorder) Accept(e entry) {
	r.seen = append(r.seen, e.V)
}

func TestForEachWithNamedSink(t *testing.T) {
	seq := stream.JSONArray[entry](strings.NewReader(`[{"v":"a"},{"v":"b"}]`))

	rec := &recorder{}
	require.NoError(t, ForEachWith[entry](seq, rec))
	require.Equal(t, []string{"a", "b"}, rec.seen)
}

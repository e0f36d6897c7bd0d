package reducers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/reduce"
	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

func TestLastNKeepsWindow(t *testing.T) {
	seq := stream.JSONArray[int](strings.NewReader(`[1, 2, 3, 4, 5]`))

	win, err := reduce.FoldWith[int, *deque.Deque[int]](seq, NewLastN[int](3))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, Snapshot(win))
}

func TestLastNShorterSequence(t *testing.T) {
	seq := stream.JSONArray[int](strings.NewReader(`[1, 2]`))

	win, err := reduce.FoldWith[int, *deque.Deque[int]](seq, NewLastN[int](5))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, Snapshot(win))
}

func TestLastNZeroValueKeepsNothing(t *testing.T) {
	seq := stream.JSONArray[int](strings.NewReader(`[1, 2, 3]`))

	win, err := reduce.FoldWith[int, *deque.Deque[int]](seq, LastN[int]{})
	require.NoError(t, err)
	require.Zero(t, win.Len())
}

func TestLastNEmbedded(t *testing.T) {
	var doc struct {
		Entries reduce.SeqFold[LastN[int], int, *deque.Deque[int]] `json:"entries"`
	}
	doc.Entries.R = NewLastN[int](2)

	input := `{"entries":[1, 2, 3, 4]}`
	require.NoError(t, json.Unmarshal([]byte(input), &doc))
	require.Equal(t, []int{3, 4}, Snapshot(doc.Entries.Value))
}

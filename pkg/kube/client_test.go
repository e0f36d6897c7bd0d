package kube

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/reduce"
	"github.com/EmilyShepherd/stream-reduce-go/pkg/source"
)

const podEvents = `{"type":"ADDED","object":{"metadata":{"name":"web-1","namespace":"default"},"status":{"phase":"Running"}}}
{"type":"ADDED","object":{"metadata":{"name":"web-2","namespace":"default"},"status":{"phase":"Pending"}}}
{"type":"DELETED","object":{"metadata":{"name":"web-1","namespace":"default"},"status":{"phase":"Running"}}}
`

// Fetch a list, reduce its items, then follow the collection with a
// watch from the list's resourceVersion. This is the shape the whole
// module exists for.
func TestListThenWatch(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		if r.URL.Query().Get("watch") == "true" {
			io.WriteString(w, podEvents)
			return
		}
		io.WriteString(w, podList)
	}))
	defer srv.Close()

	ctx := context.Background()
	client := source.NewClient(source.WithToken(source.StaticToken("secret")))
	gvr := GroupVersionResource{Version: "v1", Resource: "pods"}

	body, err := client.Fetch(ctx, ListURL(srv.URL, gvr, "default", nil))
	require.NoError(t, err)

	running, err := FoldItems(body, 0, func(acc int, pod corev1.Pod) int {
		if pod.Status.Phase == corev1.PodRunning {
			acc++
		}
		return acc
	})
	body.Close()
	require.NoError(t, err)
	require.Equal(t, 2, running)

	watchBody, err := client.Fetch(ctx, WatchURL(srv.URL, gvr, "default", "12345"))
	require.NoError(t, err)

	es := Events[corev1.Pod](watchBody)
	defer es.Stop()

	idx, err := reduce.FoldWith[Event[corev1.Pod], Index[corev1.Pod]](
		es, Cache[corev1.Pod, *corev1.Pod]{},
	)
	require.NoError(t, err)
	require.Len(t, idx, 1)

	pod, ok := idx.Get("default", "web-2")
	require.True(t, ok)
	require.Equal(t, corev1.PodPending, pod.Status.Phase)

	require.Len(t, paths, 2)
	require.Equal(t, "/api/v1/namespaces/default/pods", paths[0])
	require.Contains(t, paths[1], "watch=true")
	require.Contains(t, paths[1], "resourceVersion=12345")
}

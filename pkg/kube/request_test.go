package kube

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceRequestURL(t *testing.T) {
	tests := []struct {
		name string
		req  ResourceRequest
		want string
	}{
		{
			name: "core group collection",
			req: ResourceRequest{
				GVR: GroupVersionResource{Version: "v1", Resource: "pods"},
			},
			want: "/api/v1/pods",
		},
		{
			name: "core group namespaced",
			req: ResourceRequest{
				GVR:       GroupVersionResource{Version: "v1", Resource: "pods"},
				Namespace: "default",
			},
			want: "/api/v1/namespaces/default/pods",
		},
		{
			name: "named group with name",
			req: ResourceRequest{
				GVR:       GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"},
				Namespace: "prod",
				Name:      "web",
			},
			want: "/apis/apps/v1/namespaces/prod/deployments/web",
		},
		{
			name: "query values",
			req: ResourceRequest{
				GVR:    GroupVersionResource{Version: "v1", Resource: "pods"},
				Values: url.Values{"labelSelector": []string{"app=web"}},
			},
			want: "/api/v1/pods?labelSelector=app%3Dweb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.req.URL())
		})
	}
}

func TestListURL(t *testing.T) {
	gvr := GroupVersionResource{Version: "v1", Resource: "configmaps"}

	require.Equal(t,
		"https://example/api/v1/namespaces/kube-system/configmaps",
		ListURL("https://example", gvr, "kube-system", nil),
	)
}

func TestWatchURL(t *testing.T) {
	gvr := GroupVersionResource{Version: "v1", Resource: "pods"}

	require.Equal(t,
		"https://example/api/v1/pods?resourceVersion=12345&watch=true",
		WatchURL("https://example", gvr, "", "12345"),
	)

	require.Equal(t,
		"https://example/api/v1/pods?watch=true",
		WatchURL("https://example", gvr, "", ""),
	)
}

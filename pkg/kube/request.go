package kube

import (
	"net/url"
	"path"
)

// GroupVersionResource identifies an API resource collection.
type GroupVersionResource struct {
	Group    string
	Version  string
	Resource string
}

// ResourceRequest describes the location of a resource or collection
// on an API server.
type ResourceRequest struct {
	GVR       GroupVersionResource
	Namespace string
	Name      string
	Values    url.Values
}

// URL returns the server relative URL for the request.
func (r ResourceRequest) URL() string {
	var gvrPath string
	if r.GVR.Group == "" {
		gvrPath = path.Join("api", r.GVR.Version)
	} else {
		gvrPath = path.Join("apis", r.GVR.Group, r.GVR.Version)
	}
	var nsPath string
	if r.Namespace != "" {
		nsPath = path.Join("namespaces", r.Namespace)
	}
	url := "/" + path.Join(gvrPath, nsPath, r.GVR.Resource, r.Name)

	if queryString := r.Values.Encode(); queryString != "" {
		url += "?" + queryString
	}

	return url
}

// ListURL renders the absolute URL for listing a collection.
func ListURL(server string, gvr GroupVersionResource, namespace string, values url.Values) string {
	return server + ResourceRequest{GVR: gvr, Namespace: namespace, Values: values}.URL()
}

// WatchURL renders the absolute URL for watching a collection,
// starting from resourceVersion if one is given.
func WatchURL(server string, gvr GroupVersionResource, namespace, resourceVersion string) string {
	values := url.Values{}
	values.Set("watch", "true")
	if resourceVersion != "" {
		values.Set("resourceVersion", resourceVersion)
	}
	return server + ResourceRequest{GVR: gvr, Namespace: namespace, Values: values}.URL()
}

// Package kube reduces Kubernetes style documents: list responses
// whose items array may be enormous, and watch streams which never
// end on their own. The wire types come from k8s.io/apimachinery, so
// the resource types in k8s.io/api decode here directly.
package kube

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Object constrains a pointer to a decoded resource to expose the
// standard object metadata accessors.
type Object[T any] interface {
	*T
	metav1.Object
}

type EventType string

const (
	EventTypeAdded    EventType = "ADDED"
	EventTypeModified EventType = "MODIFIED"
	EventTypeDeleted  EventType = "DELETED"
	EventTypeBookmark EventType = "BOOKMARK"
	EventTypeError    EventType = "ERROR"
)

// Event represents a single event to a watched resource.
type Event[T any] struct {
	Type   EventType `json:"type"`
	Object T         `json:"object"`
}

package kube

import "strings"

// Key builds the index key for a namespace and name.
func Key(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "/" + name
}

// KeyOf builds the index key for a decoded object.
func KeyOf[T any, PT Object[T]](o PT) string {
	return Key(o.GetNamespace(), o.GetName())
}

// SplitKey splits an index key back into namespace and name.
func SplitKey(key string) (namespace, name string) {
	if i := strings.IndexByte(key, '/'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

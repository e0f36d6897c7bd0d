package kube

// Index is a keyed collection of objects, keyed by namespace/name.
type Index[E any] map[string]E

// Get looks up an object by namespace and name.
func (i Index[E]) Get(namespace, name string) (E, bool) {
	item, ok := i[Key(namespace, name)]
	return item, ok
}

// Cache maintains an [Index] from a sequence of watch events: adds
// and modifications upsert, deletions remove. It implements the
// Folder shape over events, so building an index is a fold, whether
// over a live [EventStream] or a recorded event sequence embedded in
// a document.
type Cache[E any, PE Object[E]] struct{}

func (Cache[E, PE]) Init() Index[E] {
	return make(Index[E])
}

func (Cache[E, PE]) Fold(acc Index[E], ev Event[E]) Index[E] {
	switch ev.Type {
	case EventTypeAdded, EventTypeModified:
		acc[KeyOf[E, PE](&ev.Object)] = ev.Object
	case EventTypeDeleted:
		delete(acc, KeyOf[E, PE](&ev.Object))
	}
	return acc
}

package source

import (
	"io"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// A Watcher re-opens a document every time its file is rewritten in
// place, so a reduction can be re-run over content that changes under
// a running process.
type Watcher struct {
	watcher *fsnotify.Watcher
	docs    chan io.ReadCloser
	log     logr.Logger
}

// WatchFile watches the document at path. Each rewrite delivers a
// freshly opened reader on Documents; if the consumer is still busy
// with the previous one, the update is dropped rather than queued, as
// only the latest content is worth reducing.
func WatchFile(path string, opts ...Option) (*Watcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		docs:    make(chan io.ReadCloser, 1),
		log:     o.log,
	}

	go w.run(path)

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Documents delivers a reader per rewrite of the watched file. The
// channel closes when the Watcher is closed.
func (w *Watcher) Documents() <-chan io.ReadCloser {
	return w.docs
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(path string) {
	defer close(w.docs)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}

			doc, err := Open(path)
			if err != nil {
				w.log.Error(err, "reopening document", "path", path)
				continue
			}

			select {
			case w.docs <- doc:
			default:
				doc.Close()
				w.log.V(1).Info("dropping update, consumer is behind", "path", path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "watching document", "path", path)
		}
	}
}

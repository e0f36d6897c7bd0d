package source

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// TokenProvider is a generic interface for a service that provides the
// auth token for document requests to use.
type TokenProvider interface {

	// Retrieves the current token at the time - this may return a fixed
	// or cached value, or it may go and do some work to acquire the
	// latest valid token.
	Token() string
}

// StaticToken is a TokenProvider wrapper for a fixed token.
type StaticToken string

func (t StaticToken) Token() string {
	return string(t)
}

// FileToken is a TokenProvider for a token which is backed by a file.
// This will lookup the value from the file, and will watch the file for
// changes, and re-read when required.
//
// This suits credentials which are rotated in place under a running
// process, such as service account tokens mounted into a pod.
type FileToken struct {
	mutex sync.RWMutex
	token string
}

func NewFileToken(filename string) (*FileToken, error) {
	value, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	fileToken := FileToken{
		token: string(value),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					value, err := os.ReadFile(filename)
					if err == nil {
						fileToken.mutex.Lock()
						fileToken.token = string(value)
						fileToken.mutex.Unlock()
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	err = watcher.Add(filename)
	if err != nil {
		return nil, err
	}

	return &fileToken, nil
}

func (t *FileToken) Token() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.token
}

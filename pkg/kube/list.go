package kube

import (
	"encoding/json"
	"fmt"
	"io"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/reduce"
	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

// List is a list response whose items are folded as they decode
// instead of being collected. Kind, apiVersion and metadata decode as
// usual, so the resourceVersion needed to start a watch survives while
// the items themselves are reduced away:
//
//	var pods kube.List[reducers.Count[corev1.Pod], corev1.Pod, int]
//	err := json.NewDecoder(body).Decode(&pods)
//	// pods.Items.Value is the count, pods.Metadata.ResourceVersion is set
type List[F reduce.Folder[E, A], E, A any] struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta         `json:"metadata,omitempty"`
	Items           reduce.SeqFold[F, E, A] `json:"items"`
}

// FoldItems folds the items of a list document read from r, keeping
// no more than one decoded item alive at a time. Fields other than
// items are skipped.
func FoldItems[E, A any](r io.Reader, init A, combine func(acc A, item E) A) (A, error) {
	var zero A

	dec := json.NewDecoder(r)
	if err := itemsIn(dec); err != nil {
		return zero, err
	}

	acc, err := reduce.Fold(stream.Elements[E](dec), init, combine)
	if err != nil {
		return zero, err
	}

	return acc, finishList(dec)
}

// EachItem calls visit once per item of a list document read from r.
func EachItem[E any](r io.Reader, visit func(item E)) error {
	dec := json.NewDecoder(r)
	if err := itemsIn(dec); err != nil {
		return err
	}

	if err := reduce.ForEach(stream.Elements[E](dec), visit); err != nil {
		return err
	}

	return finishList(dec)
}

// FindItem returns the first item of a list document for which match
// reports true. The rest of the document is consumed either way.
func FindItem[E any](r io.Reader, match func(item *E) bool) (E, bool, error) {
	var zero E

	dec := json.NewDecoder(r)
	if err := itemsIn(dec); err != nil {
		return zero, false, err
	}

	item, ok, err := reduce.Find(stream.Elements[E](dec), match)
	if err != nil {
		return zero, false, err
	}

	return item, ok, finishList(dec)
}

// itemsIn advances dec to the items field of a list document,
// skipping over everything before it.
func itemsIn(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Token(json.Delim('{')) {
		return fmt.Errorf("expected list document, got %v", tok)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if tok == json.Token(json.Delim('}')) {
			return fmt.Errorf("list document has no items field")
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if key == "items" {
			return nil
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
}

// finishList consumes whatever follows the items array, so the whole
// document is read before the reduction result is handed back.
func finishList(dec *json.Decoder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if tok == json.Token(json.Delim('}')) {
			return nil
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
}

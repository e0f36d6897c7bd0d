package kube

// Operator compares a label value against a requirement's value.
type Operator string

const (
	Equals      Operator = "="
	NotEquals   Operator = "!="
	LessThan    Operator = "lt"
	GreaterThan Operator = "gt"
	Exists      Operator = "exists"
)

// Requirement is a single label condition.
type Requirement struct {
	Label    string
	Operator Operator
	Value    string
}

// Selector matches objects by namespace and label requirements on the
// client side. It implements the Matcher shape, so it can drive a
// search over a list's items directly.
type Selector[E any, PE Object[E]] struct {
	Namespace string
	Labels    []Requirement
}

func (s Selector[E, PE]) Match(item *E) bool {
	obj := PE(item)
	if s.Namespace != "" && s.Namespace != obj.GetNamespace() {
		return false
	}
	return labelMatch(s.Labels, obj.GetLabels())
}

func labelMatch(reqs []Requirement, labels map[string]string) bool {
	for _, req := range reqs {
		value, exists := labels[req.Label]
		if !exists {
			return false
		}
		switch req.Operator {
		case Equals:
			if value != req.Value {
				return false
			}
		case NotEquals:
			if value == req.Value {
				return false
			}
		case LessThan:
			if value >= req.Value {
				return false
			}
		case GreaterThan:
			if value <= req.Value {
				return false
			}
		}
	}

	return true
}

// Select returns the indexed objects matching s, in no particular
// order.
func Select[E any, PE Object[E]](i Index[E], s Selector[E, PE]) []E {
	var out []E
	for key := range i {
		item := i[key]
		if s.Match(&item) {
			out = append(out, item)
		}
	}
	return out
}

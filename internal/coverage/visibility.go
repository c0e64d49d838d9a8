package coverage

import (
	"errors"
	"fmt"

	"github.com/dgallion1/doccover/internal/doctree"
)

// ErrUnsupportedKind is returned when the visibility predicate meets an
// element it does not know how to classify.
var ErrUnsupportedKind = errors.New("unsupported element kind")

// isPublic classifies an element of the snapshot.
func isPublic(el any) (bool, error) {
	switch e := el.(type) {
	case *doctree.Type:
		if e == nil {
			break
		}
		switch e.Kind {
		case doctree.KindClass, doctree.KindInterface, doctree.KindEnum, doctree.KindAnnotation:
			return e.Public, nil
		}
		return false, fmt.Errorf("%w: type %s has kind %q", ErrUnsupportedKind, e.Name, e.Kind)
	case *doctree.Member:
		if e != nil {
			return e.Public, nil
		}
	case *doctree.Method:
		if e != nil {
			return e.Public, nil
		}
	case nil:
		return false, fmt.Errorf("%w: nil element", ErrUnsupportedKind)
	default:
		return false, fmt.Errorf("%w: %T", ErrUnsupportedKind, el)
	}
	return false, fmt.Errorf("%w: nil %T", ErrUnsupportedKind, el)
}

// included reports whether el takes part in the counts under cfg.
func included(cfg Configuration, el any) (bool, error) {
	pub, err := isPublic(el)
	if err != nil {
		return false, err
	}
	return pub || !cfg.PublicOnly, nil
}

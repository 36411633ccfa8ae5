package stampede

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Kind is the discriminant tag of a fault. Containment is decided by set
// membership on kinds, never by concrete error types.
type Kind string

// KindUntyped is the kind reported for errors that carry no Fault tag.
const KindUntyped Kind = "untyped"

// Fault attaches a Kind to an error. The wrapped error stays reachable via
// errors.Is/errors.As, so propagated faults keep their original identity.
type Fault struct {
	kind Kind
	err  error
}

// NewFault tags err with kind. A nil err yields a nil error.
func NewFault(kind Kind, err error) error {
	if IsNil(err) {
		return nil
	}
	return &Fault{kind: kind, err: err}
}

// Faultf tags a freshly formatted error with kind.
func Faultf(kind Kind, format string, args ...any) error {
	return &Fault{kind: kind, err: fmt.Errorf(format, args...)}
}

func (f *Fault) Error() string {
	return f.err.Error()
}

func (f *Fault) Unwrap() error {
	return f.err
}

func (f *Fault) Kind() Kind {
	return f.kind
}

// KindOf extracts the tag of the outermost Fault in err's chain,
// or KindUntyped when there is none.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return KindUntyped
}

// Describe renders err as the flat "kind: message" text stored in report
// rows. Nil errors render empty.
func Describe(err error) string {
	if IsNil(err) {
		return ""
	}
	return fmt.Sprintf("%s: %s", KindOf(err), err.Error())
}

// CatchPolicy selects which fault kinds are contained as per-item failures.
// Anything it does not cover propagates and aborts the whole run.
// The zero value catches nothing.
type CatchPolicy struct {
	all   bool
	kinds map[Kind]struct{}
}

// CatchAll contains every per-item error. This is the default policy.
func CatchAll() CatchPolicy {
	return CatchPolicy{all: true}
}

// CatchNone lets every error propagate, aborting on the first failure.
func CatchNone() CatchPolicy {
	return CatchPolicy{}
}

// Catch contains only errors whose kind is in the given set.
func Catch(kinds ...Kind) CatchPolicy {
	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return CatchPolicy{kinds: set}
}

// Covers reports whether err should be contained under this policy.
func (p CatchPolicy) Covers(err error) bool {
	if IsNil(err) {
		return false
	}
	if p.all {
		return true
	}
	_, ok := p.kinds[KindOf(err)]
	return ok
}

func (p CatchPolicy) String() string {
	if p.all {
		return "all"
	}
	if len(p.kinds) == 0 {
		return "none"
	}
	names := make([]string, 0, len(p.kinds))
	for k := range p.kinds {
		names = append(names, string(k))
	}
	slices.Sort(names)
	return "kinds(" + strings.Join(names, ",") + ")"
}

// IsNil treats typed nil pointers stored in error interfaces as nil.
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

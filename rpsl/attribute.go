package rpsl

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// flag aliases for readable schema tables
const (
	REQUIRED = true
	OPTIONAL = false
	MULTIPLE = true
	SINGLE   = false
)

type AttrKind int

const (
	KindPlain AttrKind = iota
	KindFixed
	KindMatched
)

func (k AttrKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFixed:
		return "fixed"
	case KindMatched:
		return "matched"
	}
	return "unknown"
}

// Attribute is a named value slot of an RPSL object. Name and flags are fixed
// at construction; a single-valued attribute never holds more than one value.
type Attribute struct {
	name     string
	required bool
	multiple bool
	kind     AttrKind
	allowed  []string
	pattern  *regexp.Regexp
	values   []AttributeValue
}

func NewAttribute(name string, required, multiple bool) *Attribute {
	return &Attribute{name: name, required: required, multiple: multiple}
}

// NewFixedAttribute creates a single-valued attribute that only accepts one
// of the allowed literals.
func NewFixedAttribute(name string, required bool, allowed []string) *Attribute {
	sAllowed := make([]string, len(allowed))
	copy(sAllowed, allowed)
	return &Attribute{
		name:     name,
		required: required,
		kind:     KindFixed,
		allowed:  sAllowed,
	}
}

// NewMatchedAttribute creates a single-valued attribute whose values must
// match pattern (RE2 syntax). A malformed pattern is a schema bug and panics.
func NewMatchedAttribute(name string, required bool, pattern string) *Attribute {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("rpsl: attribute [%s]: invalid regular expression %q: %v", name, pattern, err))
	}
	return &Attribute{
		name:     name,
		required: required,
		kind:     KindMatched,
		pattern:  rx,
	}
}

func (a *Attribute) Name() string { return a.name }
func (a *Attribute) IsRequired() bool { return a.required }
func (a *Attribute) IsMultiple() bool { return a.multiple }
func (a *Attribute) IsDefined() bool { return len(a.values) > 0 }
func (a *Attribute) Kind() AttrKind { return a.kind }
func (a *Attribute) Allowed() []string { return a.allowed }

// Pattern returns the match expression of a matched attribute, "" otherwise.
func (a *Attribute) Pattern() string {
	if a.pattern == nil {
		return ""
	}
	return a.pattern.String()
}

// SetValue replaces the current values. nil resets the attribute.
func (a *Attribute) SetValue(v any) error {
	if v == nil {
		a.values = nil
		return nil
	}
	sNew, err := a.convert(v)
	if err != nil {
		return err
	}
	a.values = sNew
	return nil
}

// AddValue appends to a multiple attribute and replaces the value of a single
// one. Unlike SetValue, nil leaves the attribute untouched.
func (a *Attribute) AddValue(v any) error {
	if v == nil {
		return nil
	}
	sNew, err := a.convert(v)
	if err != nil {
		return err
	}
	if !a.multiple {
		a.values = sNew
		return nil
	}
	a.values = append(a.values, sNew...)
	return nil
}

// GetValue returns nil when undefined, the string value of a single
// attribute, or a []string of all values of a multiple attribute.
func (a *Attribute) GetValue() any {
	if len(a.values) == 0 {
		return nil
	}
	if !a.multiple {
		return a.values[0].String()
	}
	return a.Values()
}

// Value returns the first value, "" when undefined.
func (a *Attribute) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0].String()
}

// Values returns all values in insertion order, comments included.
func (a *Attribute) Values() []string {
	sOut := make([]string, len(a.values))
	for ix := range a.values {
		sOut[ix] = a.values[ix].String()
	}
	return sOut
}

// Items returns copies of the stored values including their decorations.
func (a *Attribute) Items() []AttributeValue {
	sOut := make([]AttributeValue, len(a.values))
	copy(sOut, a.values)
	return sOut
}

// ToArray flattens the attribute into one wire record per value.
func (a *Attribute) ToArray() []WireAttribute {
	sOut := make([]WireAttribute, 0, len(a.values))
	for _, av := range a.values {
		sOut = append(sOut, av.wire(a.name))
	}
	return sOut
}

func (a *Attribute) convert(v any) ([]AttributeValue, error) {

	if bs, ok := v.([]byte); ok {
		return nil, a.typeErr(bs)
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		av, err := a.scalar(v)
		if err != nil {
			return nil, err
		}
		return []AttributeValue{av}, nil
	}

	if !a.multiple {
		return nil, errors.WithMessagef(EInvalidDataType,
			"the [%s] attribute does not allow multiple values", a.name)
	}

	sOut := make([]AttributeValue, 0, rv.Len())
	for ix := 0; ix < rv.Len(); ix++ {
		elem := rv.Index(ix).Interface()
		if elem == nil {
			continue
		}
		av, err := a.scalar(elem)
		if err != nil {
			return nil, err
		}
		sOut = append(sOut, av)
	}
	return sOut, nil
}

// scalar converts one value, then applies the fixed/matched constraint to
// its bare text. Constrained attributes keep the bare text only.
func (a *Attribute) scalar(v any) (AttributeValue, error) {

	av, err := a.stringValue(v)
	if err != nil {
		return av, err
	}

	switch a.kind {
	case KindFixed:
		for _, s := range a.allowed {
			if s == av.value {
				return AttributeValue{value: av.value}, nil
			}
		}
		return av, errors.WithMessagef(EInvalidValue,
			"value %q is not allowed for the [%s] attribute", av.value, a.name)

	case KindMatched:
		if !a.pattern.MatchString(av.value) {
			return av, errors.WithMessagef(EInvalidValue,
				"invalid value %q for the [%s] attribute", av.value, a.name)
		}
		return AttributeValue{value: av.value}, nil
	}

	return av, nil
}

func (a *Attribute) stringValue(v any) (AttributeValue, error) {

	switch V := v.(type) {
	case AttributeValue:
		return V, nil
	case *AttributeValue:
		if V == nil {
			return AttributeValue{}, a.typeErr(v)
		}
		return *V, nil
	case string:
		return AttributeValue{value: V}, nil
	case bool:
		return AttributeValue{value: strconv.FormatBool(V)}, nil
	case int:
		return AttributeValue{value: strconv.FormatInt(int64(V), 10)}, nil
	case int8:
		return AttributeValue{value: strconv.FormatInt(int64(V), 10)}, nil
	case int16:
		return AttributeValue{value: strconv.FormatInt(int64(V), 10)}, nil
	case int32:
		return AttributeValue{value: strconv.FormatInt(int64(V), 10)}, nil
	case int64:
		return AttributeValue{value: strconv.FormatInt(V, 10)}, nil
	case uint:
		return AttributeValue{value: strconv.FormatUint(uint64(V), 10)}, nil
	case uint8:
		return AttributeValue{value: strconv.FormatUint(uint64(V), 10)}, nil
	case uint16:
		return AttributeValue{value: strconv.FormatUint(uint64(V), 10)}, nil
	case uint32:
		return AttributeValue{value: strconv.FormatUint(uint64(V), 10)}, nil
	case uint64:
		return AttributeValue{value: strconv.FormatUint(V, 10)}, nil
	case float32:
		return AttributeValue{value: strconv.FormatFloat(float64(V), 'f', -1, 32)}, nil
	case float64:
		return AttributeValue{value: strconv.FormatFloat(V, 'f', -1, 64)}, nil
	case fmt.Stringer:
		if rv := reflect.ValueOf(V); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return AttributeValue{}, a.typeErr(v)
		}
		return AttributeValue{value: V.String()}, nil
	}

	return AttributeValue{}, a.typeErr(v)
}

func (a *Attribute) typeErr(v any) error {
	return errors.WithMessagef(EInvalidDataType,
		"the [%s] attribute does not allow the %T data type", a.name, v)
}

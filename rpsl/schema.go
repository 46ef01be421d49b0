package rpsl

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AttrSpec declares one attribute of a schema.
type AttrSpec struct {
	Name     string
	Required bool
	Multiple bool
	Kind     AttrKind
	Allowed  []string
	Pattern  string
}

func Attr(name string, required, multiple bool) AttrSpec {
	return AttrSpec{Name: name, Required: required, Multiple: multiple}
}

func Fixed(name string, required bool, allowed ...string) AttrSpec {
	return AttrSpec{Name: name, Required: required, Kind: KindFixed, Allowed: allowed}
}

func Matched(name string, required bool, pattern string) AttrSpec {
	return AttrSpec{Name: name, Required: required, Kind: KindMatched, Pattern: pattern}
}

// Gen declares a server-generated attribute.
func Gen(name string, multiple bool) AttrSpec {
	return AttrSpec{Name: name, Multiple: multiple}
}

func (s AttrSpec) build() *Attribute {
	switch s.Kind {
	case KindFixed:
		return NewFixedAttribute(s.Name, s.Required, s.Allowed)
	case KindMatched:
		return NewMatchedAttribute(s.Name, s.Required, s.Pattern)
	}
	return NewAttribute(s.Name, s.Required, s.Multiple)
}

// Schema is the declarative description of one RPSL object type.
type Schema struct {
	Type       string
	PrimaryKey string

	// DefaultKey seeds the primary key when New is called without one.
	DefaultKey string

	Attributes []AttrSpec
	Generated  []AttrSpec

	// ParseKey applies constructor input to a fresh object. When nil the
	// first argument is set on the primary key attribute.
	ParseKey func(o *Object, args []string) error

	// KeyValue computes the lookup key. When nil the value of the primary
	// key attribute is used.
	KeyValue func(o *Object) string
}

func (s *Schema) check() {

	if len(s.Type) == 0 {
		panic("rpsl: schema without type")
	}

	bSource := false
	mSeen := make(map[string]bool, len(s.Attributes))
	for _, spec := range s.Attributes {
		if spec.Name == "source" {
			bSource = spec.Required && !spec.Multiple
		}
		if mSeen[spec.Name] {
			panic(fmt.Sprintf("rpsl: schema [%s]: duplicate attribute [%s]", s.Type, spec.Name))
		}
		mSeen[spec.Name] = true
		// compiles matched patterns
		spec.build()
	}

	if !mSeen[s.PrimaryKey] {
		panic(fmt.Sprintf("rpsl: schema [%s]: primary key [%s] is not an attribute", s.Type, s.PrimaryKey))
	}
	if !bSource {
		panic(fmt.Sprintf("rpsl: schema [%s]: [source] must be a required, single attribute", s.Type))
	}
}

var registry = struct {
	sync.RWMutex
	m map[string]*Schema
}{m: make(map[string]*Schema)}

// Register adds (or replaces) the schema of an object type. A malformed
// schema is a programming error and panics.
func Register(s *Schema) {
	s.check()
	registry.Lock()
	registry.m[s.Type] = s
	registry.Unlock()
}

// Lookup returns the registered schema of an object type.
func Lookup(typ string) (*Schema, bool) {
	registry.RLock()
	s, ok := registry.m[typ]
	registry.RUnlock()
	return s, ok
}

// Types lists the registered object types, sorted.
func Types() []string {
	registry.RLock()
	sOut := make([]string, 0, len(registry.m))
	for k := range registry.m {
		sOut = append(sOut, k)
	}
	registry.RUnlock()
	sort.Strings(sOut)
	return sOut
}

// ClassName converts an RPSL type name into its canonical class form:
// "as-block" => "AsBlock".
func ClassName(typ string) string {
	var sb strings.Builder
	for _, part := range strings.Split(typ, "-") {
		if len(part) == 0 {
			continue
		}
		r, n := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[n:])
	}
	return sb.String()
}

// New creates an empty object of a registered type. key is passed to the
// type's key parser; without it the schema's default key (if any) is used.
func New(typ string, key ...string) (*Object, error) {

	s, ok := Lookup(typ)
	if !ok {
		return nil, errors.WithMessagef(EInvalidValue,
			"object type %q (%s) does not exist", typ, ClassName(typ))
	}

	o := newObject(s)

	if len(key) == 0 && len(s.DefaultKey) > 0 {
		key = []string{s.DefaultKey}
	}
	if len(key) == 0 {
		return o, nil
	}

	if s.ParseKey != nil {
		if err := s.ParseKey(o, key); err != nil {
			return nil, err
		}
		return o, nil
	}

	if err := o.Set(s.PrimaryKey, key[0]); err != nil {
		return nil, err
	}
	return o, nil
}

// MustNew is New for static type names; it panics on error.
func MustNew(typ string, key ...string) *Object {
	o, err := New(typ, key...)
	if err != nil {
		panic(err)
	}
	return o
}

package rpsl

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// XMLHeader is the declaration the REST API expects on XML request bodies.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

// Object is an RPSL object: an ordered set of user-settable attributes plus
// the attributes only the server sets (created, last-modified, ...).
//
// Objects of registered types carry the attributes of their schema. Dummy
// objects (unregistered types) create attributes on first access.
type Object struct {
	typ    string
	pkName string
	schema *Schema
	dummy  bool

	attrs []*Attribute
	gen   []*Attribute
	mAttr map[string]*Attribute
	mGen  map[string]*Attribute
}

func newObject(s *Schema) *Object {
	o := &Object{
		typ:    s.Type,
		pkName: s.PrimaryKey,
		schema: s,
		mAttr:  make(map[string]*Attribute, len(s.Attributes)),
		mGen:   make(map[string]*Attribute, len(s.Generated)),
	}
	for _, spec := range s.Attributes {
		o.put(spec.build())
	}
	for _, spec := range s.Generated {
		o.putGenerated(NewAttribute(spec.Name, OPTIONAL, spec.Multiple))
	}
	return o
}

// NewDummy creates a schema-less object for an unregistered type. pkName
// defaults to typ. The object starts with the attributes every RPSL object
// shares; anything else is created (optional, multiple) on first access.
func NewDummy(typ, pkName string) *Object {

	if len(typ) == 0 {
		panic("rpsl: dummy object without type")
	}
	if len(pkName) == 0 {
		pkName = typ
	}

	o := newBareDummy(typ, pkName)

	if typ != pkName {
		o.put(NewAttribute(typ, REQUIRED, SINGLE))
	}
	o.put(NewAttribute(pkName, REQUIRED, SINGLE))
	for _, name := range []string{"org", "admin-c", "tech-c", "remarks", "notify"} {
		o.put(NewAttribute(name, OPTIONAL, MULTIPLE))
	}
	o.put(NewAttribute("mnt-by", REQUIRED, SINGLE))
	o.put(NewAttribute("changed", OPTIONAL, MULTIPLE))
	o.put(NewAttribute("source", REQUIRED, SINGLE))

	o.putGenerated(NewAttribute("created", OPTIONAL, SINGLE))
	o.putGenerated(NewAttribute("last-modified", OPTIONAL, SINGLE))
	return o
}

func newBareDummy(typ, pkName string) *Object {
	return &Object{
		typ:    typ,
		pkName: pkName,
		dummy:  true,
		mAttr:  make(map[string]*Attribute),
		mGen:   make(map[string]*Attribute),
	}
}

func (o *Object) put(a *Attribute) {
	if prev, ok := o.mAttr[a.name]; ok {
		for ix := range o.attrs {
			if o.attrs[ix] == prev {
				o.attrs[ix] = a
			}
		}
	} else {
		o.attrs = append(o.attrs, a)
	}
	o.mAttr[a.name] = a
}

func (o *Object) putGenerated(a *Attribute) {
	if prev, ok := o.mGen[a.name]; ok {
		for ix := range o.gen {
			if o.gen[ix] == prev {
				o.gen[ix] = a
			}
		}
	} else {
		o.gen = append(o.gen, a)
	}
	o.mGen[a.name] = a
}

func (o *Object) Type() string           { return o.typ }
func (o *Object) PrimaryKeyName() string { return o.pkName }
func (o *Object) IsDummy() bool          { return o.dummy }
func (o *Object) ClassName() string      { return ClassName(o.typ) }

// Schema returns the registered schema, nil for dummy objects.
func (o *Object) Schema() *Schema { return o.schema }

// PrimaryKey returns the value the object is looked up by.
func (o *Object) PrimaryKey() string {
	if o.schema != nil && o.schema.KeyValue != nil {
		return o.schema.KeyValue(o)
	}
	if a, ok := o.mAttr[o.pkName]; ok {
		return a.Value()
	}
	return ""
}

// SetupAttribute declares (or redeclares) a user-settable attribute. An
// attribute of the same name keeps its position but loses its values.
func (o *Object) SetupAttribute(name string, required, multiple bool) *Attribute {
	a := NewAttribute(name, required, multiple)
	o.put(a)
	return a
}

// SetupGenerated declares a server-generated attribute.
func (o *Object) SetupGenerated(name string, multiple bool) *Attribute {
	a := NewAttribute(name, OPTIONAL, multiple)
	o.putGenerated(a)
	return a
}

// Attribute returns the named attribute, user-settable ones first. Dummy
// objects create unknown attributes as optional and multiple.
func (o *Object) Attribute(name string) (*Attribute, error) {
	if a, ok := o.mAttr[name]; ok {
		return a, nil
	}
	if a, ok := o.mGen[name]; ok {
		return a, nil
	}
	if o.dummy {
		return o.SetupAttribute(name, OPTIONAL, MULTIPLE), nil
	}
	return nil, errors.WithMessagef(EInvalidAttribute,
		"attribute %q is not defined for the %s object", name, strings.ToUpper(o.typ))
}

func (o *Object) settable(name string) (*Attribute, error) {
	if _, ok := o.mGen[name]; ok {
		if _, ok := o.mAttr[name]; !ok {
			return nil, errors.WithMessagef(EInvalidAttribute,
				"attribute %q of the %s object is generated by the server", name, strings.ToUpper(o.typ))
		}
	}
	return o.Attribute(name)
}

// Get returns the value of the named attribute, as Attribute.GetValue.
func (o *Object) Get(name string) (any, error) {
	a, err := o.Attribute(name)
	if err != nil {
		return nil, err
	}
	return a.GetValue(), nil
}

// Set replaces the value of a user-settable attribute. Generated attributes
// (created, last-modified, ...) fail with EInvalidAttribute; they can only
// be filled through Attribute, which is what response parsing does.
func (o *Object) Set(name string, v any) error {
	a, err := o.settable(name)
	if err != nil {
		return err
	}
	return a.SetValue(v)
}

// Add adds to the value of a user-settable attribute. Generated attributes
// are rejected as in Set.
func (o *Object) Add(name string, v any) error {
	a, err := o.settable(name)
	if err != nil {
		return err
	}
	return a.AddValue(v)
}

// Unset resets a user-settable attribute.
func (o *Object) Unset(name string) {
	if a, ok := o.mAttr[name]; ok {
		a.SetValue(nil)
	}
}

// Has reports whether the named attribute exists and is defined.
func (o *Object) Has(name string) bool {
	if a, ok := o.mAttr[name]; ok && a.IsDefined() {
		return true
	}
	a, ok := o.mGen[name]
	return ok && a.IsDefined()
}

// Attributes returns the user-settable attributes in declaration order.
func (o *Object) Attributes() []*Attribute {
	sOut := make([]*Attribute, len(o.attrs))
	copy(sOut, o.attrs)
	return sOut
}

// Generated returns the server-generated attributes.
func (o *Object) Generated() []*Attribute {
	sOut := make([]*Attribute, len(o.gen))
	copy(sOut, o.gen)
	return sOut
}

// ForEachDefined calls fn for every defined attribute, user-settable ones
// first. Iteration stops on the first error.
func (o *Object) ForEachDefined(fn func(a *Attribute) error) error {
	for _, sAttrs := range [2][]*Attribute{o.attrs, o.gen} {
		for _, a := range sAttrs {
			if !a.IsDefined() {
				continue
			}
			if err := fn(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the number of defined attributes.
func (o *Object) Count() int {
	n := 0
	o.ForEachDefined(func(*Attribute) error { n++; return nil })
	return n
}

// Validate returns the names of undefined required attributes.
func (o *Object) Validate() []string {
	var sMissing []string
	for _, a := range o.attrs {
		if a.required && !a.IsDefined() {
			sMissing = append(sMissing, a.name)
		}
	}
	return sMissing
}

func (o *Object) IsValid() bool {
	return len(o.Validate()) == 0
}

// WireObject flattens the object. It fails with EIncompleteObject on the
// first undefined required attribute in declaration order.
func (o *Object) WireObject() (WireObject, error) {

	var wo WireObject
	for _, a := range o.attrs {
		if a.required && !a.IsDefined() {
			return wo, errors.WithMessagef(EIncompleteObject,
				"mandatory attribute [%s] of the %s object is not set", a.name, strings.ToUpper(o.typ))
		}
		wo.Attributes.Attribute = append(wo.Attributes.Attribute, a.ToArray()...)
	}
	for _, a := range o.gen {
		wo.Attributes.Attribute = append(wo.Attributes.Attribute, a.ToArray()...)
	}
	if wo.Attributes.Attribute == nil {
		wo.Attributes.Attribute = []WireAttribute{}
	}

	szSource := ""
	if a, ok := o.mAttr["source"]; ok && a.IsDefined() {
		szSource = a.values[0].value
	}
	wo.Source = &WireSource{ID: szSource}
	return wo, nil
}

// ToWire wraps the object into a request document.
func (o *Object) ToWire() (*WhoisResources, error) {
	wo, err := o.WireObject()
	if err != nil {
		return nil, err
	}
	return &WhoisResources{Objects: &WireObjects{Object: []WireObject{wo}}}, nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	res, err := o.ToWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}

// ToXML renders the object as an XML request document.
func (o *Object) ToXML() ([]byte, error) {
	res, err := o.ToWire()
	if err != nil {
		return nil, err
	}
	res.Objects.Object[0].Type = o.typ

	bsXml, err := xml.Marshal(res)
	if err != nil {
		return nil, err
	}
	return append([]byte(XMLHeader), bsXml...), nil
}

// String dumps the defined attributes in whois text layout.
func (o *Object) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s):\n", o.ClassName(), o.PrimaryKey())
	o.ForEachDefined(func(a *Attribute) error {
		for _, s := range a.Values() {
			fmt.Fprintf(&sb, "   %-20s %s\n", a.name+":", s)
		}
		return nil
	})
	return sb.String()
}

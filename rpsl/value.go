package rpsl

import (
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

// AttributeValue is an attribute value as found in server responses: the bare
// value plus an optional comment and, for references to other objects, the
// referenced type and its location.
type AttributeValue struct {
	value   string
	comment string
	refType string
	link    string
}

func NewAttributeValue(value string) AttributeValue {
	return AttributeValue{value: value}
}

// String renders "value # comment", or the bare value without a comment.
func (v AttributeValue) String() string {
	if len(v.comment) > 0 {
		return v.value + " # " + v.comment
	}
	return v.value
}

func (v AttributeValue) Value() string   { return v.value }
func (v AttributeValue) Comment() string { return v.comment }
func (v AttributeValue) Type() string    { return v.refType }
func (v AttributeValue) Link() string    { return v.link }

// IsPlain reports whether the value carries no decoration.
func (v AttributeValue) IsPlain() bool {
	return v.comment == "" && v.refType == "" && v.link == ""
}

func (v AttributeValue) WithComment(comment string) AttributeValue {
	v.comment = comment
	return v
}

func (v AttributeValue) WithType(refType string) AttributeValue {
	v.refType = refType
	return v
}

// WithLink sets the location of the referenced object. Anything that is not
// an absolute URL is ignored and leaves the link unset.
func (v AttributeValue) WithLink(link string) AttributeValue {
	if govalidator.IsRequestURL(link) {
		v.link = link
	}
	return v
}

// Object creates an empty object of the referenced type, keyed by the bare value.
func (v AttributeValue) Object() (*Object, error) {

	if len(v.refType) == 0 {
		return nil, errors.WithMessagef(EInvalidDataType,
			"value %q is not a referenced object", v.value)
	}

	if _, ok := Lookup(v.refType); !ok {
		return nil, errors.WithMessagef(EInvalidValue,
			"object type %q (%s) does not exist", v.refType, ClassName(v.refType))
	}

	return New(v.refType, v.value)
}

func (v AttributeValue) wire(name string) WireAttribute {
	wa := WireAttribute{
		Name:           name,
		Value:          v.value,
		Comment:        v.comment,
		ReferencedType: v.refType,
	}
	if len(v.link) > 0 {
		wa.Link = &WireLink{Type: "locator", Href: v.link}
	}
	return wa
}

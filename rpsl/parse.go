package rpsl

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/pkg/errors"
)

// Skipped describes a response attribute that could not be applied.
type Skipped struct {
	Type      string
	Attribute string
	Value     string
	Err       error
}

func (s Skipped) Error() string {
	return fmt.Sprintf("%s: [%s] %q: %s", s.Type, s.Attribute, s.Value, s.Err)
}

func (s Skipped) Unwrap() error { return s.Err }

// FromWire builds an object from one response item. Registered types get
// their schema, anything else a dummy keyed by the item's primary key
// attribute. Attributes that fail to apply are returned as Skipped and do
// not abort the rest of the item.
func FromWire(item WireObject) (*Object, []Skipped, error) {

	if len(item.Type) == 0 {
		return nil, nil, errors.WithMessage(EInvalidValue, "response object without type")
	}

	var pk WireAttribute
	if (item.PrimaryKey != nil) && (len(item.PrimaryKey.Attribute) > 0) {
		pk = item.PrimaryKey.Attribute[0]
	}

	var o *Object
	if s, ok := Lookup(item.Type); ok {
		var err error
		if len(pk.Value) > 0 {
			o, err = New(item.Type, pk.Value)
		}
		if (o == nil) || (err != nil) {
			// the attribute loop reports a bad key
			o = newObject(s)
		}
	} else {
		o = NewDummy(item.Type, pk.Name)
	}

	var sSkipped []Skipped
	for _, wa := range item.Attributes.Attribute {
		if err := applyWire(o, wa); err != nil {
			sSkipped = append(sSkipped, Skipped{
				Type:      item.Type,
				Attribute: wa.Name,
				Value:     wa.Value,
				Err:       err,
			})
		}
	}

	return o, sSkipped, nil
}

func applyWire(o *Object, wa WireAttribute) error {

	a, err := o.Attribute(wa.Name)
	if err != nil {
		return err
	}

	if wa.IsPlain() || (wa.Name == "source") {
		return a.AddValue(wa.Value)
	}

	av := NewAttributeValue(wa.Value).
		WithComment(wa.Comment).
		WithType(wa.ReferencedType)
	if (wa.Link != nil) && (wa.Link.Type == "locator") {
		av = av.WithLink(wa.Link.Href)
	}
	return a.AddValue(av)
}

// FromResources builds every object of a response document.
func FromResources(res *WhoisResources) ([]*Object, []Skipped, error) {

	if (res == nil) || (res.Objects == nil) {
		return nil, nil, nil
	}

	sObj := make([]*Object, 0, len(res.Objects.Object))
	var sSkipped []Skipped
	for _, item := range res.Objects.Object {
		o, sSk, err := FromWire(item)
		if err != nil {
			return nil, nil, err
		}
		sObj = append(sObj, o)
		sSkipped = append(sSkipped, sSk...)
	}
	return sObj, sSkipped, nil
}

// DecodeJSON parses a JSON response document.
func DecodeJSON(bs []byte) (*WhoisResources, error) {
	res := new(WhoisResources)
	if err := json.Unmarshal(bs, res); err != nil {
		return nil, errors.Wrap(err, "decode whois-resources")
	}
	return res, nil
}

// DecodeXML parses an XML response document.
func DecodeXML(bs []byte) (*WhoisResources, error) {
	res := new(WhoisResources)
	if err := xml.Unmarshal(bs, res); err != nil {
		return nil, errors.Wrap(err, "decode whois-resources")
	}
	return res, nil
}

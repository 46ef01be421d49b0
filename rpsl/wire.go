package rpsl

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
)

/*
	RIPE DB REST API resource shapes ("whois-resources").
	https://github.com/RIPE-NCC/whois/wiki/WHOIS-REST-API-WhoisResources

	JSON:
		{"objects": {"object": [{"source": {"id": "RIPE"},
			"attributes": {"attribute": [{"name": "...", "value": "..."}]}}]}}

	XML:
		<whois-resources><objects><object type="person">
			<source id="RIPE"/>
			<attributes><attribute name="..." value="..."/></attributes>
		</object></objects></whois-resources>
*/

// WhoisResources is the top level wire document.
type WhoisResources struct {
	XMLName       xml.Name           `json:"-" xml:"whois-resources"`
	Link          *WireLink          `json:"link,omitempty" xml:"link,omitempty"`
	Objects       *WireObjects       `json:"objects,omitempty" xml:"objects,omitempty"`
	ErrorMessages *WireErrorMessages `json:"errormessages,omitempty" xml:"errormessages,omitempty"`
	Terms         *WireLink          `json:"terms-and-conditions,omitempty" xml:"terms-and-conditions,omitempty"`
}

type WireObjects struct {
	Object []WireObject `json:"object" xml:"object"`
}

type WireObject struct {
	Type       string          `json:"type,omitempty" xml:"type,attr,omitempty"`
	Link       *WireLink       `json:"link,omitempty" xml:"link,omitempty"`
	Source     *WireSource     `json:"source,omitempty" xml:"source,omitempty"`
	PrimaryKey *WireAttributes `json:"primary-key,omitempty" xml:"primary-key,omitempty"`
	Attributes WireAttributes  `json:"attributes" xml:"attributes"`
}

type WireSource struct {
	ID string `json:"id" xml:"id,attr"`
}

type WireAttributes struct {
	Attribute []WireAttribute `json:"attribute" xml:"attribute"`
}

// WireAttribute is one flattened name/value record.
type WireAttribute struct {
	Name           string    `json:"name" xml:"name,attr"`
	Value          string    `json:"value" xml:"value,attr"`
	Comment        string    `json:"comment,omitempty" xml:"comment,attr,omitempty"`
	ReferencedType string    `json:"referenced-type,omitempty" xml:"referenced-type,attr,omitempty"`
	Link           *WireLink `json:"link,omitempty" xml:"link,omitempty"`
}

// IsPlain reports whether the record carries only a bare value.
func (wa WireAttribute) IsPlain() bool {
	return wa.Comment == "" && wa.ReferencedType == "" && wa.Link == nil
}

// WireLink is an xlink reference. The REST API emits it either as an object
// {"type": "locator", "href": "..."} or, in older responses, as a bare href
// string.
type WireLink struct {
	Type string `json:"type" xml:"type,attr"`
	Href string `json:"href" xml:"href,attr"`
}

func (pl *WireLink) UnmarshalJSON(bs []byte) error {

	var szHref string
	if err := json.Unmarshal(bs, &szHref); err == nil {
		*pl = WireLink{Type: "locator", Href: szHref}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(bs, &m); err != nil {
		return fmt.Errorf("link: %w", err)
	}

	pl.Type = m["type"]
	if len(pl.Type) == 0 {
		pl.Type = m["xlink:type"]
	}
	pl.Href = m["href"]
	if len(pl.Href) == 0 {
		pl.Href = m["xlink:href"]
	}
	return nil
}

type WireErrorMessages struct {
	ErrorMessage []WireErrorMessage `json:"errormessage" xml:"errormessage"`
}

type WireErrorMessage struct {
	Severity  string         `json:"severity" xml:"severity,attr"`
	Text      string         `json:"text" xml:"text,attr"`
	Attribute *WireAttribute `json:"attribute,omitempty" xml:"attribute,omitempty"`
	Args      []WireArg      `json:"args,omitempty" xml:"args>arg,omitempty"`
}

// WireArg is a substitution argument of an error message; Value is nil when
// the server omitted it.
type WireArg struct {
	Value *string `json:"value,omitempty" xml:"value,attr,omitempty"`
}

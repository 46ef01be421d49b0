package rpsl

// TemplateAttribute is one attribute descriptor of the metadata/templates
// resource.
type TemplateAttribute struct {
	Name        string   `json:"name"`
	Requirement string   `json:"requirement"`
	Cardinality string   `json:"cardinality"`
	Keys        []string `json:"keys,omitempty"`
}

func (ta TemplateAttribute) IsPrimaryKey() bool {
	for _, k := range ta.Keys {
		if k == "PRIMARY_KEY" {
			return true
		}
	}
	return false
}

func (ta TemplateAttribute) IsRequired() bool  { return ta.Requirement == "MANDATORY" }
func (ta TemplateAttribute) IsGenerated() bool { return ta.Requirement == "GENERATED" }
func (ta TemplateAttribute) IsMultiple() bool  { return ta.Cardinality == "MULTIPLE" }

// Factory builds a dummy object whose attributes are exactly those of the
// descriptor, in descriptor order. The primary key is the first attribute
// flagged PRIMARY_KEY, the type name if there is none.
func Factory(typ string, descriptor []TemplateAttribute) *Object {

	pkName := typ
	for _, ta := range descriptor {
		if ta.IsPrimaryKey() {
			pkName = ta.Name
			break
		}
	}

	o := newBareDummy(typ, pkName)
	for _, ta := range descriptor {
		if ta.IsGenerated() {
			o.SetupGenerated(ta.Name, ta.IsMultiple())
			continue
		}
		o.SetupAttribute(ta.Name, ta.IsRequired(), ta.IsMultiple())
	}
	return o
}

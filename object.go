package confspec

import "strings"

// objectBuilder accumulates a structural spec: a fixed, named, ordered set
// of fields. Fields parse in the order they were declared with Field.
type objectBuilder struct {
	fields []objectField
	errs   []*SpecError
}

type objectField struct {
	name   string
	parser Parser
}

// Object creates a new structural spec builder.
func Object() *objectBuilder {
	return &objectBuilder{}
}

// Field registers a field with its parser. Field names must not contain "."
// (reserved as the hierarchy separator); a violation is a spec-construction
// defect surfaced by Build, not a runtime data error.
func (b *objectBuilder) Field(name string, p Parser) *objectBuilder {
	if strings.Contains(name, ".") {
		b.errs = append(b.errs, &SpecError{Field: name, Reason: "dots are not allowed in field names"})
		return b
	}
	if name == "" {
		b.errs = append(b.errs, &SpecError{Field: name, Reason: "empty field name"})
		return b
	}
	if p == nil {
		b.errs = append(b.errs, &SpecError{Field: name, Reason: "nil parser"})
		return b
	}
	for _, f := range b.fields {
		if f.name == name {
			b.errs = append(b.errs, &SpecError{Field: name, Reason: "duplicate field"})
			return b
		}
	}
	b.fields = append(b.fields, objectField{name: name, parser: p})
	return b
}

// Build validates the builder and returns the structural Parser. The first
// construction defect recorded while declaring fields is returned here,
// before any raw data is examined.
func (b *objectBuilder) Build() (Parser, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)
	return &objectParser{fields: fields}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() Parser {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// objectParser validates and converts a fixed, named set of fields.
type objectParser struct {
	fields []objectField
}

func (p *objectParser) Parse(keyPath string, raw *RawConfig) (any, error) {
	ns := newNamespace()
	for _, f := range p.fields {
		v, err := f.parser.Parse(joinKey(keyPath, f.name), raw)
		if err != nil {
			// The child error already carries its full key path; no
			// sibling fields are attempted afterward.
			return nil, err
		}
		ns.set(f.name, v)
	}
	return ns, nil
}

package ui

import "fmt"

// ItemFactory produces a fresh item for each modal instantiated from a
// schema.
type ItemFactory func() Item

// Field is one named item declaration of a schema.
type Field struct {
	Name string
	New  ItemFactory
}

// Schema is a reusable modal template. Schemas support derivation: a
// child schema inherits its parent's fields and may re-declare a field
// by name, replacing the inherited one in place. The effective field
// list is resolved and validated once, when the schema is defined, so an
// over-wide template is rejected before any modal exists.
type Schema struct {
	name    string
	fields  []Field
	title   string
	handler SubmitHandler
}

type schemaConfig struct {
	parent  *Schema
	decls   []Field
	title   string
	handler SubmitHandler
}

// SchemaOption configures a schema definition.
type SchemaOption func(*schemaConfig)

// WithParent derives the schema from an existing one. The parent's
// fields come first, oldest ancestor first.
func WithParent(parent *Schema) SchemaOption {
	return func(c *schemaConfig) { c.parent = parent }
}

// WithField declares a named item. Re-declaring an inherited name
// overrides it without changing its position.
func WithField(name string, factory ItemFactory) SchemaOption {
	return func(c *schemaConfig) {
		c.decls = append(c.decls, Field{Name: name, New: factory})
	}
}

// WithSchemaTitle sets the default title for modals built from the schema.
func WithSchemaTitle(title string) SchemaOption {
	return func(c *schemaConfig) { c.title = title }
}

// WithSchemaHandler sets the default submit handler for modals built
// from the schema.
func WithSchemaHandler(h SubmitHandler) SchemaOption {
	return func(c *schemaConfig) { c.handler = h }
}

// NewSchema defines a modal template. The ancestry is walked from the
// oldest ancestor toward the new declarations; each field name keeps its
// first position and overrides replace earlier entries. More than
// MaxItems effective fields fails with ErrTooManyFields here, at
// definition time, not when a modal is constructed.
func NewSchema(name string, opts ...SchemaOption) (*Schema, error) {
	cfg := schemaConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		fields   []Field
		position = map[string]int{}
	)
	merge := func(f Field) {
		if at, seen := position[f.Name]; seen {
			fields[at] = f
			return
		}
		position[f.Name] = len(fields)
		fields = append(fields, f)
	}

	if cfg.parent != nil {
		for _, f := range cfg.parent.fields {
			merge(f)
		}
	}
	for _, f := range cfg.decls {
		if f.New == nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrItemRequired)
		}
		merge(f)
	}

	if len(fields) > MaxItems {
		return nil, fmt.Errorf("schema %q has %d fields: %w", name, len(fields), ErrTooManyFields)
	}

	s := &Schema{
		name:    name,
		fields:  fields,
		title:   cfg.title,
		handler: cfg.handler,
	}
	if s.title == "" && cfg.parent != nil {
		s.title = cfg.parent.title
	}
	if s.handler == nil && cfg.parent != nil {
		s.handler = cfg.parent.handler
	}
	return s, nil
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Fields returns the effective field list in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// New instantiates a modal from the schema: one fresh item per field, in
// field order, plus the schema's default title and handler. Options are
// applied after the defaults so an instance can override them.
func (s *Schema) New(opts ...Option) (*Modal, error) {
	items := make([]Item, 0, len(s.fields))
	for _, f := range s.fields {
		item := f.New()
		if item == nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrItemRequired)
		}
		items = append(items, item)
	}

	base := []Option{WithItems(items...)}
	if s.title != "" {
		base = append(base, WithTitle(s.title))
	}
	if s.handler != nil {
		base = append(base, WithHandler(s.handler))
	}
	return New(append(base, opts...)...)
}

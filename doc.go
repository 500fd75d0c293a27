// Package confspec turns a flat, string-keyed configuration source into a
// structured and typed configuration object, validated against a declarative
// spec.
//
// Hierarchy in the raw source is encoded in key text with "." separators
// ("nested.really.deep"). A spec is built from three kinds of parser: Leaf
// wraps a coercer from the coerce package, Object declares a fixed ordered
// set of named fields, and DictOf resolves every subkey discovered under a
// prefix. Parsing is a single synchronous pass that either yields a
// *Namespace mirroring the spec's nesting or fails fast with a *ConfigError
// naming the exact offending key.
//
//	spec := confspec.Object().
//		Field("simple", confspec.Leaf(coerce.Boolean)).
//		Field("nested", confspec.Object().
//			Field("once", confspec.Leaf(coerce.Integer)).
//			MustBuild()).
//		Field("optional", confspec.Leaf(coerce.Optional(coerce.Integer, 9001))).
//		MustBuild()
//
//	cfg, err := confspec.ParseConfig(raw, spec)
//
// Specs are immutable once built and may be reused across parses, including
// concurrently. A spec-construction defect (a dotted field name, a nil
// parser) surfaces as a *SpecError from Build, before any data is read.
package confspec

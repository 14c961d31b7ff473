// Package config parses the jnv configuration document into a fully
// validated, fully defaulted runtime configuration.
//
// A document is a TOML mapping covering timing parameters, styles for
// UI regions and JSON value types, key chord bindings, and a few
// behavioral knobs. Parsing overlays the document onto the built-in
// defaults field by field; any field name the schema does not
// recognize is an error, so configuration typos surface instead of
// being silently ignored. The resulting Config is immutable after
// construction and safe to share across concurrent readers.
package config

// Package record flattens type values into canonical attribute records.
//
// A record is a JSON object with a "kind" tag plus the named attributes
// types.ExportState returns. Nested types (exclusions, union members) are
// nested records. Records are the only form in which types leave the
// process: the result cache stores them and the CLI reads them.
//
// Key design constraints:
//   - No floats anywhere; literal values are strings, int64 or bool.
//   - Canonical JSON follows RFC 8785: UTF-16 key order, NFC strings, no
//     HTML escaping.
//   - Content keys are SHA-256 over canonical JSON with a domain prefix, so
//     equal records always produce equal keys.
package record

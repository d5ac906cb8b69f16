// Package loader builds definition graphs from external representations.
//
// Two formats are supported:
//
//   - Plain text: one definition per line, "term: token token token".
//     Blank lines and lines starting with # are skipped.
//   - YAML (gopkg.in/yaml.v3): a single mapping of term → token sequence:
//
//     money: [business, debt]
//     business: [money, trade]
//
//     Document order is preserved when defining terms, so graphs load
//     reproducibly regardless of Go's map iteration order.
//
// Every term and token is normalized by the graph itself; a term that
// normalizes to the empty string or is defined twice fails the load —
// duplicates are never silently resolved.
//
// Seed-pair lists for batch evaluation load from plain text: one pair per
// line, two whitespace-separated terms.
//
// Fetching and parsing the upstream wiktionary dump is out of scope; this
// package starts from already-extracted definitions.
package loader

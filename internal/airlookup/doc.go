// Package airlookup resolves appellant postcodes to hearing venue names.
//
// The table is keyed by outward postcode district and carries one venue per
// benefit stream (PIP and ESA). A maintained CSV can be supplied through
// configuration; otherwise the embedded snapshot is used. Unknown districts
// resolve to the national fallback venue rather than failing the dispatch.
package airlookup

// Package transform implements the column-level cleaning functions of the
// engine and the dispatcher that maps a (family, type) selector onto them.
//
// # Families
//
// Four transformation families operate on a single column each:
//
//  1. name: text casing for string columns (title, upper, lower, capitalize)
//  2. date: parsing to a canonical datetime and rendering explicit formats
//  3. state: US state name/code standardization via the states registry
//  4. numeric: numeric extraction and presentation formats (money,
//     percentage, phone, id)
//
// Column-name normalization operates on header metadata only and sits
// outside the family catalog.
//
// # Contract
//
// Every transformation is 1:1 per row: row count and row order never
// change. A value that cannot be transformed becomes null and is counted on
// the returned Outcome; state lookups that match no known state leave the
// value unchanged and count it as unmatched instead.
package transform

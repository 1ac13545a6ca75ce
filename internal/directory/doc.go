// Package directory holds the bundled, read-only venue dataset.
//
// A Dataset maps region -> prefix -> short code -> venue name and keeps the
// insertion order of its source, so lookups that scan every prefix return
// matches in the order the dataset lists them. At startup the dataset is
// narrowed to a single region; the resulting Directory is what the resolver
// queries for the rest of the process.
//
// The dataset ships inside the binary as xz-compressed JSON. A file on disk
// (plain or .xz) can replace it, and spreadsheets can be imported into the
// same JSON shape with Import.
package directory

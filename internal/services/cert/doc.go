// Package cert builds the vaccination certificate shown for the patron and
// each guest, and renders it as a PNG.
package cert

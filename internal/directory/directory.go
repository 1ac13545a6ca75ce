package directory

import (
	"fmt"

	"nocheckin/internal/domain"
)

// Dataset is the full multi-region venue dataset.
type Dataset struct {
	regions []domain.Region
	byName  map[domain.Region]*Directory
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{byName: make(map[domain.Region]*Directory)}
}

// Add validates and inserts one venue. Re-adding an existing (region, prefix,
// short code) replaces the name but keeps its original position.
func (ds *Dataset) Add(region, prefix, code, name string) error {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return fmt.Errorf("region %q: %w", region, err)
	}
	p, err := domain.ParsePrefix(prefix)
	if err != nil {
		return fmt.Errorf("region %s prefix %q: %w", r, prefix, err)
	}
	c, err := domain.ParseShortCode(code)
	if err != nil {
		return fmt.Errorf("region %s prefix %s short code %q: %w", r, p, code, err)
	}
	if name == "" {
		return fmt.Errorf("region %s prefix %s short code %s: empty venue name", r, p, c)
	}
	ds.region(r).add(p, c, name)
	return nil
}

// Regions returns the region identifiers in dataset order.
func (ds *Dataset) Regions() []domain.Region {
	return append([]domain.Region(nil), ds.regions...)
}

// Len returns the number of venues across all regions.
func (ds *Dataset) Len() int {
	n := 0
	for _, d := range ds.byName {
		n += d.Len()
	}
	return n
}

// Narrow returns the directory for region. An unknown region yields an empty
// directory and ok=false.
func (ds *Dataset) Narrow(region domain.Region) (dir *Directory, ok bool) {
	d, ok := ds.byName[region]
	if !ok {
		return newDirectory(region), false
	}
	return d, true
}

func (ds *Dataset) region(r domain.Region) *Directory {
	d, ok := ds.byName[r]
	if !ok {
		d = newDirectory(r)
		ds.byName[r] = d
		ds.regions = append(ds.regions, r)
	}
	return d
}

// Directory is one region's venues: prefix -> short code -> name.
type Directory struct {
	region   domain.Region
	prefixes []domain.Prefix
	byPrefix map[domain.Prefix]*prefixVenues
}

type prefixVenues struct {
	codes []domain.ShortCode
	names map[domain.ShortCode]string
}

func newDirectory(region domain.Region) *Directory {
	return &Directory{region: region, byPrefix: make(map[domain.Prefix]*prefixVenues)}
}

func (d *Directory) add(p domain.Prefix, c domain.ShortCode, name string) {
	pv, ok := d.byPrefix[p]
	if !ok {
		pv = &prefixVenues{names: make(map[domain.ShortCode]string)}
		d.byPrefix[p] = pv
		d.prefixes = append(d.prefixes, p)
	}
	if _, exists := pv.names[c]; !exists {
		pv.codes = append(pv.codes, c)
	}
	pv.names[c] = name
}

// Region returns the region this directory was narrowed to.
func (d *Directory) Region() domain.Region { return d.region }

// Len returns the number of venues in the directory.
func (d *Directory) Len() int {
	n := 0
	for _, pv := range d.byPrefix {
		n += len(pv.codes)
	}
	return n
}

// Names returns every venue name in dataset order: prefixes as they appear,
// then short codes within each prefix.
func (d *Directory) Names() []string {
	names := make([]string, 0, d.Len())
	for _, p := range d.prefixes {
		pv := d.byPrefix[p]
		for _, c := range pv.codes {
			names = append(names, pv.names[c])
		}
	}
	return names
}

// LookupByPrefixAndShortCode is the exact two-level lookup used for scanned codes.
func (d *Directory) LookupByPrefixAndShortCode(prefix domain.Prefix, code domain.ShortCode) (string, bool) {
	pv, ok := d.byPrefix[prefix]
	if !ok {
		return "", false
	}
	name, ok := pv.names[code]
	return name, ok
}

// LookupByShortCode collects every venue with the short code across all
// prefixes, in dataset prefix order.
func (d *Directory) LookupByShortCode(code domain.ShortCode) []string {
	var out []string
	for _, p := range d.prefixes {
		if name, ok := d.byPrefix[p].names[code]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Compile-time assertion that Directory implements domain.VenueDirectory.
var _ domain.VenueDirectory = (*Directory)(nil)

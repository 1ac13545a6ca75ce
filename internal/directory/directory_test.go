package directory

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	. "gopkg.in/check.v1"

	"nocheckin/internal/domain"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type DirectorySuite struct {
	ds *Dataset
}

var _ = Suite(&DirectorySuite{})

const sampleDataset = `{
  "qld": {
    "1234567": {"000111": "Example Cafe", "000222": "Venue A"},
    "7654321": {"000222": "Venue B", "000333": "Two\nLines"}
  },
  "act": {
    "1111111": {"000111": "Canberra Thing"}
  }
}`

func (s *DirectorySuite) SetUpTest(c *C) {
	ds, err := LoadDataset(strings.NewReader(sampleDataset))
	c.Assert(err, IsNil)
	s.ds = ds
}

func (s *DirectorySuite) TestRegionsKeepDatasetOrder(c *C) {
	c.Assert(s.ds.Regions(), DeepEquals, []domain.Region{"qld", "act"})
	c.Assert(s.ds.Len(), Equals, 5)
}

func (s *DirectorySuite) TestLookupByPrefixAndShortCode(c *C) {
	dir, ok := s.ds.Narrow("qld")
	c.Assert(ok, Equals, true)
	c.Assert(dir.Region(), Equals, domain.Region("qld"))

	name, ok := dir.LookupByPrefixAndShortCode("1234567", "000111")
	c.Assert(ok, Equals, true)
	c.Assert(name, Equals, "Example Cafe")

	name, ok = dir.LookupByPrefixAndShortCode("7654321", "000333")
	c.Assert(ok, Equals, true)
	c.Assert(name, Equals, "Two\nLines")

	_, ok = dir.LookupByPrefixAndShortCode("1234567", "000333")
	c.Assert(ok, Equals, false)
	_, ok = dir.LookupByPrefixAndShortCode("9999999", "000111")
	c.Assert(ok, Equals, false)
}

func (s *DirectorySuite) TestLookupByShortCodeCardinality(c *C) {
	dir, _ := s.ds.Narrow("qld")
	c.Assert(dir.LookupByShortCode("000222"), DeepEquals, []string{"Venue A", "Venue B"})
	c.Assert(dir.LookupByShortCode("000111"), DeepEquals, []string{"Example Cafe"})
	c.Assert(dir.LookupByShortCode("999999"), HasLen, 0)
}

func (s *DirectorySuite) TestNarrowDropsOtherRegions(c *C) {
	dir, _ := s.ds.Narrow("act")
	c.Assert(dir.LookupByShortCode("000111"), DeepEquals, []string{"Canberra Thing"})
	c.Assert(dir.LookupByShortCode("000222"), HasLen, 0)
	c.Assert(dir.Len(), Equals, 1)
}

func (s *DirectorySuite) TestNarrowUnknownRegionIsEmpty(c *C) {
	dir, ok := s.ds.Narrow("tas")
	c.Assert(ok, Equals, false)
	c.Assert(dir, NotNil)
	c.Assert(dir.Len(), Equals, 0)
	c.Assert(dir.LookupByShortCode("000111"), HasLen, 0)
}

func (s *DirectorySuite) TestLoadRejectsMalformedKeys(c *C) {
	bad := []string{
		`{"QLD": {"1234567": {"000111": "x"}}}`,
		`{"qld": {"123456": {"000111": "x"}}}`,
		`{"qld": {"1234567": {"00011": "x"}}}`,
		`{"qld": {"1234567": {"000111": ""}}}`,
		`{"qld": {"1234567": {"000111": 5}}}`,
		`{"qld": []}`,
		`[]`,
		`{"qld": {}} {}`,
	}
	for _, in := range bad {
		_, err := LoadDataset(strings.NewReader(in))
		c.Check(err, NotNil, Commentf(in))
	}
}

func (s *DirectorySuite) TestLoadDuplicateKeyKeepsFirstPosition(c *C) {
	ds, err := LoadDataset(strings.NewReader(`{"qld": {"1111111": {"000001": "a"}, "2222222": {"000001": "b"}, "1111111": {"000001": "c"}}}`))
	c.Assert(err, IsNil)
	dir, _ := ds.Narrow("qld")
	c.Assert(dir.LookupByShortCode("000001"), DeepEquals, []string{"c", "b"})
}

func (s *DirectorySuite) TestEmbeddedDataset(c *C) {
	ds, err := Embedded()
	c.Assert(err, IsNil)
	c.Assert(ds.Regions(), DeepEquals, []domain.Region{"qld", "act", "nt", "tas"})

	dir, ok := ds.Narrow("qld")
	c.Assert(ok, Equals, true)
	c.Assert(dir.LookupByShortCode("000222"), DeepEquals, []string{
		"South Bank Parklands\nCultural Forecourt",
		"Fortitude Valley Markets",
	})
}

func (s *DirectorySuite) TestWriteAndOpenRoundTrip(c *C) {
	dir := c.MkDir()
	for _, name := range []string{"venues.json", "venues.json.xz"} {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		c.Assert(err, IsNil)
		c.Assert(WriteDataset(f, s.ds, strings.HasSuffix(name, ".xz")), IsNil)
		c.Assert(f.Close(), IsNil)

		got, err := OpenDataset(path)
		c.Assert(err, IsNil)
		c.Assert(got.Regions(), DeepEquals, s.ds.Regions())
		qld, _ := got.Narrow("qld")
		c.Assert(qld.LookupByShortCode("000222"), DeepEquals, []string{"Venue A", "Venue B"})
		name, ok := qld.LookupByPrefixAndShortCode("7654321", "000333")
		c.Assert(ok, Equals, true)
		c.Assert(name, Equals, "Two\nLines")
	}
}

func (s *DirectorySuite) TestImportFromXLSX(c *C) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Short Code", "Prefix", "Region"},
		{"Example Cafe", "000111", "1234567", "QLD"},
		{`Two\nLines`, "222", "0012345", "qld"},
		{"", "", "", ""},
		{"Salamanca Market", "630001", "5400001", "tas"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		c.Assert(err, IsNil)
		r := row
		c.Assert(f.SetSheetRow(sheet, cell, &r), IsNil)
	}
	buf, err := f.WriteToBuffer()
	c.Assert(err, IsNil)

	got, err := ReadSpreadsheet(bytes.NewReader(buf.Bytes()), "venues.xlsx")
	c.Assert(err, IsNil)
	ds, err := Import(got)
	c.Assert(err, IsNil)
	c.Assert(ds.Regions(), DeepEquals, []domain.Region{"qld", "tas"})

	qld, _ := ds.Narrow("qld")
	name, ok := qld.LookupByPrefixAndShortCode("0012345", "000222")
	c.Assert(ok, Equals, true)
	c.Assert(name, Equals, "Two\nLines")
}

func (s *DirectorySuite) TestImportMissingColumn(c *C) {
	_, err := Import([][]string{{"region", "prefix", "name"}})
	c.Assert(err, ErrorMatches, "missing column: short_code")
}

func (s *DirectorySuite) TestImportReportsRowNumber(c *C) {
	_, err := Import([][]string{
		{"region", "prefix", "short_code", "name"},
		{"qld", "1234567", "000111", "ok"},
		{"qld", "1234567", "abc", "bad"},
	})
	c.Assert(err, ErrorMatches, "row 3: .*short code.*")
}

package directory

import (
	. "gopkg.in/check.v1"
)

func (s *DirectorySuite) terms(c *C, overrides ...string) []string {
	dir, ok := s.ds.Narrow("qld")
	c.Assert(ok, Equals, true)
	var terms []string
	for _, name := range dir.Names() {
		terms = append(terms, SearchTerm(name))
	}
	return append(terms, overrides...)
}

func (s *DirectorySuite) TestNamesKeepDatasetOrder(c *C) {
	dir, _ := s.ds.Narrow("qld")
	c.Assert(dir.Names(), DeepEquals, []string{"Example Cafe", "Venue A", "Venue B", "Two\nLines"})
}

func (s *DirectorySuite) TestCompleteFirstMatchWins(c *C) {
	terms := s.terms(c, "Venue Alpha", "Venue Zed")

	got, ok := Complete("Venue", terms)
	c.Assert(ok, Equals, true)
	c.Assert(got, Equals, "Venue A")

	got, ok = Complete("Venue A", terms)
	c.Check(ok, Equals, true)
	c.Check(got, Equals, "Venue A")

	got, ok = Complete("Venue Z", terms)
	c.Check(ok, Equals, true)
	c.Check(got, Equals, "Venue Zed")

	got, ok = Complete("Two L", terms)
	c.Check(ok, Equals, true)
	c.Check(got, Equals, "Two Lines")
}

func (s *DirectorySuite) TestCompleteIsCaseSensitive(c *C) {
	_, ok := Complete("venue", s.terms(c))
	c.Check(ok, Equals, false)
}

func (s *DirectorySuite) TestCompleteEmptyNeverMatches(c *C) {
	_, ok := Complete("", s.terms(c))
	c.Check(ok, Equals, false)
	c.Check(Suggest("", s.terms(c), 0), IsNil)
}

func (s *DirectorySuite) TestSuggestKeepsOrderAndDropsDuplicates(c *C) {
	terms := s.terms(c, "Venue A", "Venue Zed")
	c.Check(Suggest("Venue", terms, 0), DeepEquals, []string{"Venue A", "Venue B", "Venue Zed"})
	c.Check(Suggest("Venue", terms, 2), DeepEquals, []string{"Venue A", "Venue B"})
	c.Check(Suggest("Nowhere", terms, 0), IsNil)
}

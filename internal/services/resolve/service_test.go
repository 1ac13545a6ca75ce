package resolve_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocheckin/internal/directory"
	"nocheckin/internal/domain"
	"nocheckin/internal/metrics"
	"nocheckin/internal/overrides"
	"nocheckin/internal/services/resolve"
)

const dataset = `{
  "qld": {
    "1234567": {"000111": "Example Cafe", "000222": "Venue A"},
    "7654321": {"000222": "Venue B", "000333": "Harbour Bar\nUpstairs"}
  }
}`

type recordingPersister struct {
	saved map[domain.ShortCode]string
	err   error
}

func (p *recordingPersister) SaveOverrides(_ context.Context, m map[domain.ShortCode]string) error {
	if p.err != nil {
		return p.err
	}
	p.saved = m
	return nil
}

func (p *recordingPersister) LoadOverrides(context.Context) (map[domain.ShortCode]string, error) {
	return p.saved, nil
}

func newResolver(t *testing.T, entries map[domain.ShortCode]string) (*resolve.Service, *overrides.Store, *recordingPersister) {
	t.Helper()
	ds, err := directory.LoadDataset(strings.NewReader(dataset))
	require.NoError(t, err)
	dir, ok := ds.Narrow("qld")
	require.True(t, ok)

	p := &recordingPersister{}
	ov := overrides.New(entries, p, nil)
	return resolve.New(dir, ov, metrics.New(), nil), ov, p
}

func TestScan_ResolvesFromDirectory(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	out := r.ResolveScan(context.Background(), "1234567000111")
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Example Cafe", out.Name)
	assert.False(t, out.Overridden)
}

func TestScan_UsesFinalPathSegment(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	out := r.ResolveScan(context.Background(), "https://example.invalid/checkin/v1/7654321000333")
	require.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Harbour Bar\nUpstairs", out.Name)
}

func TestScan_OverrideWins(t *testing.T) {
	r, _, _ := newResolver(t, map[domain.ShortCode]string{"000111": "Renamed Cafe"})

	out := r.ResolveScan(context.Background(), "1234567000111")
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Renamed Cafe", out.Name)
	assert.True(t, out.Overridden)
}

func TestScan_OverrideShadowsEveryPrefix(t *testing.T) {
	r, _, _ := newResolver(t, map[domain.ShortCode]string{"000222": "Mine"})

	for _, payload := range []string{"1234567000222", "7654321000222", "0000000000222"} {
		out := r.ResolveScan(context.Background(), payload)
		assert.Equal(t, domain.Resolved, out.Kind, payload)
		assert.Equal(t, "Mine", out.Name, payload)
	}
}

func TestScan_EmptyOverrideFallsThroughToDirectory(t *testing.T) {
	r, _, _ := newResolver(t, map[domain.ShortCode]string{"000111": "", "000222": ""})

	out := r.ResolveScan(context.Background(), "1234567000111")
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Example Cafe", out.Name)
	assert.False(t, out.Overridden)

	manual := r.ResolveManual(context.Background(), "000222")
	assert.Equal(t, domain.Ambiguous, manual.Kind)
	assert.Equal(t, []string{"Venue A", "Venue B"}, manual.Candidates)
}

func TestScan_NotFoundCarriesShortCode(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	out := r.ResolveScan(context.Background(), "7654321000111")
	assert.Equal(t, domain.NotFound, out.Kind)
	assert.Equal(t, domain.ShortCode("000111"), out.ShortCode)
}

func TestScan_MalformedIsIgnored(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	for _, payload := range []string{"", "hello", "123456700011", "1234567000111/", "https://x/12345670001112", "1234567000a11"} {
		out := r.ResolveScan(context.Background(), payload)
		assert.Equal(t, domain.NoLookup, out.Kind, payload)
	}
}

func TestManual_SingleMatchResolves(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	out := r.ResolveManual(context.Background(), "0", "0", "0", "1", "1", "1")
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Example Cafe", out.Name)
}

func TestManual_AmbiguousInDirectoryOrder(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	out := r.ResolveManual(context.Background(), "000222")
	require.Equal(t, domain.Ambiguous, out.Kind)
	assert.Equal(t, []string{"Venue A", "Venue B"}, out.Candidates)

	picked, err := r.Choose(out, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Resolved, picked.Kind)
	assert.Equal(t, "Venue B", picked.Name)
	assert.Equal(t, domain.ShortCode("000222"), picked.ShortCode)
}

func TestManual_OverrideGivesSingleResult(t *testing.T) {
	r, _, _ := newResolver(t, map[domain.ShortCode]string{"000222": "Mine"})

	out := r.ResolveManual(context.Background(), "000222")
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Mine", out.Name)
	assert.Empty(t, out.Candidates)
}

func TestManual_MalformedIsNoLookup(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	assert.Equal(t, domain.NoLookup, r.ResolveManual(context.Background(), "12AB").Kind)
	assert.Equal(t, domain.NoLookup, r.ResolveManual(context.Background(), "12345").Kind)
	assert.Equal(t, domain.NoLookup, r.ResolveManual(context.Background(), "0", "0", "0", "", "1", "1").Kind)
	assert.Equal(t, domain.NoLookup, r.ResolveManual(context.Background()).Kind)
}

func TestCreateVenue_NotFoundThenAdd(t *testing.T) {
	r, ov, p := newResolver(t, nil)
	ctx := context.Background()

	out := r.ResolveManual(ctx, "999999")
	require.Equal(t, domain.NotFound, out.Kind)
	require.Equal(t, domain.ShortCode("999999"), out.ShortCode)

	created, err := r.CreateVenue(ctx, string(out.ShortCode), "New Venue")
	require.NoError(t, err)
	assert.Equal(t, domain.Resolved, created.Kind)
	assert.Equal(t, "New Venue", created.Name)
	assert.Equal(t, map[domain.ShortCode]string{"999999": "New Venue"}, p.saved)

	name, ok := ov.Lookup("999999")
	require.True(t, ok)
	assert.Equal(t, "New Venue", name)

	assert.Equal(t, "New Venue", r.ResolveManual(ctx, "999999").Name)
	assert.Equal(t, "New Venue", r.ResolveScan(ctx, "1234567999999").Name)
	assert.Equal(t, "New Venue", r.ResolveScan(ctx, "5555555999999").Name)
}

func TestCreateVenue_OverridesDirectoryName(t *testing.T) {
	r, _, _ := newResolver(t, nil)
	ctx := context.Background()

	_, err := r.CreateVenue(ctx, "000111", "Renamed Cafe")
	require.NoError(t, err)
	assert.Equal(t, "Renamed Cafe", r.ResolveScan(ctx, "1234567000111").Name)
}

func TestCreateVenue_WithoutCodeIsNotPersisted(t *testing.T) {
	r, ov, p := newResolver(t, nil)

	out, err := r.CreateVenue(context.Background(), "", "Somewhere")
	require.NoError(t, err)
	assert.Equal(t, domain.Resolved, out.Kind)
	assert.Equal(t, "Somewhere", out.Name)
	assert.Nil(t, p.saved)
	assert.Zero(t, ov.Len())
}

func TestCreateVenue_Errors(t *testing.T) {
	r, _, _ := newResolver(t, nil)
	ctx := context.Background()

	_, err := r.CreateVenue(ctx, "000111", "")
	assert.ErrorIs(t, err, resolve.ErrEmptyVenueName)

	_, err = r.CreateVenue(ctx, "12AB", "Name")
	assert.ErrorIs(t, err, domain.ErrInvalidShortCode)
}

func TestCreateVenue_FlushFailure(t *testing.T) {
	r, _, p := newResolver(t, nil)
	boom := errors.New("read-only filesystem")
	p.err = boom

	_, err := r.CreateVenue(context.Background(), "999999", "New Venue")
	assert.ErrorIs(t, err, boom)
}

func TestChoose_Errors(t *testing.T) {
	r, _, _ := newResolver(t, nil)

	_, err := r.Choose(domain.Outcome{Kind: domain.Resolved, Name: "x"}, 0)
	assert.ErrorIs(t, err, resolve.ErrNoCandidate)

	amb := domain.Outcome{Kind: domain.Ambiguous, Candidates: []string{"a", "b"}}
	_, err = r.Choose(amb, 2)
	assert.ErrorIs(t, err, resolve.ErrNoCandidate)
	_, err = r.Choose(amb, -1)
	assert.ErrorIs(t, err, resolve.ErrNoCandidate)
}

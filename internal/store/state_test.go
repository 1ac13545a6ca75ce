package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocheckin/internal/domain"
	"nocheckin/internal/store"
)

func backends(t *testing.T) map[string]store.Backend {
	t.Helper()
	ctx := context.Background()

	sqlite, err := store.NewSQLiteBackend(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]store.Backend{
		store.KindFile:   store.NewFileBackend(t.TempDir()),
		store.KindSQLite: sqlite,
	}
}

func TestBackend_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	for kind, b := range backends(t) {
		t.Run(kind, func(t *testing.T) {
			_, ok, err := b.Get(ctx, domain.BucketSettings)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Put(ctx, domain.BucketSettings, []byte(`{"a":1}`)))
			require.NoError(t, b.Put(ctx, domain.BucketSettings, []byte(`{"a":2}`)))
			got, ok, err := b.Get(ctx, domain.BucketSettings)
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `{"a":2}`, string(got))

			require.NoError(t, b.Delete(ctx, domain.BucketSettings, domain.BucketHistory))
			_, ok, err = b.Get(ctx, domain.BucketSettings)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestState_OverridesRoundTrip(t *testing.T) {
	ctx := context.Background()
	for kind, b := range backends(t) {
		t.Run(kind, func(t *testing.T) {
			st := store.NewState(b)

			empty, err := st.LoadOverrides(ctx)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			want := map[domain.ShortCode]string{"000111": "Renamed Cafe", "999999": "New\nVenue"}
			require.NoError(t, st.SaveOverrides(ctx, want))

			got, err := st.LoadOverrides(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestState_OverridesFlatFormat(t *testing.T) {
	dir := t.TempDir()
	st := store.NewState(store.NewFileBackend(dir))
	require.NoError(t, st.SaveOverrides(context.Background(), map[domain.ShortCode]string{"000111": "Cafe"}))

	raw, err := os.ReadFile(filepath.Join(dir, "local_locations.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"000111":"Cafe"}`, string(raw))
}

func TestState_NullOverridesLoadEmpty(t *testing.T) {
	ctx := context.Background()
	b := store.NewFileBackend(t.TempDir())
	require.NoError(t, b.Put(ctx, domain.BucketLocalLocations, []byte("null")))

	got, err := store.NewState(b).LoadOverrides(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestState_SettingsAndGuests(t *testing.T) {
	ctx := context.Background()
	st := store.NewState(store.NewFileBackend(t.TempDir()))

	_, ok, err := st.LoadSettings(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	settings := domain.Settings{
		Patron:     domain.Patron{FirstName: "Ada", LastName: "Lovelace", DOB: "1990-12-10"},
		Region:     "tas",
		UseScanner: false,
		Email:      "ada@example.com",
	}
	require.NoError(t, st.SaveSettings(ctx, settings))
	got, ok, err := st.LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, settings, got)

	guests := []domain.Guest{{FirstName: "Bob", LastName: "Smith"}}
	require.NoError(t, st.SaveGuests(ctx, guests))
	gotGuests, err := st.LoadGuests(ctx)
	require.NoError(t, err)
	assert.Equal(t, guests, gotGuests)
}

func TestState_SettingsKeepLegacyKeys(t *testing.T) {
	ctx := context.Background()
	b := store.NewFileBackend(t.TempDir())
	require.NoError(t, b.Put(ctx, domain.BucketSettings, []byte(
		`{"state":"nt","use_scanner":true,"first_name":"Jo","last_name":"Bloggs","dob":"1980-01-02","vaxxed_date":"2021-09-01"}`)))

	got, ok, err := store.NewState(b).LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Region("nt"), got.Region)
	assert.True(t, got.UseScanner)
	assert.Equal(t, "Jo", got.FirstName)
	assert.Equal(t, "2021-09-01", got.VaxxedDate)
}

func TestState_SettingsMissingScannerKeyReadsTrue(t *testing.T) {
	ctx := context.Background()
	b := store.NewFileBackend(t.TempDir())
	require.NoError(t, b.Put(ctx, domain.BucketSettings, []byte(`{"state":"tas"}`)))

	got, ok, err := store.NewState(b).LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.UseScanner)

	require.NoError(t, b.Put(ctx, domain.BucketSettings, []byte(`{"state":"tas","use_scanner":false}`)))
	got, _, err = store.NewState(b).LoadSettings(ctx)
	require.NoError(t, err)
	assert.False(t, got.UseScanner)
}

func TestState_HistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	st := store.NewState(store.NewFileBackend(t.TempDir()))
	base := time.Date(2021, 9, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, st.AppendCheckIn(ctx, domain.CheckIn{ID: name, VenueName: name, At: base.Add(time.Duration(i) * time.Hour)}))
	}

	all, err := st.ListCheckIns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	two, err := st.ListCheckIns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "c", two[0].ID)
	assert.True(t, two[1].At.Equal(base.Add(time.Hour)))
}

func TestState_LastCheckIn(t *testing.T) {
	ctx := context.Background()
	st := store.NewState(store.NewFileBackend(t.TempDir()))

	_, ok, err := st.LoadLastCheckIn(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.SaveLastCheckIn(ctx, domain.LastCheckIn{Name: "Cafe", Time: 1630000000}))
	last, ok, err := st.LoadLastCheckIn(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cafe", last.Name)
	assert.Equal(t, int64(1630000000), last.Time)
}

func TestState_ResetClearsEveryBucket(t *testing.T) {
	ctx := context.Background()
	for kind, b := range backends(t) {
		t.Run(kind, func(t *testing.T) {
			st := store.NewState(b)
			require.NoError(t, st.SaveSettings(ctx, domain.Settings{Region: "qld"}))
			require.NoError(t, st.SaveOverrides(ctx, map[domain.ShortCode]string{"000111": "x"}))
			require.NoError(t, st.SaveGuests(ctx, []domain.Guest{{FirstName: "g"}}))
			require.NoError(t, st.SaveLastCheckIn(ctx, domain.LastCheckIn{Name: "x", Time: 1}))
			require.NoError(t, st.AppendCheckIn(ctx, domain.CheckIn{ID: "1"}))

			require.NoError(t, st.Reset(ctx))

			for _, bucket := range domain.AllBuckets() {
				_, ok, err := b.Get(ctx, bucket)
				require.NoError(t, err)
				assert.False(t, ok, "bucket %s survived reset", bucket)
			}
		})
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	_, err := store.Open(context.Background(), store.Options{Kind: "redis", Dir: t.TempDir()})
	assert.Error(t, err)
}

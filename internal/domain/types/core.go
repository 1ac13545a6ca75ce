package types

// Region identifies the jurisdiction the kiosk is skinned for and the slice of the
// venue dataset it resolves against.
type Region string

// String returns the string form of the region.
func (r Region) String() string { return string(r) }

// Prefix is the leading 7-digit region/batch part of a scanned venue code.
type Prefix string

// String returns the string form of the prefix.
func (p Prefix) String() string { return string(p) }

// ShortCode is the 6-digit venue identifier: the tail of a scanned code, or the
// whole of a manually entered one.
type ShortCode string

// String returns the string form of the short code.
func (c ShortCode) String() string { return string(c) }

// Bucket names a persisted state category.
type Bucket string

// String returns the string form of the bucket.
func (b Bucket) String() string { return string(b) }

// Persisted state categories. Reset removes all of them together.
const (
	BucketSettings       Bucket = "settings"
	BucketLocalLocations Bucket = "local_locations"
	BucketFrequentGuests Bucket = "frequent_guests"
	BucketLastCheckIn    Bucket = "last_checkin"
	BucketHistory        Bucket = "checkin_history"
)

// AllBuckets lists every persisted state category.
func AllBuckets() []Bucket {
	return []Bucket{
		BucketSettings,
		BucketLocalLocations,
		BucketFrequentGuests,
		BucketLastCheckIn,
		BucketHistory,
	}
}

package directory

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

//go:embed data/venues.json.xz
var embeddedDataset []byte

const xzExt = ".xz"

// Embedded decodes the dataset compiled into the binary.
func Embedded() (*Dataset, error) {
	r, err := xz.NewReader(bytes.NewReader(embeddedDataset))
	if err != nil {
		return nil, fmt.Errorf("open embedded dataset: %w", err)
	}
	ds, err := LoadDataset(r)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return ds, nil
}

// OpenDataset loads the dataset at path. Paths ending in .xz are decompressed.
func OpenDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), xzExt) {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", path, err)
		}
		r = xr
	}
	ds, err := LoadDataset(r)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// LoadDataset decodes {region: {prefix: {short_code: name}}}, validating every
// key and keeping the order in which keys appear.
func LoadDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	ds := NewDataset()
	err := decodeObject(dec, func(region string) error {
		return decodeObject(dec, func(prefix string) error {
			return decodeObject(dec, func(code string) error {
				var name string
				if err := dec.Decode(&name); err != nil {
					return fmt.Errorf("region %s prefix %s short code %s: %w", region, prefix, code, err)
				}
				return ds.Add(region, prefix, code, name)
			})
		})
	})
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after dataset object")
	}
	return ds, nil
}

// decodeObject walks one JSON object, calling each with every key. each must
// consume the key's value from dec.
func decodeObject(dec *json.Decoder, each func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := each(key); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// WriteDataset encodes ds as indented JSON in dataset order, optionally
// xz-compressed.
func WriteDataset(w io.Writer, ds *Dataset, compress bool) error {
	if !compress {
		return encodeDataset(w, ds)
	}
	xw, err := xz.NewWriter(w)
	if err != nil {
		return err
	}
	if err := encodeDataset(xw, ds); err != nil {
		_ = xw.Close()
		return err
	}
	return xw.Close()
}

func encodeDataset(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for i, r := range ds.regions {
		d := ds.byName[r]
		writeKey(bw, 1, i, string(r))
		bw.WriteByte('{')
		for j, p := range d.prefixes {
			pv := d.byPrefix[p]
			writeKey(bw, 2, j, string(p))
			bw.WriteByte('{')
			for k, c := range pv.codes {
				writeKey(bw, 3, k, string(c))
				bw.Write(quote(pv.names[c]))
			}
			closeObject(bw, 2, len(pv.codes))
		}
		closeObject(bw, 1, len(d.prefixes))
	}
	closeObject(bw, 0, len(ds.regions))
	bw.WriteByte('\n')
	return bw.Flush()
}

func writeKey(bw *bufio.Writer, depth, index int, key string) {
	if index > 0 {
		bw.WriteByte(',')
	}
	bw.WriteByte('\n')
	bw.WriteString(strings.Repeat("  ", depth))
	bw.Write(quote(key))
	bw.WriteString(": ")
}

func closeObject(bw *bufio.Writer, depth, n int) {
	if n > 0 {
		bw.WriteByte('\n')
		bw.WriteString(strings.Repeat("  ", depth))
	}
	bw.WriteByte('}')
}

func quote(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}

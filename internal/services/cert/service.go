package cert

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"nocheckin/internal/domain"
)

// Display layouts.
const (
	DisplayDate  = "2 Jan 2006"
	DisplayClock = "2 Jan 2006 3:04:05 pm"
)

// ErrNoCertificate is returned when rendering for a person without a
// vaccination date.
var ErrNoCertificate = errors.New("no certificate without a vaccination date")

// Certificate is what the certificate screen shows for one person.
type Certificate struct {
	Name      string
	Initials  string
	DOB       string
	ValidFrom string
	// HasCert is false for people without a vaccination date; only their
	// initials and name are shown.
	HasCert bool
}

// For builds the certificate for patron.
func For(patron domain.Patron) Certificate {
	c := Certificate{
		Name:     strings.TrimSpace(patron.FirstName + " " + patron.LastName),
		Initials: initial(patron.FirstName) + initial(patron.LastName),
		DOB:      displayDate(patron.DOB),
	}
	if patron.VaxxedDate != "" {
		c.HasCert = true
		c.ValidFrom = displayDate(patron.VaxxedDate)
	}
	return c
}

// Clock formats the live clock shown under the certificate.
func Clock(now time.Time) string { return now.Format(DisplayClock) }

func initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// displayDate reformats a stored date; unparsable values pass through.
func displayDate(v string) string {
	t, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		return v
	}
	return t.Format(DisplayDate)
}

const (
	width      = 360
	height     = 180
	bandHeight = 36
	margin     = 14
	lineHeight = 22
)

// RenderPNG draws c with the skin's title and accent and writes it to w.
func RenderPNG(w io.Writer, c Certificate, skin domain.Skin, now time.Time) error {
	if !c.HasCert {
		return ErrNoCertificate
	}
	accent, err := parseHex(skin.Accent)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, width, bandHeight), image.NewUniform(accent), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, height-4, width, height), image.NewUniform(accent), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.White, Face: basicfont.Face7x13}
	text(d, margin, 23, skin.Title+" - COVID-19 digital certificate")

	d.Src = image.Black
	y := bandHeight + lineHeight
	for _, line := range []string{
		"Name:          " + c.Name,
		"Date of birth: " + c.DOB,
		"Valid from:    " + c.ValidFrom,
	} {
		text(d, margin, y, line)
		y += lineHeight
	}
	d.Src = image.NewUniform(accent)
	text(d, margin, y+6, Clock(now))

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode certificate: %w", err)
	}
	return nil
}

func text(d *font.Drawer, x, y int, s string) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// parseHex parses a #rrggbb colour.
func parseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid accent colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid accent colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

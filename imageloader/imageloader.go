// Package imageloader decodes the pixels of image assets.
//
// Animations reference images either by file path or as embedded base64
// data URIs. A Loader turns either into an *image.RGBA. The package ships a
// Decoder covering PNG, JPEG, GIF, WebP, BMP and TIFF; applications with
// other needs install their own Loader with SetDefault.
package imageloader

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/phanxgames/lottie"
)

// ErrNotDataURI is returned by LoadDataURI for input without a base64
// data: prefix.
var ErrNotDataURI = errors.New("imageloader: not a base64 data URI")

// Loader decodes image assets.
type Loader interface {
	// Load reads and decodes the file at path.
	Load(path string) (*image.RGBA, error)
	// LoadData decodes an in-memory encoded image.
	LoadData(data []byte) (*image.RGBA, error)
}

// Decoder is the default Loader. It uses the formats registered with the
// image package.
type Decoder struct{}

// Load reads and decodes the file at path.
func (Decoder) Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path) //nolint:gosec // asset paths come from the animation
	if err != nil {
		return nil, fmt.Errorf("imageloader: %w", err)
	}
	img, err := Decoder{}.LoadData(data)
	if err != nil {
		return nil, fmt.Errorf("imageloader: %s: %w", path, err)
	}
	return img, nil
}

// LoadData decodes an in-memory encoded image.
func (Decoder) LoadData(data []byte) (*image.RGBA, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	dst := toRGBA(src)
	lottie.Logger().Debug("imageloader: decoded image",
		slog.String("format", format),
		slog.Int("width", dst.Bounds().Dx()),
		slog.Int("height", dst.Bounds().Dy()))
	return dst, nil
}

// toRGBA returns img as an *image.RGBA anchored at the origin, converting
// when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// LoadDataURI decodes an embedded asset of the form
// "data:image/<fmt>;base64,<payload>" with l.
func LoadDataURI(l Loader, uri string) (*image.RGBA, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrNotDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("imageloader: data URI: %w", err)
	}
	return l.LoadData(data)
}

// Load decodes an asset reference with l. Data URIs are decoded inline;
// anything else is treated as a file path joined to dir.
func Load(l Loader, dir, ref string) (*image.RGBA, error) {
	if strings.HasPrefix(ref, "data:") {
		return LoadDataURI(l, ref)
	}
	return l.Load(dir + ref)
}

var defaultLoader atomic.Pointer[Loader]

func init() {
	var l Loader = Decoder{}
	defaultLoader.Store(&l)
}

// SetDefault replaces the process-wide loader. Passing nil restores the
// built-in Decoder. SetDefault is safe for concurrent use.
func SetDefault(l Loader) {
	if l == nil {
		l = Decoder{}
	}
	defaultLoader.Store(&l)
}

// Default returns the process-wide loader.
func Default() Loader {
	return *defaultLoader.Load()
}

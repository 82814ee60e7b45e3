// Package photocd decodes Kodak Photo CD (PCD) image packs.
//
// A Photo CD image is stored hierarchically: a small uncompressed base
// image plus Huffman-coded residual layers that successively double the
// resolution, up to the optional 64Base layer held in a sidecar (IPE)
// file with its extension files. The decoder reconstructs the scene at
// a chosen resolution, interpolates the subsampled chroma up to luma
// resolution, and converts the Kodak PhotoYCC data to RGB in a choice
// of colour spaces.
//
// Basic usage:
//
//	dec := photocd.NewDecoder()
//	if err := dec.ParseFile("img0001.pcd", "", photocd.Scene16Base); err != nil {
//	    log.Fatal(err)
//	}
//	dec.SetColorSpace(photocd.ColorSpaceSRGB)
//	dec.PostParse()
//	w, h := dec.Width(), dec.Height()
//	r := make([]uint8, w*h)
//	g := make([]uint8, w*h)
//	b := make([]uint8, w*h)
//	dec.PopulateUint8Buffers(r, g, b, nil, 1)
//
// Or, for an image.Image in one call:
//
//	img, err := photocd.DecodeFile("img0001.pcd", nil)
package photocd

import (
	"fmt"
	"image"

	"github.com/mrjoshuak/go-photocd/internal/imagepack"
	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// Scene identifies one of the six fixed Photo CD resolution levels.
type Scene int

const (
	// SceneBase16 is the 192x128 thumbnail.
	SceneBase16 Scene = iota
	// SceneBase4 is 384x256.
	SceneBase4
	// SceneBase is 768x512, the reference resolution.
	SceneBase
	// Scene4Base is 1536x1024, the first Huffman-coded layer.
	Scene4Base
	// Scene16Base is 3072x2048.
	Scene16Base
	// Scene64Base is 6144x4096, stored in the IPE sidecar.
	Scene64Base
)

// String returns the conventional name of the scene.
func (s Scene) String() string {
	switch s {
	case SceneBase16:
		return "Base/16"
	case SceneBase4:
		return "Base/4"
	case SceneBase:
		return "Base"
	case Scene4Base:
		return "4Base"
	case Scene16Base:
		return "16Base"
	case Scene64Base:
		return "64Base"
	default:
		return "Unknown"
	}
}

// Dimensions returns the unrotated luma dimensions of the scene.
func (s Scene) Dimensions() (width, height int) {
	if s < SceneBase16 || s > Scene64Base {
		return 0, 0
	}
	return scene.LumaWidth(int(s)), scene.LumaHeight(int(s))
}

// ColorSpace selects the colour space of the RGB data returned by the
// populate calls.
type ColorSpace int

const (
	// ColorSpaceRawPCD returns RGB converted from PhotoYCC but still
	// carrying the PCD transfer curve and primaries.
	ColorSpaceRawPCD ColorSpace = iota
	// ColorSpaceLinearCCIR709 is a CCIR 709 linear light space.
	ColorSpaceLinearCCIR709
	// ColorSpaceSRGB is sRGB primaries with the sRGB tone curve.
	ColorSpaceSRGB
	// ColorSpaceYCC returns the PhotoYCC components themselves in the
	// R, G and B channels.
	ColorSpaceYCC
)

// WhiteBalance selects the white point for the CCIR 709 and sRGB
// colour spaces. Photo CD images are scanned for D65.
type WhiteBalance int

const (
	// WhiteD65 is the 6500K default.
	WhiteD65 WhiteBalance = iota
	// WhiteD50 adapts the output to a 5000K white point.
	WhiteD50
)

// Interpolation selects the chroma up-resolution method.
type Interpolation int

const (
	// InterpNearest is pixel doubling; for comparison only.
	InterpNearest Interpolation = iota
	// InterpBilinear is the Kodak standard bilinear interpolation.
	InterpBilinear
	// InterpLumaAdaptive is an extension point for luma-guided
	// chroma interpolation; the core decoder treats it as bilinear.
	InterpLumaAdaptive
)

// Failure kinds reported by ParseFile. Layer-level failures inside an
// otherwise decodable file are not errors; they demote the result and
// leave a warning on ErrorString.
var (
	ErrNotPCD           = imagepack.ErrNotPCD
	ErrOverviewFile     = imagepack.ErrOverviewFile
	ErrFileTooSmall     = imagepack.ErrFileTooSmall
	ErrInterleavedAudio = imagepack.ErrInterleavedAudio
	ErrNoBaseImage      = imagepack.ErrNoBaseImage
)

// Options configures the one-shot DecodeFile path.
type Options struct {
	// MaxScene is the largest resolution to decode; the decoded
	// scene may be lower if the file does not carry the requested
	// layer.
	MaxScene Scene

	// IPEPath locates the 64Base sidecar file. Only consulted when
	// MaxScene is Scene64Base.
	IPEPath string

	// ColorSpace for the output.
	ColorSpace ColorSpace

	// WhiteBalance for the CCIR 709 and sRGB spaces.
	WhiteBalance WhiteBalance

	// Monochrome discards the chroma planes.
	Monochrome bool

	// Sixteen selects 16-bit output samples.
	Sixteen bool

	// Workers sets the band worker count; 0 selects the default.
	Workers int
}

// DefaultOptions returns the default decoding options: 16Base in sRGB,
// the usual choice for display.
func DefaultOptions() *Options {
	return &Options{
		MaxScene:   Scene16Base,
		ColorSpace: ColorSpaceSRGB,
	}
}

// DecodeFile decodes the image pack at path and returns the
// reconstructed image, rotated to the upright orientation. A nil o
// selects DefaultOptions; every field of a caller-supplied Options is
// honoured as given, including Base/16 and raw PCD.
func DecodeFile(path string, o *Options) (image.Image, error) {
	if o == nil {
		o = DefaultOptions()
	}
	opts := *o

	d := NewDecoder()
	d.SetColorSpace(opts.ColorSpace)
	d.SetWhiteBalance(opts.WhiteBalance)
	d.SetMonochrome(opts.Monochrome)
	if opts.Workers > 0 {
		d.SetWorkers(opts.Workers)
	}
	if err := d.ParseFile(path, opts.IPEPath, opts.MaxScene); err != nil {
		return nil, fmt.Errorf("photocd: %w", err)
	}
	d.PostParse()

	w, h := d.Width(), d.Height()
	if opts.Sixteen {
		img := image.NewRGBA64(image.Rect(0, 0, w, h))
		pix := make([]uint16, 4*w*h)
		d.PopulateUint16Buffers(pix[0:], pix[1:], pix[2:], pix[3:], 4)
		for i, v := range pix {
			img.Pix[2*i] = uint8(v >> 8)
			img.Pix[2*i+1] = uint8(v)
		}
		return img, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.PopulateUint8Buffers(img.Pix[0:], img.Pix[1:], img.Pix[2:], img.Pix[3:], 4)
	return img, nil
}

package photocd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrjoshuak/go-photocd/internal/bio"
	"github.com/mrjoshuak/go-photocd/internal/delta"
	"github.com/mrjoshuak/go-photocd/internal/huffman"
	"github.com/mrjoshuak/go-photocd/internal/imagepack"
	"github.com/mrjoshuak/go-photocd/internal/scene"
	"github.com/mrjoshuak/go-photocd/internal/upres"
)

// defaultWorkers is the band worker count used for interpolation and
// colour conversion unless SetWorkers overrides it.
const defaultWorkers = 8

// Decoder decodes one Photo CD image pack. The zero value is not
// usable; call NewDecoder.
//
// The expected call order is ParseFile, then PostParse, then one of the
// populate calls. ParseFile reads the header, the base image and the
// residual layers; PostParse assembles the residuals into the final
// YCC planes; the populate calls convert to RGB.
type Decoder struct {
	header *imagepack.Header

	// Assembled planes. Chroma is held at its stored subsampling
	// until the populate phase interpolates it up to luma size.
	luma, chroma1, chroma2 []byte
	lumaW, lumaH           int
	chromaW, chromaH       int

	// Residual planes for the layers 4Base, 16Base and 64Base,
	// consumed by PostParse.
	deltas [3]delta.Planes

	sceneNum  int // highest successfully decoded scene
	baseScene int // scene actually delivered by the base loader

	colorSpace   ColorSpace
	whiteBalance WhiteBalance
	interp       Interpolation
	monochrome   bool
	workers      int

	errStr string
}

// NewDecoder returns a decoder with the Photo CD defaults: raw PCD
// colour space, D65 white and bilinear interpolation.
func NewDecoder() *Decoder {
	return &Decoder{
		colorSpace:   ColorSpaceRawPCD,
		whiteBalance: WhiteD65,
		interp:       InterpBilinear,
		workers:      defaultWorkers,
	}
}

// reset releases all state from a previous parse.
func (d *Decoder) reset() {
	d.header = nil
	d.luma, d.chroma1, d.chroma2 = nil, nil, nil
	d.lumaW, d.lumaH, d.chromaW, d.chromaH = 0, 0, 0, 0
	d.deltas = [3]delta.Planes{}
	d.sceneNum, d.baseScene = 0, 0
	d.errStr = ""
}

// ParseFile reads the image pack at path up to maxScene. ipePath
// locates the 64Base sidecar and may be empty when maxScene is below
// Scene64Base.
//
// A nil return means image data at some resolution was decoded; the
// decoded scene may be lower than requested, in which case ErrorString
// carries a warning. An error return means no image data is available.
func (d *Decoder) ParseFile(path, ipePath string, maxScene Scene) error {
	d.reset()

	f, err := os.Open(path)
	if err != nil {
		d.errStr = "Could not open PCD file - may be a file permissions problem"
		return fmt.Errorf("opening PCD file: %w", err)
	}
	defer f.Close()

	hdr, err := imagepack.ReadHeader(f)
	if err != nil {
		d.errStr = err.Error()
		return err
	}
	d.header = hdr

	// Black and white originals carry no usable chroma.
	if imagepack.IsBlackAndWhite(hdr.Medium) {
		d.monochrome = true
	}

	sceneNum := int(maxScene)
	if sceneNum < scene.Base16 {
		sceneNum = scene.Base16
	}
	if sceneNum > scene.SixtyFourBase {
		sceneNum = scene.SixtyFourBase
	}
	// The attribute block caps the resolution stored in the image
	// file itself; 64Base rides on a 16Base file via the sidecar.
	if hdr.MaxResolution < scene.SixteenBase && sceneNum > hdr.MaxResolution {
		sceneNum = hdr.MaxResolution
	}
	d.sceneNum = sceneNum

	got, luma, c1, c2, err := imagepack.ReadBaseImage(f, hdr, sceneNum)
	if err != nil {
		d.errStr = err.Error()
		return err
	}
	d.baseScene = got
	d.luma, d.chroma1, d.chroma2 = luma, c1, c2
	d.lumaW, d.lumaH = scene.LumaWidth(got), scene.LumaHeight(got)
	d.chromaW, d.chromaH = scene.ChromaWidth(got), scene.ChromaHeight(got)
	if got < scene.Base {
		// Less than base resolution was readable, so no deltas
		// can apply.
		d.sceneNum = got
	}

	if d.sceneNum >= scene.FourBase {
		if err := d.read4Base(f); err != nil {
			d.warn(err, "4Base")
			d.sceneNum = scene.Base
			d.freeLayer(0)
		} else if d.sceneNum >= scene.SixteenBase {
			if err := d.read16Base(f); err != nil {
				d.warn(err, "16Base")
				d.sceneNum = scene.FourBase
				d.freeLayer(1)
			} else if d.sceneNum >= scene.SixtyFourBase {
				if err := d.read64Base(ipePath); err != nil {
					if d.errStr == "" {
						d.errStr = err.Error()
					}
					d.sceneNum = scene.SixteenBase
					d.freeLayer(2)
				}
			}
		}
	}
	return nil
}

// warn records a layer failure, keeping the first message.
func (d *Decoder) warn(err error, layer string) {
	if d.errStr == "" {
		d.errStr = fmt.Sprintf("%v while processing %s image", err, layer)
	}
}

// freeLayer drops the residual planes of layer li after a failed
// decode so a demoted scene never aliases them.
func (d *Decoder) freeLayer(li int) {
	d.deltas[li] = delta.Planes{}
}

// read4Base decodes the 4Base luma residual layer. 4Base carries no
// chroma residuals; the chroma stays at base resolution until
// interpolation.
func (d *Decoder) read4Base(f *os.File) error {
	tables, err := d.readTablesAt(f, d.header.HCTOffset(scene.FourBase), 1)
	if err != nil {
		return err
	}
	if _, err := f.Seek(int64(scene.SectorSize)*int64(d.header.ICDOffset(scene.FourBase)), io.SeekStart); err != nil {
		return err
	}
	br, err := bio.NewReader(f)
	if err != nil {
		return err
	}
	d.deltas[0][0] = make([]byte, scene.LumaWidth(scene.FourBase)*scene.LumaHeight(scene.FourBase))
	return delta.Read(br, tables, scene.FourBase, 0, 0, d.deltas[0], 0)
}

// read16Base decodes the 16Base residual layer: luma plus, unless
// monochrome, both chroma planes.
func (d *Decoder) read16Base(f *os.File) error {
	num := 3
	if d.monochrome {
		num = 1
	}
	tables, err := d.readTablesAt(f, d.header.HCTOffset(scene.SixteenBase), num)
	if err != nil {
		return err
	}
	if _, err := f.Seek(int64(scene.SectorSize)*int64(d.header.ICDOffset(scene.SixteenBase)), io.SeekStart); err != nil {
		return err
	}
	br, err := bio.NewReader(f)
	if err != nil {
		return err
	}
	d.deltas[1][0] = make([]byte, scene.LumaWidth(scene.SixteenBase)*scene.LumaHeight(scene.SixteenBase))
	if !d.monochrome {
		n := scene.ChromaWidth(scene.SixteenBase) * scene.ChromaHeight(scene.SixteenBase)
		d.deltas[1][1] = make([]byte, n)
		d.deltas[1][2] = make([]byte, n)
	}
	return delta.Read(br, tables, scene.SixteenBase, 0, 0, d.deltas[1], 0)
}

// readTablesAt reads numTables Huffman code tables from the sector
// offset given.
func (d *Decoder) readTablesAt(f *os.File, sector, numTables int) ([3]*huffman.Table, error) {
	var padded [3]*huffman.Table
	if _, err := f.Seek(int64(scene.SectorSize)*int64(sector), io.SeekStart); err != nil {
		return padded, err
	}
	tables, err := huffman.ReadTables(f, numTables)
	if err != nil {
		return padded, err
	}
	copy(padded[:], tables)
	return padded, nil
}

// read64Base parses the IPE sidecar and decodes the 64Base residual
// layer from its extension files.
func (d *Decoder) read64Base(ipePath string) error {
	if len(ipePath) < 10 {
		if ipePath == "" {
			return errors.New("Could not open 64Base IPE file")
		}
		return errors.New("IPE filename too short to be valid")
	}
	// The 9th byte from the end is the E of 64BASE; its case is the
	// case convention of the whole disc image.
	lowerCase := ipePath[len(ipePath)-9] == 'e'

	data, err := os.ReadFile(ipePath)
	if err != nil {
		return errors.New("Could not open 64Base IPE file")
	}
	index, err := imagepack.ParseIPE(data, lowerCase, d.monochrome)
	if err != nil {
		return err
	}

	if index.HuffmanOffset < 0 || index.HuffmanOffset >= int64(len(data)) {
		return fmt.Errorf("%w: Huffman table offset outside file", imagepack.ErrInvalidIPE)
	}
	tableData, err := huffman.ReadTables(bytes.NewReader(data[index.HuffmanOffset:]), len(index.Layers))
	if err != nil {
		return err
	}
	var tables [3]*huffman.Table
	copy(tables[:], tableData)

	d.deltas[2][0] = make([]byte, scene.LumaWidth(scene.SixtyFourBase)*scene.LumaHeight(scene.SixtyFourBase))
	if len(index.Layers) == 3 {
		n := scene.ChromaWidth(scene.SixtyFourBase) * scene.ChromaHeight(scene.SixtyFourBase)
		d.deltas[2][1] = make([]byte, n)
		d.deltas[2][2] = make([]byte, n)
	}

	dir := filepath.Dir(ipePath)
	for _, layer := range index.Layers {
		for _, run := range layer.Runs {
			if err := d.readIPERun(filepath.Join(dir, index.Names[run.File]), run, layer, tables); err != nil {
				return err
			}
		}
	}
	return nil
}

// readIPERun decodes one contiguous stretch of sequences from an
// extension file.
func (d *Decoder) readIPERun(path string, run imagepack.IPERun, layer imagepack.IPELayer, tables [3]*huffman.Table) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New("Could not open 64Base extension image")
	}
	defer f.Close()
	if _, err := f.Seek(run.Offset, io.SeekStart); err != nil {
		return err
	}
	br, err := bio.NewReader(f)
	if err != nil {
		return err
	}
	return delta.Read(br, tables, scene.SixtyFourBase, layer.SequenceSize, run.Sequences, d.deltas[2], layer.ColOffset)
}

// PostParse assembles the decoded residual layers into the final YCC
// planes: for each layer present, the current luma is up-resolved with
// its residuals added, and the chroma planes are up-resolved alongside
// (with a zero residual when the layer carries none). PostParse is
// idempotent; assembled layers are not applied twice.
func (d *Decoder) PostParse() {
	if d.header == nil {
		return
	}
	method := d.interp
	if method > InterpBilinear {
		// The adaptive method is an extension point; assembly
		// always uses the standard kernel.
		method = InterpBilinear
	}
	for s := scene.FourBase; s <= scene.SixtyFourBase; s++ {
		li := s - scene.FourBase
		if d.deltas[li][0] == nil {
			continue
		}
		w, h := scene.LumaWidth(s), scene.LumaHeight(s)

		d.upResolve(d.luma, d.deltas[li][0], w, h, method, true)
		d.luma = d.deltas[li][0]
		d.deltas[li][0] = nil
		d.lumaW, d.lumaH = w, h

		chroma := [2]*[]byte{&d.chroma1, &d.chroma2}
		for c, plane := range chroma {
			haveDeltas := d.deltas[li][c+1] != nil
			if !haveDeltas {
				d.deltas[li][c+1] = make([]byte, (w>>1)*(h>>1))
			}
			d.upResolve(*plane, d.deltas[li][c+1], w>>1, h>>1, method, haveDeltas)
			*plane = d.deltas[li][c+1]
			d.deltas[li][c+1] = nil
		}
		d.chromaW, d.chromaH = w>>1, h>>1
	}
}

// upResolve doubles src into dst with the selected method.
func (d *Decoder) upResolve(src, dst []byte, w, h int, method Interpolation, hasDeltas bool) {
	if method == InterpNearest {
		upres.Nearest(src, dst, w, h, hasDeltas)
		return
	}
	upres.Interpolate(src, dst, w, h, d.workers, hasDeltas)
}

// Width returns the image width after rotation to the upright
// orientation.
func (d *Decoder) Width() int {
	if d.header == nil {
		return 0
	}
	if d.header.Rotation&1 != 0 {
		return scene.LumaHeight(d.sceneNum)
	}
	return scene.LumaWidth(d.sceneNum)
}

// Height returns the image height after rotation to the upright
// orientation.
func (d *Decoder) Height() int {
	if d.header == nil {
		return 0
	}
	if d.header.Rotation&1 != 0 {
		return scene.LumaWidth(d.sceneNum)
	}
	return scene.LumaHeight(d.sceneNum)
}

// Scene returns the highest scene that decoded successfully.
func (d *Decoder) Scene() Scene {
	return Scene(d.sceneNum)
}

// Orientation returns the rotation code of the original image: 0 is
// upright, 1 is 90 CCW, 2 is 180, 3 is 270 CCW. Populated buffers are
// always rotated to upright.
func (d *Decoder) Orientation() int {
	if d.header == nil {
		return 0
	}
	return d.header.Rotation
}

// IsMonochrome reports whether the image decodes as monochrome, either
// because SetMonochrome was called or because the scanned medium is
// black and white.
func (d *Decoder) IsMonochrome() bool {
	return d.monochrome
}

// SetMonochrome forces monochrome processing: the chroma planes are
// ignored and chroma residual layers are not decoded. The flag is
// sticky; it cannot clear a file-imposed monochrome. The populate
// calls still return three RGB components, which are in general not
// equal outside the raw spaces.
func (d *Decoder) SetMonochrome(v bool) {
	d.monochrome = d.monochrome || v
}

// SetInterpolation selects the chroma up-resolution method.
func (d *Decoder) SetInterpolation(m Interpolation) {
	d.interp = m
}

// SetColorSpace selects the colour space of populated RGB data.
func (d *Decoder) SetColorSpace(c ColorSpace) {
	d.colorSpace = c
}

// ColorSpace returns the colour space set by SetColorSpace.
func (d *Decoder) ColorSpace() ColorSpace {
	return d.colorSpace
}

// SetWhiteBalance selects the white point used for the CCIR 709 and
// sRGB colour spaces.
func (d *Decoder) SetWhiteBalance(w WhiteBalance) {
	d.whiteBalance = w
}

// SetWorkers sets the number of bands the interpolation and colour
// conversion phases run in parallel. Values below 2 select sequential
// execution.
func (d *Decoder) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	d.workers = n
}

// DigitisationTime returns the scanning time as seconds since the Unix
// epoch, or 0 when no file is parsed.
func (d *Decoder) DigitisationTime() int64 {
	if d.header == nil {
		return 0
	}
	return int64(d.header.ScanningTime)
}

// FilmTermData returns the film term number and the product and gamma
// codes of the scanned medium, looked up in the registered film term
// dictionary. All zeros when the file has no SBA block or the FTN is
// unknown; a gamma code of -1 means the film has no registered GC.
func (d *Decoder) FilmTermData() (ftn, pc, gc int) {
	if d.header == nil || !d.header.HasSBA {
		return 0, 0, 0
	}
	ft := imagepack.LookupFilmTerm(int(d.header.FTN))
	if ft == nil {
		return 0, 0, 0
	}
	return int(ft.FTN), int(ft.PC), int(ft.GC)
}

// ErrorString returns the most recent error or warning in human
// readable form, or "" if none. After a failed ParseFile it describes
// the failure; after a successful one it may describe a layer that was
// demoted.
func (d *Decoder) ErrorString() string {
	return d.errStr
}

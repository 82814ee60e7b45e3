// Package delta parses the Huffman-coded residual streams that carry
// the 4Base, 16Base and 64Base image layers.
//
// A stream is a series of sequences. Each sequence starts with a 24-bit
// 0xFFFFFE preamble followed by a packed header word identifying the
// destination plane, row and sequence index, with bit positions that
// differ per scene. The body is a Huffman-coded run of residual bytes.
// Streams terminate with a preamble whose row number is past the end of
// the plane.
package delta

import (
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-photocd/internal/bio"
	"github.com/mrjoshuak/go-photocd/internal/huffman"
	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// ErrCorruptImage is returned when a preamble carries a plane code the
// format does not define.
var ErrCorruptImage = errors.New("corrupt image")

// Per-scene preamble header field extraction. Only scenes 4Base and up
// carry delta streams; the lower entries are never consulted.
var (
	rowShift     = [scene.NumScenes]uint{0, 0, 0, 9, 9, 6}
	rowMask      = [scene.NumScenes]uint32{0, 0, 0, 0x1fff, 0x1fff, 0x3fff}
	rowSubSample = [scene.NumScenes]uint32{1, 1, 1, 1, 1, 2}
	seqShift     = [scene.NumScenes]uint{0, 0, 0, 0, 0, 1}
	seqMask      = [scene.NumScenes]uint32{0, 0, 0, 0, 0, 0xf}
	planeShift   = [scene.NumScenes]uint{0, 0, 0, 22, 22, 19}
	planeMask    = [scene.NumScenes]uint32{0, 0, 0, 0x3, 0x3, 0x6}
	// Preamble bytes consumed after its first 16 bits: the 0xFE
	// marker byte plus a 16-bit header word, or a 24-bit one in IPE
	// streams.
	headerSize = [scene.NumScenes]int{0, 0, 0, 3, 3, 4}
)

// Planes holds the destination residual planes for one layer: luma,
// chroma1, chroma2. A nil plane means the stream's sequences for it are
// skipped without storing.
type Planes [3][]byte

// Read decodes sequences from b into planes until every luma row has
// been seen and no expected plane is still outstanding, or until
// maxSequences have been processed.
//
// tables holds one decode table per plane; unused entries may be nil.
// sequenceSize is the residual run length in bytes, 0 meaning one whole
// row per sequence. maxSequences of 0 means run until the stream's
// terminating preamble. colOffset shifts every run right by that many
// luma columns and is used to place 64Base tiles.
func Read(b *bio.Reader, tables [3]*huffman.Table, sceneNum, sequenceSize, maxSequences int, planes Planes, colOffset int) error {
	lumaW := scene.LumaWidth(sceneNum)
	lumaH := scene.LumaHeight(sceneNum)
	chromaW := scene.ChromaWidth(sceneNum)

	planeTrack := 0
	for i, p := range planes {
		if p != nil {
			planeTrack |= 1 << i
		}
	}

	if maxSequences == 0 {
		maxSequences = lumaH + 2*scene.ChromaHeight(sceneNum)
	}

	row := 0
	for (planeTrack != 0 || row < lumaH) && maxSequences > 0 {
		if err := huffman.Resync(b); err != nil {
			return err
		}
		if err := b.Consume(16); err != nil {
			return err
		}
		sum := b.Sum()
		row = int((sum >> rowShift[sceneNum]) & rowMask[sceneNum])
		seq := int((sum >> seqShift[sceneNum]) & seqMask[sceneNum])
		plane := (sum >> planeShift[sceneNum]) & planeMask[sceneNum]
		if plane != 0 {
			row *= int(rowSubSample[sceneNum])
		}
		for i := 0; i < headerSize[sceneNum]; i++ {
			if err := b.Consume(8); err != nil {
				return err
			}
		}

		if row < lumaH {
			switch plane {
			case 0:
				length := sequenceSize
				if length == 0 {
					length = lumaW
				}
				off := row*lumaW + seq*sequenceSize + colOffset
				if err := decodeInto(b, tables[0], planes[0], off, length); err != nil {
					return err
				}
				planeTrack &= 0x6
			case 2:
				length := sequenceSize
				if length == 0 {
					length = chromaW
				}
				off := (row>>1)*chromaW + seq*sequenceSize + colOffset>>1
				if err := decodeInto(b, tables[1], planes[1], off, length); err != nil {
					return err
				}
				planeTrack &= 0x5
			case 3, 4:
				// Some IPE encoders label chroma2 as plane 4.
				length := sequenceSize
				if length == 0 {
					length = chromaW
				}
				off := (row>>1)*chromaW + seq*sequenceSize + colOffset>>1
				if err := decodeInto(b, tables[2], planes[2], off, length); err != nil {
					return err
				}
				planeTrack &= 0x3
			default:
				return fmt.Errorf("%w: plane code %d in sequence preamble", ErrCorruptImage, plane)
			}
		}
		maxSequences--
	}
	return nil
}

// decodeInto decodes one run into dst at off, or advances past the run
// when the plane is not wanted.
func decodeInto(b *bio.Reader, t *huffman.Table, dst []byte, off, length int) error {
	if dst == nil {
		if t == nil {
			// No table was read for this plane; the next
			// resynchronisation skips the run instead.
			return nil
		}
		return huffman.SkipRun(b, t, length)
	}
	if off < 0 || off+length > len(dst) {
		return fmt.Errorf("%w: sequence outside plane bounds", ErrCorruptImage)
	}
	return huffman.DecodeRun(b, t, dst[off:off+length])
}

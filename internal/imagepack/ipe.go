package imagepack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIPE is returned for a structurally invalid IPE sidecar.
var ErrInvalidIPE = errors.New("invalid 64Base IPE file")

// IPERun is a contiguous stretch of sequences stored in one extension
// file, read in a single pass from Offset.
type IPERun struct {
	File      int   // index into IPEIndex.Names
	Offset    int64 // byte offset within the extension file
	Sequences int
}

// IPELayer describes one 64Base plane's residual stream.
type IPELayer struct {
	Width        int
	Height       int
	ColOffset    int // horizontal placement of this tile, in luma columns
	SequenceSize int // bytes of residual data per sequence
	Runs         []IPERun
}

// IPEIndex is the parsed IC sidecar: the layer descriptions (luma
// first), the extension file names, and the location of the Huffman
// code tables within the sidecar itself.
type IPEIndex struct {
	Layers        []IPELayer
	Names         []string
	HuffmanOffset int64
}

// ParseIPE parses an IC sidecar file image. lowerCase selects the
// filename case convention of the disc image; monochrome restricts the
// index to the luma layer.
func ParseIPE(data []byte, lowerCase, monochrome bool) (*IPEIndex, error) {
	if len(data) < 60 {
		return nil, fmt.Errorf("%w: file too small", ErrInvalidIPE)
	}
	offDescr := int(be32(data[44:]))
	offNames := int(be32(data[48:]))
	offHuffman := int(be32(data[56:]))

	if offDescr+2 > len(data) || offNames+2 > len(data) {
		return nil, fmt.Errorf("%w: block offsets outside file", ErrInvalidIPE)
	}
	layers := int(be16(data[offDescr:]))
	if layers != 1 && layers != 3 {
		return nil, fmt.Errorf("%w: invalid number of layers %d", ErrInvalidIPE, layers)
	}
	if monochrome {
		layers = 1
	}

	files := int(be16(data[offNames:]))
	if files < 1 || files > 10 || files < layers {
		return nil, fmt.Errorf("%w: invalid number of extension files %d", ErrInvalidIPE, files)
	}
	names := make([]string, files)
	for i := 0; i < files; i++ {
		off := offNames + 2 + 16*i
		if off+12 > len(data) {
			return nil, fmt.Errorf("%w: filename table outside file", ErrInvalidIPE)
		}
		name := string(data[off : off+12])
		if j := strings.IndexByte(name, 0); j >= 0 {
			name = name[:j]
		}
		name = strings.TrimRight(name, " ")
		if lowerCase {
			name = strings.ToLower(name)
		}
		names[i] = name
	}

	x := &IPEIndex{
		Names:         names,
		HuffmanOffset: int64(offHuffman),
	}
	descr := offDescr + 2
	for layer := 0; layer < layers; layer++ {
		if descr+22 > len(data) {
			return nil, fmt.Errorf("%w: layer descriptor outside file", ErrInvalidIPE)
		}
		d := data[descr:]
		l := IPELayer{
			Width:        int(be16(d[4:])),
			Height:       int(be16(d[6:])),
			ColOffset:    int(be16(d[8:])),
			SequenceSize: int(be32(d[10:])),
		}
		if l.SequenceSize <= 0 {
			return nil, fmt.Errorf("%w: layer %d has zero sequence length", ErrInvalidIPE, layer)
		}
		numSequences := l.Width * l.Height / l.SequenceSize
		offPointers := int(be32(d[14:]))
		if offPointers < 0 || offPointers+6*numSequences > len(data) {
			return nil, fmt.Errorf("%w: pointer table outside file", ErrInvalidIPE)
		}
		// Contiguous entries sharing a file index are one read.
		for s := 0; s < numSequences; {
			e := data[offPointers+6*s:]
			run := IPERun{
				File:   int(be16(e)),
				Offset: int64(be32(e[2:])),
			}
			if run.File >= files {
				return nil, fmt.Errorf("%w: pointer table references file %d of %d", ErrInvalidIPE, run.File, files)
			}
			n := 1
			for s+n < numSequences && int(be16(data[offPointers+6*(s+n):])) == run.File {
				n++
			}
			run.Sequences = n
			l.Runs = append(l.Runs, run)
			s += n
		}
		x.Layers = append(x.Layers, l)
		descr += int(be16(d[0:]))
	}
	return x, nil
}

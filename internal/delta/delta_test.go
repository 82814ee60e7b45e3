package delta

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mrjoshuak/go-photocd/internal/bio"
	"github.com/mrjoshuak/go-photocd/internal/huffman"
	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// bitWriter assembles an MSB-first bit stream.
type bitWriter struct {
	data []byte
	acc  uint64
	n    uint
}

func (w *bitWriter) writeBits(v uint32, n uint) {
	w.acc = w.acc<<n | uint64(v)&(1<<n-1)
	w.n += n
	for w.n >= 8 {
		w.n -= 8
		w.data = append(w.data, byte(w.acc>>w.n))
	}
}

// pad aligns the stream to a byte boundary with zero bits.
func (w *bitWriter) pad() {
	if w.n > 0 {
		w.writeBits(0, 8-w.n)
	}
}

func (w *bitWriter) bytes() []byte {
	w.pad()
	return append(w.data, 0, 0, 0, 0, 0, 0, 0, 0)
}

// preamble writes the 0xFFFFFE marker and the packed header word for
// the scene.
func (w *bitWriter) preamble(sceneNum int, plane, row, seq uint32) {
	w.pad()
	word := plane<<planeShift[sceneNum] | row<<rowShift[sceneNum] | seq<<seqShift[sceneNum]
	w.writeBits(0xFFFFFE, 24)
	w.writeBits(word>>16, 8)
	w.writeBits(word>>8, 8)
	if headerSize[sceneNum] == 4 {
		w.writeBits(word, 8)
	}
}

// run writes length coded bytes, one zero bit each under zeroTable.
func (w *bitWriter) run(length int) {
	for i := 0; i < length; i++ {
		w.writeBits(0, 1)
	}
}

// zeroTable decodes the single-symbol code 0 -> key, so an all-zero
// body yields a run of that key.
func zeroTable(t *testing.T, key uint8) *huffman.Table {
	t.Helper()
	tbl, _, err := huffman.BuildTable([]byte{0x00, 0x00, 0x00, 0x00, key})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	return tbl
}

func newReader(t *testing.T, data []byte) *bio.Reader {
	t.Helper()
	r, err := bio.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("bio.NewReader: %v", err)
	}
	return r
}

func TestRead_LumaRows(t *testing.T) {
	s := scene.FourBase
	lw := scene.LumaWidth(s)

	var w bitWriter
	w.preamble(s, 0, 0, 0)
	w.run(lw)
	w.preamble(s, 0, 1, 0)
	w.run(lw)
	w.preamble(s, 0, 0x1fff, 0) // terminator: row past the plane

	luma := make([]byte, lw*scene.LumaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 7)}
	if err := Read(newReader(t, w.bytes()), tables, s, 0, 0, Planes{luma}, 0); err != nil {
		t.Fatalf("Read: %v", err)
	}

	for col := 0; col < lw; col++ {
		if luma[col] != 7 {
			t.Fatalf("row 0 col %d = %d, want 7", col, luma[col])
		}
		if luma[lw+col] != 7 {
			t.Fatalf("row 1 col %d = %d, want 7", col, luma[lw+col])
		}
		if luma[2*lw+col] != 0 {
			t.Fatalf("row 2 col %d = %d, want untouched 0", col, luma[2*lw+col])
		}
	}
}

func TestRead_ChromaPlanes(t *testing.T) {
	s := scene.SixteenBase
	lw := scene.LumaWidth(s)
	cw := scene.ChromaWidth(s)

	var w bitWriter
	w.preamble(s, 0, 0, 0)
	w.run(lw)
	w.preamble(s, 2, 0, 0) // chroma1, luma row 0 -> chroma row 0
	w.run(cw)
	w.preamble(s, 3, 2, 0) // chroma2, luma row 2 -> chroma row 1
	w.run(cw)
	w.preamble(s, 0, 0x1fff, 0)

	luma := make([]byte, lw*scene.LumaHeight(s))
	c1 := make([]byte, cw*scene.ChromaHeight(s))
	c2 := make([]byte, cw*scene.ChromaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 1), zeroTable(t, 2), zeroTable(t, 3)}
	if err := Read(newReader(t, w.bytes()), tables, s, 0, 0, Planes{luma, c1, c2}, 0); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if luma[0] != 1 || luma[lw-1] != 1 {
		t.Errorf("luma row 0 = %d..%d, want 1", luma[0], luma[lw-1])
	}
	if c1[0] != 2 || c1[cw-1] != 2 {
		t.Errorf("chroma1 row 0 = %d..%d, want 2", c1[0], c1[cw-1])
	}
	if c2[cw] != 3 || c2[2*cw-1] != 3 {
		t.Errorf("chroma2 row 1 = %d..%d, want 3", c2[cw], c2[2*cw-1])
	}
	if c2[0] != 0 {
		t.Errorf("chroma2 row 0 touched: %d", c2[0])
	}
}

func TestRead_CorruptPlaneCode(t *testing.T) {
	s := scene.SixteenBase
	var w bitWriter
	w.preamble(s, 1, 0, 0) // plane 1 is not defined

	luma := make([]byte, scene.LumaWidth(s)*scene.LumaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 1)}
	err := Read(newReader(t, w.bytes()), tables, s, 0, 0, Planes{luma}, 0)
	if !errors.Is(err, ErrCorruptImage) {
		t.Errorf("Read = %v, want ErrCorruptImage", err)
	}
}

func TestRead_NilChromaSkipped(t *testing.T) {
	// Monochrome 16Base: chroma sequences appear in the stream but
	// there is neither a plane nor a table for them; the parser must
	// pass over them and still decode the luma.
	s := scene.SixteenBase
	lw := scene.LumaWidth(s)
	cw := scene.ChromaWidth(s)

	var w bitWriter
	w.preamble(s, 2, 0, 0)
	w.run(cw)
	w.preamble(s, 0, 0, 0)
	w.run(lw)
	w.preamble(s, 0, 0x1fff, 0)

	luma := make([]byte, lw*scene.LumaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 9)}
	if err := Read(newReader(t, w.bytes()), tables, s, 0, 0, Planes{luma}, 0); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if luma[0] != 9 || luma[lw-1] != 9 {
		t.Errorf("luma row 0 = %d..%d, want 9", luma[0], luma[lw-1])
	}
}

func TestRead_64BaseSequences(t *testing.T) {
	s := scene.SixtyFourBase
	lw := scene.LumaWidth(s)
	cw := scene.ChromaWidth(s)
	seqSize := 256
	colOffset := 512

	var w bitWriter
	// Luma rows are not doubled; chroma rows are.
	w.preamble(s, 0, 5, 1)
	w.run(seqSize)
	w.preamble(s, 4, 3, 2) // chroma2, stored row 3 -> plane row 3 (6>>1)
	w.run(seqSize)

	luma := make([]byte, lw*scene.LumaHeight(s))
	c1 := make([]byte, cw*scene.ChromaHeight(s))
	c2 := make([]byte, cw*scene.ChromaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 11), zeroTable(t, 12), zeroTable(t, 13)}
	if err := Read(newReader(t, w.bytes()), tables, s, seqSize, 2, Planes{luma, c1, c2}, colOffset); err != nil {
		t.Fatalf("Read: %v", err)
	}

	lumaOff := 5*lw + 1*seqSize + colOffset
	if luma[lumaOff] != 11 || luma[lumaOff+seqSize-1] != 11 {
		t.Errorf("luma sequence not placed at %d", lumaOff)
	}
	if luma[lumaOff-1] != 0 || luma[lumaOff+seqSize] != 0 {
		t.Errorf("luma sequence spilled outside its run")
	}
	c2Off := 3*cw + 2*seqSize + colOffset>>1
	if c2[c2Off] != 13 || c2[c2Off+seqSize-1] != 13 {
		t.Errorf("chroma2 sequence not placed at %d", c2Off)
	}
}

func TestRead_SequenceOutsidePlaneBounds(t *testing.T) {
	s := scene.FourBase
	var w bitWriter
	w.preamble(s, 0, uint32(scene.LumaHeight(s)-1), 0)
	w.run(8)

	// A column offset that pushes the final row's run past the end.
	luma := make([]byte, scene.LumaWidth(s)*scene.LumaHeight(s))
	tables := [3]*huffman.Table{zeroTable(t, 1)}
	err := Read(newReader(t, w.bytes()), tables, s, 0, 1, Planes{luma}, scene.LumaWidth(s)/2)
	if !errors.Is(err, ErrCorruptImage) {
		t.Errorf("Read = %v, want ErrCorruptImage for out of bounds run", err)
	}
}

package imagepack

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// baseImageBytes lays out the interleaved pattern for one scene: two
// luma rows, one chroma1 row, one chroma2 row, repeated.
func baseImageBytes(s int, luma, c1, c2 byte) []byte {
	lw := scene.LumaWidth(s)
	cw := scene.ChromaWidth(s)
	var out []byte
	for y := 0; y < scene.ChromaHeight(s); y++ {
		out = append(out, bytes.Repeat([]byte{luma}, 2*lw)...)
		out = append(out, bytes.Repeat([]byte{c1}, cw)...)
		out = append(out, bytes.Repeat([]byte{c2}, cw)...)
	}
	return out
}

// packFile builds a file image with base image data placed at the ICD
// sectors for the given scenes.
func packFile(h *Header, scenes ...int) []byte {
	size := 0
	for _, s := range scenes {
		end := h.ICDOffset(s)*scene.SectorSize +
			2*scene.LumaWidth(s)*scene.LumaHeight(s)
		if end > size {
			size = end
		}
	}
	out := make([]byte, size)
	for _, s := range scenes {
		copy(out[h.ICDOffset(s)*scene.SectorSize:], baseImageBytes(s, byte(100+s), 156, 137))
	}
	return out
}

func TestReadBaseImage(t *testing.T) {
	h := &Header{}
	file := packFile(h, scene.Base16, scene.Base4, scene.Base)

	got, luma, c1, c2, err := ReadBaseImage(bytes.NewReader(file), h, scene.Base)
	if err != nil {
		t.Fatalf("ReadBaseImage: %v", err)
	}
	if got != scene.Base {
		t.Fatalf("scene = %v, want Base", got)
	}
	lw, lh := scene.LumaWidth(got), scene.LumaHeight(got)
	cw, ch := scene.ChromaWidth(got), scene.ChromaHeight(got)
	if len(luma) != lw*lh || len(c1) != cw*ch || len(c2) != cw*ch {
		t.Fatalf("plane sizes = %d, %d, %d", len(luma), len(c1), len(c2))
	}
	if luma[0] != 102 || luma[len(luma)-1] != 102 {
		t.Errorf("luma = %d..%d, want 102", luma[0], luma[len(luma)-1])
	}
	if c1[0] != 156 || c2[0] != 137 {
		t.Errorf("chroma = %d, %d, want 156, 137", c1[0], c2[0])
	}
}

func TestReadBaseImage_ClampsAboveBase(t *testing.T) {
	// Requests above Base read the Base data; higher scenes come
	// from residual layers, not the base loader.
	h := &Header{}
	file := packFile(h, scene.Base16, scene.Base4, scene.Base)
	got, _, _, _, err := ReadBaseImage(bytes.NewReader(file), h, scene.SixteenBase)
	if err != nil {
		t.Fatalf("ReadBaseImage: %v", err)
	}
	if got != scene.Base {
		t.Errorf("scene = %v, want Base", got)
	}
}

func TestReadBaseImage_FallsBack(t *testing.T) {
	// Only Base/16 data exists; a Base request must demote twice.
	h := &Header{}
	file := packFile(h, scene.Base16)
	got, luma, _, _, err := ReadBaseImage(bytes.NewReader(file), h, scene.Base)
	if err != nil {
		t.Fatalf("ReadBaseImage: %v", err)
	}
	if got != scene.Base16 {
		t.Fatalf("scene = %v, want Base16", got)
	}
	if luma[0] != 100 {
		t.Errorf("luma = %d, want 100", luma[0])
	}
}

func TestReadBaseImage_NoValidImage(t *testing.T) {
	h := &Header{}
	_, _, _, _, err := ReadBaseImage(bytes.NewReader(make([]byte, 64)), h, scene.Base)
	if !errors.Is(err, ErrNoBaseImage) {
		t.Errorf("ReadBaseImage = %v, want ErrNoBaseImage", err)
	}
}

package imagepack

import (
	"errors"
	"testing"
)

// ipeEntry is one pointer table record.
type ipeEntry struct {
	file   int
	offset uint32
}

// buildIPE assembles a minimal IC sidecar with one luma layer
// description per given dims and the given pointer entries.
func buildIPE(layers int, names []string, width, height, seqLen, colOffset int, entries []ipeEntry) []byte {
	const (
		offDescr    = 0x100
		offNames    = 0x200
		offPointers = 0x300
		offHuffman  = 0x400
	)
	size := offPointers + 6*len(entries)
	if offHuffman > size {
		size = offHuffman
	}
	b := make([]byte, size+0x100)
	be32put(b[44:], offDescr)
	be32put(b[48:], offNames)
	be32put(b[52:], offPointers)
	be32put(b[56:], offHuffman)

	be16put(b[offDescr:], uint16(layers))
	descr := offDescr + 2
	for l := 0; l < layers; l++ {
		d := b[descr:]
		be16put(d[0:], 28) // descriptor length
		be16put(d[4:], uint16(width))
		be16put(d[6:], uint16(height))
		be16put(d[8:], uint16(colOffset))
		be32put(d[10:], uint32(seqLen))
		be32put(d[14:], offPointers)
		be32put(d[18:], offHuffman)
		descr += 28
	}

	be16put(b[offNames:], uint16(len(names)))
	for i, n := range names {
		copy(b[offNames+2+16*i:], pad(n, 12))
	}

	for i, e := range entries {
		be16put(b[offPointers+6*i:], uint16(e.file))
		be32put(b[offPointers+6*i+2:], e.offset)
	}
	return b
}

func TestParseIPE_RunGrouping(t *testing.T) {
	// Eight sequences: five in file 0 then three in file 1. The
	// parser must produce one contiguous run per file, anchored at
	// the first entry's offset.
	entries := []ipeEntry{
		{0, 0}, {0, 500}, {0, 1000}, {0, 1500}, {0, 2000},
		{1, 0}, {1, 500}, {1, 1000},
	}
	data := buildIPE(1, []string{"IMG0001.64B", "IMG0002.64B"}, 64, 64, 512, 0, entries)
	x, err := ParseIPE(data, false, false)
	if err != nil {
		t.Fatalf("ParseIPE: %v", err)
	}
	if len(x.Layers) != 1 {
		t.Fatalf("layers = %d, want 1", len(x.Layers))
	}
	l := x.Layers[0]
	if l.SequenceSize != 512 {
		t.Errorf("SequenceSize = %d, want 512", l.SequenceSize)
	}
	want := []IPERun{
		{File: 0, Offset: 0, Sequences: 5},
		{File: 1, Offset: 0, Sequences: 3},
	}
	if len(l.Runs) != len(want) {
		t.Fatalf("runs = %+v, want %+v", l.Runs, want)
	}
	for i := range want {
		if l.Runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, l.Runs[i], want[i])
		}
	}
}

func TestParseIPE_FilenameCase(t *testing.T) {
	data := buildIPE(1, []string{"IMG0001.64B"}, 64, 64, 4096, 0, []ipeEntry{{0, 0}})

	x, err := ParseIPE(data, false, false)
	if err != nil {
		t.Fatalf("ParseIPE: %v", err)
	}
	if x.Names[0] != "IMG0001.64B" {
		t.Errorf("upper case name = %q", x.Names[0])
	}

	x, err = ParseIPE(data, true, false)
	if err != nil {
		t.Fatalf("ParseIPE: %v", err)
	}
	if x.Names[0] != "img0001.64b" {
		t.Errorf("lower case name = %q", x.Names[0])
	}
}

func TestParseIPE_MonochromeRestrictsLayers(t *testing.T) {
	data := buildIPE(3, []string{"A.64B", "B.64B", "C.64B"}, 64, 64, 4096, 0, []ipeEntry{{0, 0}})
	x, err := ParseIPE(data, false, true)
	if err != nil {
		t.Fatalf("ParseIPE: %v", err)
	}
	if len(x.Layers) != 1 {
		t.Errorf("monochrome layers = %d, want 1", len(x.Layers))
	}
}

func TestParseIPE_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", make([]byte, 16)},
		{"bad layer count", buildIPE(2, []string{"A.64B", "B.64B"}, 64, 64, 4096, 0, []ipeEntry{{0, 0}})},
		{"no files", buildIPE(1, nil, 64, 64, 4096, 0, []ipeEntry{{0, 0}})},
		{"fewer files than layers", buildIPE(3, []string{"A.64B"}, 64, 64, 4096, 0, []ipeEntry{{0, 0}})},
		{"file index out of range", buildIPE(1, []string{"A.64B"}, 64, 64, 4096, 0, []ipeEntry{{7, 0}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseIPE(tt.data, false, false); !errors.Is(err, ErrInvalidIPE) {
				t.Errorf("ParseIPE = %v, want ErrInvalidIPE", err)
			}
		})
	}
}

package huffman

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mrjoshuak/go-photocd/internal/bio"
)

// tableEntry is a code table record entry in its logical form.
type tableEntry struct {
	length int // actual bit length, 1..16
	code   uint16
	key    uint8
}

// record serialises entries into an on-disc code table record.
func record(entries []tableEntry) []byte {
	out := []byte{byte(len(entries) - 1)}
	for _, e := range entries {
		out = append(out, byte(e.length-1), byte(e.code>>8), byte(e.code), e.key)
	}
	return out
}

// testCode is the canonical three-symbol prefix code used throughout:
// 0 -> A, 10 -> B, 11 -> C.
var testCode = []tableEntry{
	{1, 0x0000, 'A'},
	{2, 0x8000, 'B'},
	{2, 0xC000, 'C'},
}

// bitWriter assembles an MSB-first bit stream for the reader.
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

func (w *bitWriter) bytes() []byte {
	out := w.data
	if w.n > 0 {
		out = append(out, byte(w.acc<<(8-w.n)))
	}
	// Trailing slack so the shift register can always refill.
	return append(out, 0, 0, 0, 0, 0, 0, 0, 0)
}

func newReader(t *testing.T, data []byte) *bio.Reader {
	t.Helper()
	r, err := bio.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("bio.NewReader: %v", err)
	}
	return r
}

func TestBuildTable(t *testing.T) {
	tbl, n, err := BuildTable(record(testCode))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if want := 1 + 3*4; n != want {
		t.Errorf("consumed %d bytes, want %d", n, want)
	}

	tests := []struct {
		window  uint16
		wantKey uint8
		wantLen uint8
	}{
		{0x0000, 'A', 1},
		{0x7FFF, 'A', 1},
		{0x8000, 'B', 2},
		{0xBFFF, 'B', 2},
		{0xC000, 'C', 2},
		{0xFFFF, 'C', 2},
	}
	for _, tt := range tests {
		if tbl.key[tt.window] != tt.wantKey || tbl.len[tt.window] != tt.wantLen {
			t.Errorf("window %04X = (%q, %d), want (%q, %d)",
				tt.window, tbl.key[tt.window], tbl.len[tt.window], tt.wantKey, tt.wantLen)
		}
	}
}

func TestBuildTable_InvalidPrefixSentinel(t *testing.T) {
	// 0 -> A only; every window starting with 1 has no valid prefix.
	tbl, _, err := BuildTable(record([]tableEntry{{1, 0x0000, 'A'}}))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if tbl.len[0x8000] != errLen || tbl.key[0x8000] != errKey {
		t.Errorf("window 8000 = (%02X, %02X), want sentinel (%02X, %02X)",
			tbl.key[0x8000], tbl.len[0x8000], errKey, errLen)
	}
}

func TestBuildTable_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []byte
	}{
		{"empty", nil},
		{"length over 16", []byte{0x00, 16, 0x00, 0x00, 0x42}},
		{"truncated", []byte{0x02, 0x00, 0x00, 0x00, 0x41}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := BuildTable(tt.record); !errors.Is(err, ErrTable) {
				t.Errorf("BuildTable() err = %v, want ErrTable", err)
			}
		})
	}
}

func TestReadTables_ReusesPreviousTable(t *testing.T) {
	// Three records in a two-sector block; the second has fewer than
	// four entries, so it must alias the first. The third is full.
	buf := make([]byte, 2*bio.SectorSize)
	pos := copy(buf, record(testCode))
	pos += copy(buf[pos:], record([]tableEntry{{1, 0x0000, 'Z'}}))
	copy(buf[pos:], record([]tableEntry{
		{1, 0x0000, 'D'},
		{2, 0x8000, 'E'},
		{3, 0xC000, 'F'},
		{3, 0xE000, 'G'},
	}))

	tables, err := ReadTables(bytes.NewReader(buf), 3)
	if err != nil {
		t.Fatalf("ReadTables: %v", err)
	}
	if tables[1] != tables[0] {
		t.Errorf("short second table should reuse the first")
	}
	if tables[1].key[0x0000] != 'A' {
		t.Errorf("reused table decodes %q, want 'A'", tables[1].key[0x0000])
	}
	if tables[2].key[0xE000] != 'G' {
		t.Errorf("third table decodes %q, want 'G'", tables[2].key[0xE000])
	}
}

func TestDecodeRun_RoundTrip(t *testing.T) {
	tbl, _, err := BuildTable(record(testCode))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	want := []byte("ABCABBCCA")
	var w bitWriter
	for _, k := range want {
		switch k {
		case 'A':
			w.writeBits(0, 1)
		case 'B':
			w.writeBits(2, 2)
		case 'C':
			w.writeBits(3, 2)
		}
	}

	got := make([]byte, len(want))
	if err := DecodeRun(newReader(t, w.bytes()), tbl, got); err != nil {
		t.Fatalf("DecodeRun: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeRun = %q, want %q", got, want)
	}
}

func TestDecodeRun_RecoversFromInvalidPrefix(t *testing.T) {
	// Only 0 -> A and 10 -> B are defined; the window 11... is an
	// invalid prefix. After three good symbols the stream turns
	// invalid; the rest of the run must be zeroed and the reader
	// must land on the following preamble.
	tbl, _, err := BuildTable(record([]tableEntry{
		{1, 0x0000, 'A'},
		{2, 0x8000, 'B'},
	}))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	var w bitWriter
	w.writeBits(0, 1) // A
	w.writeBits(2, 2) // B
	w.writeBits(0, 1) // A
	w.writeBits(0xFFFFFE, 24)
	w.writeBits(0x12, 8)

	r := newReader(t, w.bytes())
	got := make([]byte, 8)
	if err := DecodeRun(r, tbl, got); err != nil {
		t.Fatalf("DecodeRun: %v", err)
	}
	want := []byte{'A', 'B', 'A', 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeRun = %v, want %v", got, want)
	}
	if sum := r.Sum(); sum&0xffffff00 != 0xfffffe00 {
		t.Errorf("after recovery Sum() = %08X, want preamble alignment", sum)
	}
}

func TestResync(t *testing.T) {
	tests := []struct {
		name    string
		prefix  func(w *bitWriter)
		nextTop uint32
	}{
		{
			name:    "aligned",
			prefix:  func(w *bitWriter) {},
			nextTop: 0xfffffe00,
		},
		{
			name: "after bytes",
			prefix: func(w *bitWriter) {
				w.writeBits(0x1234, 16)
			},
			nextTop: 0xfffffe00,
		},
		{
			name: "bit offset",
			prefix: func(w *bitWriter) {
				w.writeBits(0, 3)
			},
			nextTop: 0xfffffe00,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w bitWriter
			tt.prefix(&w)
			w.writeBits(0xFFFFFE, 24)
			w.writeBits(0x42, 8)
			r := newReader(t, w.bytes())
			if err := Resync(r); err != nil {
				t.Fatalf("Resync: %v", err)
			}
			if got := r.Sum() & 0xffffff00; got != tt.nextTop {
				t.Errorf("Sum()&ffffff00 = %08X, want %08X", got, tt.nextTop)
			}
		})
	}
}

func TestSkipRun(t *testing.T) {
	tbl, _, err := BuildTable(record(testCode))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	var w bitWriter
	for i := 0; i < 5; i++ {
		w.writeBits(2, 2) // B
	}
	w.writeBits(0xFFFFFE, 24)
	w.writeBits(0, 8)

	r := newReader(t, w.bytes())
	if err := SkipRun(r, tbl, 5); err != nil {
		t.Fatalf("SkipRun: %v", err)
	}
	// The skipped run is exactly 10 bits; the preamble follows.
	if err := Resync(r); err != nil {
		t.Fatalf("Resync: %v", err)
	}
	if got := r.Sum() & 0xffffff00; got != 0xfffffe00 {
		t.Errorf("after SkipRun Sum() = %08X, want preamble", got)
	}
}

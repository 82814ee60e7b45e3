// Package huffman implements the Photo CD Huffman code layer: building
// flat decode tables from the on-disc code table records, decoding runs
// of residual bytes, and resynchronising on the 0xFFFFFE sequence
// preamble after stream corruption.
package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/mrjoshuak/go-photocd/internal/bio"
)

// Table sentinel marking a 16-bit window with no valid code prefix.
const (
	errKey = 0x7f
	errLen = 0x1f
)

// ErrTable is returned for a structurally invalid code table record.
var ErrTable = errors.New("invalid Huffman code table")

// Table maps every 16-bit stream window to a decoded key and the bit
// length of the matched code. Windows with no valid prefix carry the
// error sentinel length.
type Table struct {
	key [0x10000]uint8
	len [0x10000]uint8
}

// BuildTable expands one on-disc code table record into a flat decode
// table. The record is one count byte holding entries-1 followed by
// 4-byte entries of (length-1, code high, code low, key). It returns
// the table and the number of record bytes consumed.
func BuildTable(record []byte) (*Table, int, error) {
	if len(record) < 1 {
		return nil, 0, fmt.Errorf("%w: empty record", ErrTable)
	}
	entries := int(record[0]) + 1
	size := 1 + entries*4
	if len(record) < size {
		return nil, 0, fmt.Errorf("%w: record truncated at %d of %d entries", ErrTable, (len(record)-1)/4, entries)
	}

	t := &Table{}
	for i := range t.len {
		t.key[i] = errKey
		t.len[i] = errLen
	}
	for i := 0; i < entries; i++ {
		e := record[1+i*4 : 5+i*4]
		length := uint(e[0]) + 1
		if length > 16 {
			return nil, 0, fmt.Errorf("%w: code length %d exceeds 16 bits", ErrTable, length)
		}
		code := uint16(e[1])<<8 | uint16(e[2])
		// The code is left justified; every window sharing its
		// top bits decodes to this entry.
		for fill := uint32(0); fill < 1<<(16-length); fill++ {
			loc := code | uint16(fill)
			t.key[loc] = e[3]
			t.len[loc] = uint8(length)
		}
	}
	return t, size, nil
}

// ReadTables reads numTables code table records stored back to back at
// the current position of r and builds their decode tables. One table
// occupies a single sector on disc; a set of three occupies two. A
// non-first record with fewer than four entries reuses the previous
// table, which is how discs mark "same table as the last plane".
func ReadTables(r io.Reader, numTables int) ([]*Table, error) {
	size := bio.SectorSize
	if numTables != 1 {
		size = 2 * bio.SectorSize
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading Huffman code tables: %w", err)
	}

	tables := make([]*Table, numTables)
	for i := 0; i < numTables; i++ {
		t, n, err := BuildTable(buf)
		if err != nil {
			return nil, err
		}
		entries := (n - 1) / 4
		if entries < 4 && i > 0 {
			tables[i] = tables[i-1]
		} else {
			tables[i] = t
		}
		buf = buf[n:]
	}
	return tables, nil
}

// Resync advances the stream to the next sequence preamble: first in
// byte steps until 0xFFF is visible in the lower window, then in single
// bits until the register holds 0xFFFFFE in its top 24 bits.
func Resync(b *bio.Reader) error {
	for b.Sum()&0x00fff000 != 0x00fff000 {
		if err := b.Consume(8); err != nil {
			return err
		}
	}
	for b.Sum()&0xffffff00 != 0xfffffe00 {
		if err := b.Consume(1); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRun decodes len(dst) bytes from b using t. On an invalid code
// prefix the remainder of the run is zeroed and the stream is
// resynchronised to the next preamble; at most one sequence of delta
// information is lost.
func DecodeRun(b *bio.Reader, t *Table, dst []byte) error {
	for i := 0; i < len(dst); i++ {
		code := b.Peek16()
		if t.len[code] == errLen {
			for ; i < len(dst); i++ {
				dst[i] = 0
			}
			return Resync(b)
		}
		dst[i] = t.key[code]
		if err := b.Consume(uint(t.len[code])); err != nil {
			return err
		}
	}
	return nil
}

// SkipRun advances the stream over length coded bytes without a
// destination plane, keeping the bit position aligned with the
// sequence structure.
func SkipRun(b *bio.Reader, t *Table, length int) error {
	for i := 0; i < length; i++ {
		code := b.Peek16()
		if t.len[code] == errLen {
			return Resync(b)
		}
		if err := b.Consume(uint(t.len[code])); err != nil {
			return err
		}
	}
	return nil
}

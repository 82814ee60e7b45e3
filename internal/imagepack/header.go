// Package imagepack parses the on-disc structures of a Photo CD image
// pack: the fixed-layout file header with its IPI metadata and image
// component attributes, the interleaved base image data, the 64Base IPE
// sidecar index, and the film term dictionary.
//
// All multi-byte integers on disc are big endian regardless of the
// host.
package imagepack

import (
	"errors"
	"fmt"
	"io"

	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// Failure kinds surfaced while opening an image pack.
var (
	ErrNotPCD           = errors.New("not a valid PCD file")
	ErrOverviewFile     = errors.New("file is a PCD overview file, not an image file")
	ErrFileTooSmall     = errors.New("PCD file is too small to be valid")
	ErrInterleavedAudio = errors.New("the file contains interleaved audio")
	ErrNoBaseImage      = errors.New("no valid base image could be found")
)

// headerSize covers the signature sector, the IPI header and the five
// image component attribute blocks.
const headerSize = scene.SectorSize + 1536 + 5*512

const (
	ipiOff = scene.SectorSize // IPI header follows the signature sector
	icaOff = ipiOff + 1536    // first ICA block (Base/16)
)

// Header is the parsed fixed-layout file header of an image pack.
type Header struct {
	SpecVersion      [2]byte
	AuthoringRelease [2]byte
	Magnification    [2]byte
	ScanningTime     uint32
	ModificationTime uint32
	Medium           byte

	// Space-padded ISO 646 text fields, kept raw; trimming happens
	// at the metadata rendering layer.
	ProductType         string
	ScannerVendor       string
	ScannerProduct      string
	ScannerFirmwareRev  string
	ScannerFirmwareDate string
	ScannerSerial       string
	PIWManufacturer     string

	ScannerPixelSize [2]byte // BCD microns, integer then fraction digits

	FinisherCharSet byte
	FinisherName    string

	HasSBA      bool
	SBARevision [2]byte
	SBACommand  byte
	FTN         uint16

	CopyrightStatus byte
	CopyrightFile   string

	// From the Base/16 image component attributes.
	Rotation      int // 0: 0deg, 1: 90CCW, 2: 180CCW, 3: 270CCW
	MaxResolution int // scene.Base, scene.FourBase or scene.SixteenBase
	IPEAvailable  bool
	HuffmanClass  int // 0..3, rendered as classes 1..4

	Base4Stop  int // sector end of the 4Base data
	Base16Stop int
	IPEStop    int
}

// be16 and be32 are the big-endian reads used for every multi-byte
// field on disc.
func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// ReadHeader reads and validates the image pack header from the start
// of r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrFileTooSmall
		}
		return nil, fmt.Errorf("reading PCD header: %w", err)
	}

	if string(buf[0:7]) == "PCD_OPA" {
		return nil, ErrOverviewFile
	}
	if string(buf[ipiOff:ipiOff+7]) != "PCD_IPI" {
		return nil, ErrNotPCD
	}

	ipi := buf[ipiOff:]
	h := &Header{
		ScanningTime:        be32(ipi[13:]),
		ModificationTime:    be32(ipi[17:]),
		Medium:              ipi[21],
		ProductType:         string(ipi[22:42]),
		ScannerVendor:       string(ipi[42:62]),
		ScannerProduct:      string(ipi[62:78]),
		ScannerFirmwareRev:  string(ipi[78:82]),
		ScannerFirmwareDate: string(ipi[82:90]),
		ScannerSerial:       string(ipi[90:110]),
		PIWManufacturer:     string(ipi[112:132]),
		FinisherCharSet:     ipi[132],
		FinisherName:        string(ipi[165:225]),
		CopyrightStatus:     ipi[331],
		CopyrightFile:       string(ipi[332:344]),
	}
	copy(h.SpecVersion[:], ipi[7:9])
	copy(h.AuthoringRelease[:], ipi[9:11])
	copy(h.Magnification[:], ipi[11:13])
	copy(h.ScannerPixelSize[:], ipi[110:112])

	if string(ipi[225:228]) == "SBA" {
		h.HasSBA = true
		copy(h.SBARevision[:], ipi[228:230])
		h.SBACommand = ipi[230]
		h.FTN = be16(ipi[325:327])
	}

	ica := buf[icaOff:]
	attr := ica[2]
	h.Rotation = int(attr & 0x03)
	h.MaxResolution = int((attr>>2)&0x03) + scene.Base
	h.IPEAvailable = (attr>>4)&0x01 != 0
	h.HuffmanClass = int((attr >> 5) & 0x03)
	h.Base4Stop = int(be16(ica[3:]))
	h.Base16Stop = int(be16(ica[5:]))
	h.IPEStop = int(be16(ica[7:]))
	if ica[9] != 1 {
		return nil, ErrInterleavedAudio
	}
	return h, nil
}

// ICDOffset returns the sector of the image component data for s. The
// three lowest resolutions sit at fixed sectors; 16Base is located from
// the Base/16 attribute block's 4Base stop sector. 64Base data lives in
// the IPE sidecar, not the image file.
func (h *Header) ICDOffset(s int) int {
	switch s {
	case scene.Base16:
		return 4
	case scene.Base4:
		return 23
	case scene.Base:
		return 96
	case scene.FourBase:
		return 389
	case scene.SixteenBase:
		return h.Base4Stop + 14
	}
	return 0
}

// HCTOffset returns the sector of the Huffman code table for s.
func (h *Header) HCTOffset(s int) int {
	switch s {
	case scene.FourBase:
		return 388
	case scene.SixteenBase:
		return h.Base4Stop + 12
	}
	return 0
}

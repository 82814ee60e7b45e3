package photocd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrjoshuak/go-photocd/internal/imagepack"
)

// MetadataKey indexes the image pack metadata dictionary.
type MetadataKey int

const (
	MetaSpecificationVersion MetadataKey = iota
	MetaAuthoringSoftwareRelease
	MetaImageScanningTime
	MetaImageModificationTime
	MetaImageMedium
	MetaProductType
	MetaScannerVendorIdentity
	MetaScannerProductIdentity
	MetaScannerFirmwareRevision
	MetaScannerFirmwareDate
	MetaScannerSerialNumber
	MetaScannerPixelSize
	MetaPIWEquipmentManufacturer
	MetaPhotoFinisherName
	MetaSBARevision
	MetaSBACommand
	MetaSBAFilm
	MetaCopyrightStatus
	MetaCopyrightFile
	MetaCompressionClass
	numMetadataKeys
)

var metadataDescriptions = [numMetadataKeys]string{
	"PCD specification version",
	"Authoring software Release number",
	"Scanning time",
	"Last modification time",
	"Image medium",
	"Product type",
	"Scanner vendor identity",
	"Scanner product identity",
	"Scanner firmware revision",
	"Scanner firmware date",
	"Scanner serial number",
	"Scanner pixel size (microns)",
	"Image workstation equipment manufacturer",
	"Photo finisher name",
	"Scene balance algorithm revision",
	"Scene balance algorithm command",
	"Scene balance algorithm film identification",
	"Copyright status",
	"Copyright file name",
	"Compression",
}

// Metadata returns the description and rendered value for one
// metadata dictionary entry. Unknown or absent fields render as "-";
// an out-of-range key, or a decoder with no parsed file, renders as
// "Error".
func (d *Decoder) Metadata(key MetadataKey) (description, value string) {
	if key < 0 || key >= numMetadataKeys || d.header == nil {
		return "Error", "Error"
	}
	return metadataDescriptions[key], d.metadataValue(key)
}

func (d *Decoder) metadataValue(key MetadataKey) string {
	h := d.header
	switch key {
	case MetaSpecificationVersion:
		return versionString(h.SpecVersion)
	case MetaAuthoringSoftwareRelease:
		return versionString(h.AuthoringRelease)
	case MetaImageScanningTime:
		return timeString(h.ScanningTime)
	case MetaImageModificationTime:
		return timeString(h.ModificationTime)
	case MetaImageMedium:
		if s := imagepack.MediumType(h.Medium); s != "" {
			return s
		}
	case MetaProductType:
		return trimPadding(h.ProductType)
	case MetaScannerVendorIdentity:
		return trimPadding(h.ScannerVendor)
	case MetaScannerProductIdentity:
		return trimPadding(h.ScannerProduct)
	case MetaScannerFirmwareRevision:
		return trimPadding(h.ScannerFirmwareRev)
	case MetaScannerFirmwareDate:
		return trimPadding(h.ScannerFirmwareDate)
	case MetaScannerSerialNumber:
		return trimPadding(h.ScannerSerial)
	case MetaScannerPixelSize:
		// BCD coded, integer microns then the fraction.
		p := h.ScannerPixelSize
		return fmt.Sprintf("%d%d.%d%d", (p[0]>>4)&0xf, p[0]&0xf, (p[1]>>4)&0xf, p[1]&0xf)
	case MetaPIWEquipmentManufacturer:
		return trimPadding(h.PIWManufacturer)
	case MetaPhotoFinisherName:
		// Exotic character sets have no realistic chance of
		// rendering; suppress them.
		if h.FinisherCharSet < 5 {
			return trimPadding(h.FinisherName)
		}
	case MetaSBARevision:
		if h.HasSBA {
			return versionString(h.SBARevision)
		}
	case MetaSBACommand:
		if h.HasSBA {
			if s := imagepack.SBACommand(h.SBACommand); s != "" {
				return s
			}
		}
	case MetaSBAFilm:
		if h.HasSBA {
			if ft := imagepack.LookupFilmTerm(int(h.FTN)); ft != nil {
				return ft.Name
			}
			return "Unknown film"
		}
	case MetaCopyrightStatus:
		if h.CopyrightStatus == 0x1 {
			return "Copyright restrictions apply - see copyright file on original CD-ROM for details"
		}
		return "Copyright restrictions not specified"
	case MetaCopyrightFile:
		if h.CopyrightStatus == 0x1 {
			return trimPadding(h.CopyrightFile)
		}
	case MetaCompressionClass:
		if s := imagepack.HuffmanClass(h.HuffmanClass); s != "" {
			return s
		}
	}
	return "-"
}

// versionString renders a binary coded major.minor pair; an all-ones
// field means the value was never written.
func versionString(v [2]byte) string {
	if v[0] == 0xff && v[1] == 0xff {
		return "-"
	}
	return fmt.Sprintf("%d.%d", v[0], v[1])
}

// timeString renders seconds since 1970-01-01 UTC as local civil time.
func timeString(t uint32) string {
	if t == 0xffffffff {
		return "-"
	}
	return time.Unix(int64(t), 0).Format("Mon Jan _2 15:04:05 2006")
}

// trimPadding strips the trailing blank padding of an ISO 646 field.
func trimPadding(s string) string {
	return strings.TrimRight(s, " \x00")
}

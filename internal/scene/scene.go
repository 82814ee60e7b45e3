// Package scene holds the fixed Photo CD scene geometry.
//
// A Photo CD image pack stores six resolutions of the same scene. Luma
// doubles in each axis per level. Chroma is stored at half the luma
// resolution in each axis, except at 16Base and 64Base where the disc
// carries chroma at one quarter of the luma resolution per axis.
package scene

// Scene levels, ordered smallest to largest.
const (
	Base16 = iota // 192 x 128
	Base4         // 384 x 256
	Base          // 768 x 512
	FourBase      // 1536 x 1024
	SixteenBase   // 3072 x 2048
	SixtyFourBase // 6144 x 4096
	NumScenes
)

// SectorSize is the fixed on-disc sector size.
const SectorSize = 0x800

var lumaWidth = [NumScenes]int{192, 192 << 1, 192 << 2, 192 << 3, 192 << 4, 192 << 5}
var lumaHeight = [NumScenes]int{128, 128 << 1, 128 << 2, 128 << 3, 128 << 4, 128 << 5}

// Chroma stays at 4Base resolution for the two largest scenes.
var chromaWidth = [NumScenes]int{96, 96 << 1, 96 << 2, 96 << 2, 96 << 4, 96 << 5}
var chromaHeight = [NumScenes]int{64, 64 << 1, 64 << 2, 64 << 2, 64 << 4, 64 << 5}

// LumaWidth returns the luma plane width for scene s.
func LumaWidth(s int) int { return lumaWidth[s] }

// LumaHeight returns the luma plane height for scene s.
func LumaHeight(s int) int { return lumaHeight[s] }

// ChromaWidth returns the on-disc chroma plane width for scene s.
func ChromaWidth(s int) int { return chromaWidth[s] }

// ChromaHeight returns the on-disc chroma plane height for scene s.
func ChromaHeight(s int) int { return chromaHeight[s] }

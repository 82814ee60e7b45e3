// Package upres doubles the resolution of image planes.
//
// Layered reconstruction works by up-resolving the previous layer's
// plane by two in each axis and adding the layer's Huffman-decoded
// residuals. The bilinear kernel is the one Kodak specified for Photo
// CD; a nearest-neighbour variant exists for comparison and should not
// be used for real output.
package upres

import "github.com/mrjoshuak/go-photocd/internal/band"

// Interpolate up-resolves base into dest with the standard bilinear
// kernel. dest has dimensions width x height; base has half of each.
//
// When hasDeltas is true, dest initially holds the layer's signed
// residual plane; each interpolated value adds the residual at its own
// index before being clamped to [0,255] and written back. The (1,1)
// output pixel averages all four neighbours; averaging only the
// diagonal pair produces visible chequerboard artefacts.
func Interpolate(base, dest []byte, width, height, workers int, hasDeltas bool) {
	srcW := width >> 1
	srcH := height >> 1
	band.Run(srcH, workers, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			rowPlus := row + 1
			if rowPlus > srcH-1 {
				rowPlus = srcH - 1
			}
			for col := 0; col < srcW; col++ {
				colPlus := col + 1
				if colPlus > srcW-1 {
					colPlus = srcW - 1
				}
				p00 := int(base[col+row*srcW])
				p01 := int(base[colPlus+row*srcW])
				p10 := int(base[col+rowPlus*srcW])
				p11 := int(base[colPlus+rowPlus*srcW])

				put(dest, (col<<1)+(row<<1)*width, p00, hasDeltas)
				put(dest, (col<<1)+1+(row<<1)*width, (p00+p01+1)>>1, hasDeltas)
				put(dest, (col<<1)+((row<<1)+1)*width, (p00+p10+1)>>1, hasDeltas)
				put(dest, (col<<1)+1+((row<<1)+1)*width, (p00+p01+p10+p11+2)>>2, hasDeltas)
			}
		}
	})
}

// put writes one interpolated sample, adding the signed residual
// already stored at the destination index when the plane carries
// deltas.
func put(dest []byte, idx, sum int, hasDeltas bool) {
	if hasDeltas {
		sum += int(int8(dest[idx]))
	}
	if sum < 0 {
		sum = 0
	} else if sum > 255 {
		sum = 255
	}
	dest[idx] = uint8(sum)
}

// Nearest up-resolves base into dest by pixel doubling. Kept for
// correctness comparison against the bilinear kernel.
func Nearest(base, dest []byte, width, height int, hasDeltas bool) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			idx := col + row*width
			sum := int(base[(col>>1)+(row>>1)*(width>>1)])
			if hasDeltas {
				sum += int(int8(dest[idx]))
				if sum < 0 {
					sum = 0
				} else if sum > 255 {
					sum = 255
				}
			}
			dest[idx] = uint8(sum)
		}
	}
}

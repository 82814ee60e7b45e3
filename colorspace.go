// The micro CMM.
//
// A full colour management module is deliberately not involved: the
// only conversions a Photo CD decoder needs are PhotoYCC to PCD RGB,
// to CCIR 709 linear light, and to sRGB, with an optional D65 to D50
// chromatic adaptation. Those are implemented here as integer
// arithmetic over a handful of lookup tables, sized so intermediate
// products fit 32 bits and every table index stays within 0..1388.

package photocd

import (
	"github.com/mrjoshuak/go-photocd/internal/band"
	"github.com/mrjoshuak/go-photocd/internal/upres"
)

// PopulateUint8Buffers fills the supplied buffers with 8-bit RGB data,
// rotated to the upright orientation. alpha may be nil; when present
// it is set to 0xFF. stride is the element increment between pixels,
// allowing planar (stride 1) or interleaved buffers.
//
// ParseFile must have succeeded and PostParse must have run.
func (d *Decoder) PopulateUint8Buffers(red, green, blue, alpha []uint8, stride int) {
	d.populate(&convertJob{depth: depth8, r8: red, g8: green, b8: blue, a8: alpha, stride: stride})
}

// PopulateUint16Buffers fills the supplied buffers with 16-bit RGB
// data; alpha, when present, is set to 0xFFFF.
func (d *Decoder) PopulateUint16Buffers(red, green, blue, alpha []uint16, stride int) {
	d.populate(&convertJob{depth: depth16, r16: red, g16: green, b16: blue, a16: alpha, stride: stride})
}

// PopulateFloatBuffers fills the supplied buffers with RGB data in
// [0,1]; alpha, when present, is set to 1.0.
func (d *Decoder) PopulateFloatBuffers(red, green, blue, alpha []float32, stride int) {
	d.populate(&convertJob{depth: depthFloat, rf: red, gf: green, bf: blue, af: alpha, stride: stride})
}

type outputDepth int

const (
	depth8 outputDepth = iota
	depth16
	depthFloat
)

// convertJob carries one populate call's buffers. Only the slices of
// the selected depth are set.
type convertJob struct {
	depth  outputDepth
	stride int

	r8, g8, b8, a8     []uint8
	r16, g16, b16, a16 []uint16
	rf, gf, bf, af     []float32
}

// write delivers one pixel through the output format tables.
func (j *convertJob) write(idx int, ri, gi, bi int32) {
	switch j.depth {
	case depth8:
		j.r8[idx] = uint8Output[ri]
		j.g8[idx] = uint8Output[gi]
		j.b8[idx] = uint8Output[bi]
		if j.a8 != nil {
			j.a8[idx] = 0xff
		}
	case depth16:
		j.r16[idx] = uint16Output[ri]
		j.g16[idx] = uint16Output[gi]
		j.b16[idx] = uint16Output[bi]
		if j.a16 != nil {
			j.a16[idx] = 0xffff
		}
	default:
		j.rf[idx] = floatOutput[ri]
		j.gf[idx] = floatOutput[gi]
		j.bf[idx] = floatOutput[bi]
		if j.af != nil {
			j.af[idx] = 1.0
		}
	}
}

// pin clamps a pixel index into the table range.
func pin(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 1388 {
		return 1388
	}
	return v
}

// populate interpolates any remaining chroma subsampling away and runs
// the colour conversion over horizontal bands.
func (d *Decoder) populate(job *convertJob) {
	if d.header == nil || d.luma == nil {
		return
	}
	lp, c1p, c2p := d.luma, d.chroma1, d.chroma2

	// resFactor is the luma to chroma index shift: 1 while chroma is
	// at half resolution, 2 at quarter (16Base and 64Base store
	// chroma at 4Base resolution), 0 once interpolated.
	resFactor := 0
	for d.chromaW != 0 && d.lumaW>>uint(resFactor) > d.chromaW {
		resFactor++
	}

	if d.monochrome {
		c1p, c2p = nil, nil
	} else if d.interp >= InterpBilinear && resFactor > 0 {
		c1p, c2p = d.interpolateChroma(resFactor)
		resFactor = 0
	}

	band.Run(d.lumaH, d.workers, func(lo, hi int) {
		d.convertBand(job, lp, c1p, c2p, resFactor, lo, hi)
	})
}

// interpolateChroma up-resolves both chroma planes to luma resolution,
// twice over when they are stored at quarter resolution. Chroma
// residuals were already applied during PostParse, so no deltas are
// added here.
func (d *Decoder) interpolateChroma(resFactor int) (c1, c2 []byte) {
	w, h := d.lumaW, d.lumaH
	c1 = make([]byte, w*h)
	c2 = make([]byte, w*h)
	src1, src2 := d.chroma1, d.chroma2
	if resFactor == 2 {
		mid1 := make([]byte, (w>>1)*(h>>1))
		mid2 := make([]byte, (w>>1)*(h>>1))
		upres.Interpolate(src1, mid1, w>>1, h>>1, d.workers, false)
		upres.Interpolate(src2, mid2, w>>1, h>>1, d.workers, false)
		src1, src2 = mid1, mid2
	}
	upres.Interpolate(src1, c1, w, h, d.workers, false)
	upres.Interpolate(src2, c2, w, h, d.workers, false)
	return c1, c2
}

// convertBand converts rows [lo,hi) of the YCC planes to RGB. A nil
// chroma plane contributes zero, which is how monochrome keeps its
// three output components consistent.
func (d *Decoder) convertBand(job *convertJob, lp, c1p, c2p []byte, resFactor, lo, hi int) {
	columns := d.lumaW
	rows := d.lumaH
	rotate := d.header.Rotation
	cs := d.colorSpace
	shift := uint(resFactor)

	for row := lo; row < hi; row++ {
		for col := 0; col < columns; col++ {
			var destIndex int
			switch rotate {
			case 1:
				destIndex = row + (columns-1-col)*rows
			case 2:
				destIndex = columns - 1 - col + (rows-1-row)*columns
			case 3:
				destIndex = rows - 1 - row + col*rows
			default:
				destIndex = col + row*columns
			}
			destIndex *= job.stride

			lumaIndex := col + row*columns
			chromaIndex := (col >> shift) + (row>>shift)*(columns>>shift)

			var ri, gi, bi int32
			if cs == ColorSpaceYCC {
				// The PhotoYCC components themselves, scaled
				// to the table range.
				ri = pin((int32(lp[lumaIndex]) << 10) / 188)
				if c1p != nil {
					gi = pin((int32(c1p[chromaIndex]) << 10) / 188)
					bi = pin((int32(c2p[chromaIndex]) << 10) / 188)
				} else {
					gi, bi = ri, ri
				}
			} else {
				li := int32(lp[lumaIndex]) * 5573 // 0 to 1,421,115
				var c1i, c2i int32
				if c1p != nil {
					c1i = (int32(c1p[chromaIndex]) - 156) * 9085 // -1,417,260 to 899,415
				}
				if c2p != nil {
					c2i = (int32(c2p[chromaIndex]) - 137) * 7461 // -1,022,157 to 880,398
				}
				ri = pin((li + c2i) >> 10)
				gi = pin((li >> 10) - c1i/5278 - c2i/2012)
				bi = pin((li + c1i) >> 10)

				if cs == ColorSpaceLinearCCIR709 || cs == ColorSpaceSRGB {
					ri = int32(toLinearLight[ri])
					gi = int32(toLinearLight[gi])
					bi = int32(toLinearLight[bi])
					// White balance applies only to the
					// processed spaces, never raw.
					if d.whiteBalance == WhiteD50 {
						rt, gt, bt := ri, gi, bi
						ri = (5930*rt - 143*gt + 393*bt) >> 13
						gi = (-176*rt + 6268*gt + 131*bt) >> 13
						bi = (76*rt - 128*gt + 8256*bt) >> 13
					}
				}
				if cs == ColorSpaceSRGB {
					ri = int32(ccir709ToSRGB[pin(ri)])
					gi = int32(ccir709ToSRGB[pin(gi)])
					bi = int32(ccir709ToSRGB[pin(bi)])
				} else {
					ri, gi, bi = pin(ri), pin(gi), pin(bi)
				}
			}
			job.write(destIndex, ri, gi, bi)
		}
	}
}

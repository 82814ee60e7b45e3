package photocd

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/go-photocd/internal/imagepack"
)

// testDecoder fabricates an assembled decoder over small planes so the
// colour pipeline can be driven directly.
func testDecoder(w, h int, y, c1, c2 byte) *Decoder {
	d := NewDecoder()
	d.header = &imagepack.Header{}
	d.lumaW, d.lumaH = w, h
	d.chromaW, d.chromaH = w/2, h/2
	d.luma = bytes.Repeat([]byte{y}, w*h)
	d.chroma1 = bytes.Repeat([]byte{c1}, (w/2)*(h/2))
	d.chroma2 = bytes.Repeat([]byte{c2}, (w/2)*(h/2))
	d.sceneNum = 0
	d.workers = 1
	return d
}

func populate8(d *Decoder) (r, g, b []uint8) {
	n := d.lumaW * d.lumaH
	r = make([]uint8, n)
	g = make([]uint8, n)
	b = make([]uint8, n)
	d.PopulateUint8Buffers(r, g, b, nil, 1)
	return r, g, b
}

func TestPopulate_RawPCDNeutralChroma(t *testing.T) {
	// Neutral chroma (156, 137) contributes nothing, so all three
	// channels carry the luma alone.
	d := testDecoder(8, 8, 120, 156, 137)
	r, g, b := populate8(d)

	want := uint8Output[pin((120*5573)>>10)]
	for i := range r {
		if r[i] != want || g[i] != want || b[i] != want {
			t.Fatalf("pixel %d = (%d, %d, %d), want all %d", i, r[i], g[i], b[i], want)
		}
	}
}

func TestPopulate_RawPCDChroma(t *testing.T) {
	d := testDecoder(8, 8, 120, 200, 100)
	r, g, b := populate8(d)

	li := int32(120) * 5573
	c1i := int32(200-156) * 9085
	c2i := int32(100-137) * 7461
	wantR := uint8Output[pin((li+c2i)>>10)]
	wantG := uint8Output[pin((li>>10)-c1i/5278-c2i/2012)]
	wantB := uint8Output[pin((li+c1i)>>10)]
	if r[0] != wantR || g[0] != wantG || b[0] != wantB {
		t.Errorf("pixel = (%d, %d, %d), want (%d, %d, %d)", r[0], g[0], b[0], wantR, wantG, wantB)
	}
}

func TestPopulate_SRGBAppliesBothCurves(t *testing.T) {
	d := testDecoder(8, 8, 120, 156, 137)
	d.SetColorSpace(ColorSpaceSRGB)
	r, _, _ := populate8(d)

	idx := pin((120 * 5573) >> 10)
	want := uint8Output[ccir709ToSRGB[toLinearLight[idx]]]
	if r[0] != want {
		t.Errorf("sRGB pixel = %d, want %d", r[0], want)
	}
}

func TestPopulate_LinearCCIR709(t *testing.T) {
	d := testDecoder(8, 8, 200, 156, 137)
	d.SetColorSpace(ColorSpaceLinearCCIR709)
	r, _, _ := populate8(d)

	idx := pin((200 * 5573) >> 10)
	want := uint8Output[toLinearLight[idx]]
	if r[0] != want {
		t.Errorf("linear pixel = %d, want %d", r[0], want)
	}
}

func TestPopulate_D50Adaptation(t *testing.T) {
	d := testDecoder(8, 8, 180, 156, 137)
	d.SetColorSpace(ColorSpaceSRGB)
	d.SetWhiteBalance(WhiteD50)
	r, g, b := populate8(d)

	v := int32(toLinearLight[pin((180*5573)>>10)])
	ri := pin((5930*v - 143*v + 393*v) >> 13)
	gi := pin((-176*v + 6268*v + 131*v) >> 13)
	bi := pin((76*v - 128*v + 8256*v) >> 13)
	wantR := uint8Output[ccir709ToSRGB[ri]]
	wantG := uint8Output[ccir709ToSRGB[gi]]
	wantB := uint8Output[ccir709ToSRGB[bi]]
	if r[0] != wantR || g[0] != wantG || b[0] != wantB {
		t.Errorf("D50 pixel = (%d, %d, %d), want (%d, %d, %d)", r[0], g[0], b[0], wantR, wantG, wantB)
	}
}

func TestPopulate_YCCReturnsComponents(t *testing.T) {
	d := testDecoder(8, 8, 94, 94, 94)
	d.SetColorSpace(ColorSpaceYCC)
	r, g, b := populate8(d)

	want := uint8Output[pin((int32(94)<<10)/188)]
	if r[0] != want || g[0] != want || b[0] != want {
		t.Errorf("YCC pixel = (%d, %d, %d), want all %d", r[0], g[0], b[0], want)
	}
}

func TestPopulate_YCCLinearInLuma(t *testing.T) {
	// Raw YCC is linear in Y up to rounding: doubling Y doubles the
	// table index to within one while unclamped.
	for _, y := range []byte{10, 20, 40, 80} {
		d := testDecoder(8, 8, y, 156, 137)
		d.SetColorSpace(ColorSpaceYCC)
		idx := pin((int32(y) << 10) / 188)
		idx2 := pin((int32(2*y) << 10) / 188)
		if idx2 != 2*idx && idx2 != 2*idx+1 {
			t.Errorf("Y=%d: index %d -> %d, want doubling", y, idx, idx2)
		}
		r, _, _ := populate8(d)
		if r[0] != uint8Output[idx] {
			t.Errorf("Y=%d: pixel %d, want %d", y, r[0], uint8Output[idx])
		}
	}
}

func TestPopulate_Monochrome(t *testing.T) {
	d := testDecoder(8, 8, 150, 200, 90)
	d.SetMonochrome(true)
	r, g, b := populate8(d)
	want := uint8Output[pin((150*5573)>>10)]
	for i := range r {
		if r[i] != want || g[i] != want || b[i] != want {
			t.Fatalf("monochrome pixel %d = (%d, %d, %d), want all %d", i, r[i], g[i], b[i], want)
		}
	}
}

func TestPopulate_Rotation(t *testing.T) {
	w, h := 8, 4
	d := testDecoder(w, h, 0, 156, 137)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.luma[y*w+x] = byte(16*x + y)
		}
	}
	d.SetColorSpace(ColorSpaceYCC)
	r0 := make([]uint8, w*h)
	d.PopulateUint8Buffers(r0, make([]uint8, w*h), make([]uint8, w*h), nil, 1)

	d.header.Rotation = 1
	r1 := make([]uint8, w*h)
	d.PopulateUint8Buffers(r1, make([]uint8, w*h), make([]uint8, w*h), nil, 1)

	// Rotating the upright output 90 CCW must reproduce the
	// rotation-1 output: (col, row) lands at (row, W-1-col) in a
	// H-wide frame.
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if got, want := r1[(w-1-col)*h+row], r0[row*w+col]; got != want {
				t.Fatalf("rotated (%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestPopulate_InterleavedStrideAndAlpha(t *testing.T) {
	w, h := 4, 4
	d := testDecoder(w, h, 120, 156, 137)
	pix := make([]uint8, 4*w*h)
	d.PopulateUint8Buffers(pix[0:], pix[1:], pix[2:], pix[3:], 4)

	want := uint8Output[pin((120*5573)>>10)]
	for i := 0; i < w*h; i++ {
		if pix[4*i] != want || pix[4*i+1] != want || pix[4*i+2] != want {
			t.Fatalf("pixel %d rgb = (%d, %d, %d), want %d", i, pix[4*i], pix[4*i+1], pix[4*i+2], want)
		}
		if pix[4*i+3] != 0xff {
			t.Fatalf("pixel %d alpha = %d, want 255", i, pix[4*i+3])
		}
	}
}

func TestPopulate_Uint16AndFloat(t *testing.T) {
	d := testDecoder(4, 4, 255, 156, 137)
	n := 16

	r16 := make([]uint16, n)
	d.PopulateUint16Buffers(r16, make([]uint16, n), make([]uint16, n), nil, 1)
	if want := uint16Output[pin((255*5573)>>10)]; r16[0] != want {
		t.Errorf("uint16 pixel = %d, want %d", r16[0], want)
	}

	rf := make([]float32, n)
	af := make([]float32, n)
	d.PopulateFloatBuffers(rf, make([]float32, n), make([]float32, n), af, 1)
	for i := range rf {
		if rf[i] < 0 || rf[i] > 1 {
			t.Fatalf("float pixel %d = %f outside [0,1]", i, rf[i])
		}
		if af[i] != 1.0 {
			t.Fatalf("float alpha %d = %f, want 1", i, af[i])
		}
	}
}

func TestPopulate_WorkerInvariance(t *testing.T) {
	w, h := 32, 16
	build := func(workers int) []uint8 {
		d := testDecoder(w, h, 0, 156, 137)
		for i := range d.luma {
			d.luma[i] = byte(i * 13)
		}
		d.SetColorSpace(ColorSpaceSRGB)
		d.SetWorkers(workers)
		r, _, _ := populate8(d)
		return r
	}
	sequential := build(1)
	for _, workers := range []int{2, 5, 8} {
		if !bytes.Equal(sequential, build(workers)) {
			t.Errorf("workers=%d output differs from sequential", workers)
		}
	}
}

func TestLUTs(t *testing.T) {
	if uint8Output[0] != 0 || uint8Output[1388] != 255 {
		t.Errorf("uint8Output endpoints = %d, %d", uint8Output[0], uint8Output[1388])
	}
	if uint16Output[0] != 0 || uint16Output[1388] != 65535 {
		t.Errorf("uint16Output endpoints = %d, %d", uint16Output[0], uint16Output[1388])
	}
	if floatOutput[0] != 0 || floatOutput[1388] != 1.0 {
		t.Errorf("floatOutput endpoints = %f, %f", floatOutput[0], floatOutput[1388])
	}
	for i := 1; i < lutSize; i++ {
		if toLinearLight[i] < toLinearLight[i-1] {
			t.Fatalf("toLinearLight not monotone at %d", i)
		}
		if ccir709ToSRGB[i] < ccir709ToSRGB[i-1] {
			t.Fatalf("ccir709ToSRGB not monotone at %d", i)
		}
		if uint8Output[i] < uint8Output[i-1] {
			t.Fatalf("uint8Output not monotone at %d", i)
		}
	}
	if max := toLinearLight[1388]; max > 1388 {
		t.Errorf("toLinearLight range exceeds table size: %d", max)
	}
}

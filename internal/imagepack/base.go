package imagepack

import (
	"io"

	"github.com/mrjoshuak/go-photocd/internal/scene"
)

// ReadBaseImage reads the uncompressed image component data for the
// requested scene, or the largest smaller one that can be read in full.
// The data interleaves two luma rows, one chroma1 row and one chroma2
// row per iteration. On a short read the partial planes are discarded
// and the next scene down is tried; ErrNoBaseImage is returned when
// even Base/16 cannot be read.
func ReadBaseImage(r io.ReadSeeker, h *Header, sceneNum int) (got int, luma, chroma1, chroma2 []byte, err error) {
	if sceneNum > scene.Base {
		sceneNum = scene.Base
	}
	for ; sceneNum >= scene.Base16; sceneNum-- {
		lw := scene.LumaWidth(sceneNum)
		cw := scene.ChromaWidth(sceneNum)
		ch := scene.ChromaHeight(sceneNum)
		luma = make([]byte, lw*scene.LumaHeight(sceneNum))
		chroma1 = make([]byte, cw*ch)
		chroma2 = make([]byte, cw*ch)

		if _, err = r.Seek(int64(scene.SectorSize)*int64(h.ICDOffset(sceneNum)), io.SeekStart); err != nil {
			continue
		}
		ok := true
		for y := 0; y < ch && ok; y++ {
			ok = readRow(r, luma[y*2*lw:(y*2+1)*lw]) &&
				readRow(r, luma[(y*2+1)*lw:(y*2+2)*lw]) &&
				readRow(r, chroma1[y*cw:(y+1)*cw]) &&
				readRow(r, chroma2[y*cw:(y+1)*cw])
		}
		if ok {
			return sceneNum, luma, chroma1, chroma2, nil
		}
	}
	return -1, nil, nil, nil, ErrNoBaseImage
}

func readRow(r io.Reader, dst []byte) bool {
	_, err := io.ReadFull(r, dst)
	return err == nil
}

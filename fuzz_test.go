package photocd

import (
	"os"
	"path/filepath"
	"testing"
)

// FuzzParseFile checks that arbitrary file contents never panic the
// decoder. Run with: go test -fuzz=FuzzParseFile -fuzztime=60s
func FuzzParseFile(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("PCD_OPA"))
	f.Add([]byte("PCD_IPI"))
	f.Add((&pcdBuilder{}).build())
	f.Add((&pcdBuilder{maxResCode: 1, with4Base: true}).build()[:300*2048])

	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		path := filepath.Join(dir, "FUZZ.PCD")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Skip()
		}
		d := NewDecoder()
		// Any error is acceptable; a panic is not.
		if err := d.ParseFile(path, filepath.Join(dir, "64BASE", "INFO.IC"), Scene64Base); err == nil {
			d.PostParse()
		}
	})
}

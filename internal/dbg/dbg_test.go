package dbg

import (
	"bytes"
	"testing"

	"github.com/arl/go-terra/rtin"
)

func TestDumpErrorMap(t *testing.T) {
	w := int32(8)
	samples := make([]uint16, w*w)
	for y := int32(0); y < w; y++ {
		for x := int32(0); x < w; x++ {
			samples[y*w+x] = uint16((x*x + y*y) * 100)
		}
	}
	hm, err := rtin.NewHeightmap(w, samples)
	if err != nil {
		t.Fatal(err)
	}
	em := rtin.BuildErrorMap(hm, nil)

	var buf bytes.Buffer
	DumpErrorMap(&buf, em, hm)

	if buf.Len() == 0 {
		t.Fatal("DumpErrorMap produced no output")
	}
}

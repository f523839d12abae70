package tone

import (
	"testing"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

func TestExtendDynamicRangeMapsEndpoints(t *testing.T) {
	b := raster.NewBand(4, 1)
	copy(b.Pix, []uint8{50, 100, 150, 200})
	img, _ := raster.FromBands(b)

	outcomes := ExtendDynamicRange(img)

	if len(outcomes) != 1 || outcomes[0].Uniform || outcomes[0].Min != 50 || outcomes[0].Max != 200 {
		t.Fatalf("outcomes = %+v", outcomes)
	}
	// (v-50)*255/150 truncated
	want := []uint8{0, 85, 170, 255}
	for i, w := range want {
		if got := img.Bands[0].Pix[i]; got != w {
			t.Errorf("Pix[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestExtendDynamicRangeUniformBandUnchanged(t *testing.T) {
	flat := raster.NewBand(3, 3)
	flat.Fill(42)
	ramp := raster.NewBand(3, 3)
	for i := range ramp.Pix {
		ramp.Pix[i] = uint8(10 + i)
	}
	img, _ := raster.FromBands(flat, ramp)

	for name, fn := range map[string]func(*raster.Image) []Outcome{
		"direct": ExtendDynamicRange,
		"lut":    ExtendDynamicRangeLUT,
	} {
		t.Run(name, func(t *testing.T) {
			work := img.Clone()
			outcomes := fn(work)
			if !outcomes[0].Uniform || outcomes[1].Uniform {
				t.Fatalf("outcomes = %+v, want band 0 uniform only", outcomes)
			}
			for i, v := range work.Bands[0].Pix {
				if v != 42 {
					t.Errorf("uniform band Pix[%d] = %d, want 42", i, v)
				}
			}
			if lo, hi := work.Bands[1].MinMax(); lo != 0 || hi != 255 {
				t.Errorf("stretched band range = [%d,%d], want [0,255]", lo, hi)
			}
		})
	}
}

func TestExtendDynamicRangeDirectMatchesLUT(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		direct := raster.PerlinRGB(40, 30, 6, seed)
		viaLUT := direct.Clone()

		ExtendDynamicRange(direct)
		ExtendDynamicRangeLUT(viaLUT)

		for b := range direct.Bands {
			for i, v := range direct.Bands[b].Pix {
				if got := viaLUT.Bands[b].Pix[i]; got != v {
					t.Fatalf("seed %d band %d Pix[%d]: lut %d != direct %d", seed, b, i, got, v)
				}
			}
		}
	}
}

func TestStretchLUT(t *testing.T) {
	lut := StretchLUT(10, 20)
	if lut[0] != 0 || lut[10] != 0 || lut[20] != 255 || lut[255] != 255 {
		t.Errorf("clamping: lut[0]=%d lut[10]=%d lut[20]=%d lut[255]=%d", lut[0], lut[10], lut[20], lut[255])
	}
	if lut[15] != 127 {
		t.Errorf("lut[15] = %d, want 127", lut[15])
	}

	id := StretchLUT(5, 5)
	if id != Identity() {
		t.Error("degenerate range should give the identity table")
	}
}

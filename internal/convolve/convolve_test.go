package convolve

import (
	"errors"
	"math"
	"testing"

	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// rampBand returns a 5x5 band with value x + 5*y.
func rampBand() *raster.Band {
	b := raster.NewBand(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b.Set(x, y, uint8(x+5*y))
		}
	}
	return b
}

func isBorder(x, y, w, h, mx, my int) bool {
	return x < mx || y < my || x >= w-mx || y >= h-my
}

func TestConvolveWideHandComputed(t *testing.T) {
	in := rampBand()
	k := kernel.MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	out := raster.NewWideBand(5, 5)
	for i := range out.Pix {
		out.Pix[i] = -7 // sentinel for untouched borders
	}
	if err := ConvolveWide(in, out, k); err != nil {
		t.Fatalf("ConvolveWide: %v", err)
	}

	// For v = x + 5y the weighted sum reduces to 45*(x+5y) + 96.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			got := out.At(x, y)
			if isBorder(x, y, 5, 5, 1, 1) {
				if got != -7 {
					t.Errorf("border (%d,%d) = %d, want untouched -7", x, y, got)
				}
				continue
			}
			want := int16(45*(x+5*y) + 96)
			if got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if out.At(1, 1) != 366 || out.At(2, 2) != 636 || out.At(3, 3) != 906 {
		t.Errorf("spot check = %d %d %d, want 366 636 906", out.At(1, 1), out.At(2, 2), out.At(3, 3))
	}
}

func TestConvolveClamps(t *testing.T) {
	in := rampBand()

	tests := []struct {
		name   string
		kernel kernel.Kernel
		want   func(x, y int) uint8
	}{
		{
			name:   "positive overflow clamps to 255",
			kernel: kernel.MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
			want:   func(x, y int) uint8 { return 255 },
		},
		{
			name:   "negative clamps to 0",
			kernel: kernel.MustNew([][]int{{0, 0, 0}, {1, 0, -1}, {0, 0, 0}}),
			want:   func(x, y int) uint8 { return 0 },
		},
		{
			name:   "vertical difference in range",
			kernel: kernel.MustNew([][]int{{0, -1, 0}, {0, 1, 0}, {0, 0, 0}}),
			want:   func(x, y int) uint8 { return 5 },
		},
		{
			name:   "identity",
			kernel: kernel.MustNew([][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}),
			want:   func(x, y int) uint8 { return uint8(x + 5*y) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := raster.NewBand(5, 5)
			out.Fill(200)
			if err := Convolve(in, out, tt.kernel); err != nil {
				t.Fatalf("Convolve: %v", err)
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					want := tt.want(x, y)
					if isBorder(x, y, 5, 5, 1, 1) {
						want = 200
					}
					if got := out.At(x, y); got != want {
						t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestConvolveWideNegativeVerbatim(t *testing.T) {
	in := rampBand()
	out := raster.NewWideBand(5, 5)
	k := kernel.MustNew([][]int{{0, 0, 0}, {1, 0, -1}, {0, 0, 0}})
	if err := ConvolveWide(in, out, k); err != nil {
		t.Fatalf("ConvolveWide: %v", err)
	}
	if got := out.At(2, 2); got != -2 {
		t.Errorf("(2,2) = %d, want -2", got)
	}
}

func TestConvolveWideSaturates(t *testing.T) {
	in := raster.NewBand(3, 3)
	in.Fill(255)
	out := raster.NewWideBand(3, 3)

	big := kernel.MustNew([][]int{{200, 200, 200}, {200, 200, 200}, {200, 200, 200}})
	if err := ConvolveWide(in, out, big); err != nil {
		t.Fatalf("ConvolveWide: %v", err)
	}
	if got := out.At(1, 1); got != math.MaxInt16 {
		t.Errorf("saturated sum = %d, want %d", got, math.MaxInt16)
	}
}

func TestConvolveNonSquareKernelMargins(t *testing.T) {
	in := rampBand()
	out := raster.NewBand(5, 5)
	k := kernel.MustNew([][]int{{-1, 0, 1}}) // 1x3: y margin 0, x margin 1

	if err := Convolve(in, out, k); err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(2)
			if x == 0 || x == 4 {
				want = 0
			}
			if got := out.At(x, y); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestConvolveKernelLargerThanImage(t *testing.T) {
	in := raster.NewBand(2, 2)
	in.Fill(10)
	out := raster.NewBand(2, 2)
	out.Fill(3)
	k := kernel.MustNew([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})

	if err := Convolve(in, out, k); err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	for i, v := range out.Pix {
		if v != 3 {
			t.Errorf("Pix[%d] = %d, want untouched 3", i, v)
		}
	}
}

func TestConvolveRejectsBadBuffers(t *testing.T) {
	in := rampBand()
	k := kernel.MustNew([][]int{{1}})

	if err := Convolve(in, in, k); !errors.Is(err, raster.ErrAliased) {
		t.Errorf("aliased error = %v, want ErrAliased", err)
	}
	backing := make([]uint8, 26)
	shifted := &raster.Band{Width: 5, Height: 5, Pix: backing[1:26]}
	overlap := &raster.Band{Width: 5, Height: 5, Pix: backing[:25]}
	down := kernel.MustNew([][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})
	if err := Convolve(shifted, overlap, down); !errors.Is(err, raster.ErrAliased) {
		t.Errorf("offset overlap error = %v, want ErrAliased", err)
	}
	if err := Convolve(in, raster.NewBand(4, 5), k); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("shape error = %v, want ErrShapeMismatch", err)
	}
	if err := ConvolveWide(in, raster.NewWideBand(5, 4), k); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("wide shape error = %v, want ErrShapeMismatch", err)
	}
}

func TestConvolveImageKeepsBorders(t *testing.T) {
	img, _ := raster.FromBands(rampBand(), rampBand())
	k := kernel.MustNew([][]int{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}})

	out, err := ConvolveImage(img, k)
	if err != nil {
		t.Fatalf("ConvolveImage: %v", err)
	}
	for b := 0; b < 2; b++ {
		if got := out.Bands[b].At(0, 0); got != 0 {
			t.Errorf("band %d border (0,0) = %d, want input value 0", b, got)
		}
		if got := out.Bands[b].At(4, 4); got != 24 {
			t.Errorf("band %d border (4,4) = %d, want input value 24", b, got)
		}
		if got := out.Bands[b].At(2, 2); got != 24 {
			t.Errorf("band %d (2,2) = %d, want 24", b, got)
		}
	}

	wide, err := ConvolveImageWide(img, k)
	if err != nil {
		t.Fatalf("ConvolveImageWide: %v", err)
	}
	if len(wide) != 2 || wide[1].At(3, 3) != 36 || wide[1].At(0, 0) != 0 {
		t.Errorf("wide result unexpected: len=%d (3,3)=%d", len(wide), wide[1].At(3, 3))
	}
}

package kernel

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{name: "3x3", rows: [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{name: "1x3", rows: [][]int{{-1, 0, 1}}},
		{name: "3x1", rows: [][]int{{-1}, {0}, {1}}},
		{name: "empty", rows: nil, wantErr: ErrEmpty},
		{name: "empty row", rows: [][]int{{}}, wantErr: ErrEmpty},
		{name: "ragged", rows: [][]int{{1, 2, 3}, {4, 5}, {7, 8, 9}}, wantErr: ErrRagged},
		{name: "even rows", rows: [][]int{{1, 2, 3}, {4, 5, 6}}, wantErr: ErrEvenSize},
		{name: "even cols", rows: [][]int{{1, 2}}, wantErr: ErrEvenSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := New(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if k.Rows() != len(tt.rows) || k.Cols() != len(tt.rows[0]) {
				t.Errorf("shape = %dx%d, want %dx%d", k.Rows(), k.Cols(), len(tt.rows), len(tt.rows[0]))
			}
			for y := range tt.rows {
				for x := range tt.rows[y] {
					if k.At(y, x) != tt.rows[y][x] {
						t.Errorf("At(%d,%d) = %d, want %d", y, x, k.At(y, x), tt.rows[y][x])
					}
				}
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]int{{1, 2, 3}}
	k := MustNew(rows)
	rows[0][0] = 99
	if k.At(0, 0) != 1 {
		t.Errorf("kernel shares storage with input: At(0,0) = %d", k.At(0, 0))
	}
}

func TestMargins(t *testing.T) {
	k := MustNew([][]int{{1, 1, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 1, 1}})
	if k.MarginX() != 2 {
		t.Errorf("MarginX = %d, want 2", k.MarginX())
	}
	if k.MarginY() != 1 {
		t.Errorf("MarginY = %d, want 1", k.MarginY())
	}
	if k.Sum() != 15 {
		t.Errorf("Sum = %d, want 15", k.Sum())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    [][]int
		wantErr bool
	}{
		{input: "-1,0,1;-2,0,2;-1,0,1", want: [][]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}},
		{input: " -1 0 1 ; -2 0 2 ; -1 0 1 ", want: [][]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}},
		{input: "-1;0;1", want: [][]int{{-1}, {0}, {1}}},
		{input: "5", want: [][]int{{5}}},
		{input: "", wantErr: true},
		{input: "1,2,x", wantErr: true},
		{input: "1,2,3;;4,5,6", wantErr: true},
		{input: "1,2;3,4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, k)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !k.Equal(MustNew(tt.want)) {
				t.Errorf("Parse(%q) = %s, want %v", tt.input, k, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	k := MustNew([][]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}})
	if k.String() != "-1,-2,-1;0,0,0;1,2,1" {
		t.Errorf("String() = %q", k.String())
	}
	back, err := Parse(k.String())
	if err != nil {
		t.Fatalf("Parse(String()) error: %v", err)
	}
	if !back.Equal(k) {
		t.Errorf("round trip mismatch: %s vs %s", back, k)
	}
}

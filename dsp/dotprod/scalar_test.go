package dotprod

import "testing"

func TestDotConcreteScenario(t *testing.T) {
	// y = 1*(1+0i) + 2*(0+1i) + 3*(2+2i) = 7+8i
	h := []float32{1, 2, 3}
	x := []complex64{complex(1, 0), complex(0, 1), complex(2, 2)}

	want := complex64(complex(7, 8))
	if got := Dot(h, x); !closeCx(got, want) {
		t.Errorf("Dot = %v, want %v", got, want)
	}
	if got := Dot4(h, x); !closeCx(got, want) {
		t.Errorf("Dot4 = %v, want %v", got, want)
	}
}

func TestDot4MatchesDot(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 16, 17, 100, 127, 128, 129, 500} {
		t.Run(sizeStr(n), func(t *testing.T) {
			h := testCoeffs(n)
			x := testSamples(n)

			want := Dot(h, x)
			got := Dot4(h, x)
			if !closeCx(got, want) {
				t.Fatalf("Dot4 = %v, want %v", got, want)
			}
		})
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot(nil, nil); got != 0 {
		t.Errorf("Dot(nil, nil) = %v, want 0", got)
	}
	if got := Dot4(nil, nil); got != 0 {
		t.Errorf("Dot4(nil, nil) = %v, want 0", got)
	}
}

func TestDotMinimumLength(t *testing.T) {
	h := []float32{1, 2, 3, 4}
	x := []complex64{complex(1, 1), complex(2, 2)}

	want := complex64(complex(5, 5)) // 1*(1+i) + 2*(2+2i)
	if got := Dot(h, x); !closeCx(got, want) {
		t.Errorf("Dot = %v, want %v", got, want)
	}
	if got := Dot4(h, x); !closeCx(got, want) {
		t.Errorf("Dot4 = %v, want %v", got, want)
	}
}

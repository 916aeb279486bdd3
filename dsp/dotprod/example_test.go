package dotprod_test

import (
	"fmt"

	"github.com/cwbudde/algo-dotprod/dsp/dotprod"
)

func ExampleDotProduct_Execute() {
	d := dotprod.New([]float32{1, 2, 3})

	x := []complex64{complex(1, 0), complex(0, 1), complex(2, 2)}
	y := d.Execute(x)

	fmt.Printf("y = %.0f%+.0fi\n", real(y), imag(y))
	// Output:
	// y = 7+8i
}

func ExampleNewReversed() {
	// Reversed coefficient order suits convolution-style kernels that
	// consume their input back to front.
	fwd := dotprod.New([]float32{1, 2, 3})
	rev := dotprod.NewReversed([]float32{1, 2, 3})

	x := []complex64{complex(1, 0), complex(2, 0), complex(3, 0)}

	fmt.Printf("forward:  %.0f\n", real(fwd.Execute(x)))
	fmt.Printf("reversed: %.0f\n", real(rev.Execute(x)))
	// Output:
	// forward:  14
	// reversed: 10
}

func ExampleDotProduct_String() {
	d := dotprod.New([]float32{0.5, 0.25})

	fmt.Print(d)
	// Output:
	// dotprod [2 coefficients]
	//     0 :  0.500000000
	//     1 :  0.250000000
}

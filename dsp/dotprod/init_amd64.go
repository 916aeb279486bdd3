//go:build amd64 && !purego

package dotprod

import (
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/highway"  // register portable SIMD backend
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry" // initialize backend registry
)

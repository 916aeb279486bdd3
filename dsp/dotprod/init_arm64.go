//go:build arm64 && !purego

package dotprod

import (
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/generic"
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/highway"
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
)

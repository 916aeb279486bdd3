//go:build !amd64 && !arm64

package dotprod

import (
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/generic"
	_ "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
)

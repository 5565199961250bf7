package vec

import _ "embed"

// GPUArithSource is the canonical WGSL definition of the generic arithmetic
// helpers (dot_self, rcp, sqr, cross2), instantiated per concrete type with a
// type suffix since WGSL lacks user-defined overloading. Formulas match the
// Go method sets in this package exactly.
//
//go:embed assets/arith.wgsl
var GPUArithSource string

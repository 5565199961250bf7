package fragment

import _ "embed"

// GPUAAStepSource is the canonical WGSL definition of aa_step. It calls the
// dpdx/dpdy derivative builtins, so it is only valid in fragment-stage WGSL;
// the shader pre-processor refuses to inject it unless the derivatives
// feature is enabled.
//
//go:embed assets/aa_step.wgsl
var GPUAAStepSource string

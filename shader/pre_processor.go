// pre_processor.go implements the WGSL pre-processor for the shader math
// library. It scans shader source for @oxy:include annotations and replaces
// them with the embedded WGSL library chunks, enforcing two contracts:
//
//   - Inclusion is idempotent: a chunk is injected at most once per Process
//     call, however many times it is included (the include guard).
//   - The aa_step chunk is feature-gated: it is injected only when
//     FeatureDerivatives has been enabled on the pre-processor, because its
//     dpdx/dpdy calls are only valid in fragment-stage WGSL. Without the
//     feature the chunk is absent from the output, so a caller referencing
//     aa_step fails WGSL compilation with an undefined symbol.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-shadermath/fragment"
	"github.com/Carmen-Shannon/oxy-shadermath/limits"
	"github.com/Carmen-Shannon/oxy-shadermath/screen"
	"github.com/Carmen-Shannon/oxy-shadermath/vec"
)

// Feature is a compile-time capability toggle for gated library chunks.
type Feature string

const (
	// FeatureDerivatives marks the processed shader as fragment-stage code
	// with access to screen-space derivative builtins, enabling the aa_step
	// chunk.
	FeatureDerivatives Feature = "derivatives"
)

// registryEntry pairs an embedded WGSL chunk source with the feature, if any,
// that gates its injection.
type registryEntry struct {
	// Source is the raw WGSL chunk text injected by @oxy:include.
	Source string

	// Feature gates injection when non-empty.
	Feature Feature
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// registry maps chunk argument keys to their embedded WGSL sources.
	registry map[AnnotationArg]registryEntry

	// features holds the capabilities enabled via WithFeature.
	features map[Feature]bool

	// includes accumulates the chunks injected during a Process call, in
	// injection order. Reset at the start of each Process invocation.
	includes []AnnotationArg
}

// PreProcessor processes raw WGSL shader source containing @oxy: annotations,
// replacing include annotations with the embedded library chunk sources while
// enforcing idempotent inclusion and feature gating.
type PreProcessor interface {
	// Process takes raw WGSL shader source and replaces @oxy:include
	// annotations with the corresponding library chunk sources. A chunk is
	// injected at most once; repeated includes expand to nothing. Including a
	// feature-gated chunk without the feature enabled is an error.
	//
	// The includes list is reset at the start of each call and can be
	// retrieved via Includes() after Process returns.
	//
	// Parameters:
	//   - source: the raw WGSL shader source containing annotations
	//
	// Returns:
	//   - string: the processed WGSL shader source with annotations replaced
	//   - error: an error if an annotation is malformed, references an
	//     unknown chunk, or requires a feature that is not enabled
	Process(source string) (string, error)

	// Includes returns the chunks injected during the most recent call to
	// Process, in injection order. Returns nil if Process has not been called.
	//
	// Returns:
	//   - []AnnotationArg: the chunks injected during the last Process call
	Includes() []AnnotationArg
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the library's chunk registry
// pre-populated and the given options applied. All chunk sources are embedded
// from the owning packages' .wgsl asset files.
//
// Parameters:
//   - options: functional options to further configure the pre-processor
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		registry: map[AnnotationArg]registryEntry{
			AnnotationArgLimits: {Source: limits.GPULimitsSource},
			AnnotationArgArith:  {Source: vec.GPUArithSource},
			AnnotationArgScreen: {Source: screen.GPUScreenSizeSource},
			AnnotationArgAAStep: {Source: fragment.GPUAAStepSource, Feature: FeatureDerivatives},
		},
		features: make(map[Feature]bool),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.includes = p.includes[:0]
	included := make(map[AnnotationArg]bool)

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		// Only include annotations exist today; parseAnnotation rejects the rest.
		arg := a.Args[0]
		entry, ok := p.registry[arg]
		if !ok {
			return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", i+1, arg)
		}
		if entry.Feature != "" && !p.features[entry.Feature] {
			return "", fmt.Errorf("line %d: chunk %q requires feature %q, which is not enabled on this pre-processor", i+1, arg, entry.Feature)
		}
		if included[arg] {
			// Include guard: the chunk is already present, the repeat
			// annotation expands to nothing.
			continue
		}
		included[arg] = true
		p.includes = append(p.includes, arg)
		out = append(out, entry.Source)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Includes() []AnnotationArg {
	return p.includes
}

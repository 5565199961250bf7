// annotations.go defines the annotation grammar for the shader math library
// pre-processor. Annotations are single-line WGSL comments prefixed with
// @oxy: that request injection of a registered library chunk. The parsed
// results are stored as Annotation values and consumed by the PreProcessor.
package shader

import (
	"fmt"
	"strings"
)

// annotationPrefix is the marker that identifies an annotation within a WGSL
// comment line. Every annotation must appear on a line beginning with "//"
// followed by this prefix.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment
// line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the WGSL source of a registered library
	// chunk at the annotation site. Each chunk is injected at most once per
	// processed source; repeated includes of the same chunk expand to nothing,
	// making inclusion idempotent.
	//
	// Syntax: //@oxy:include <chunk>
	//
	// Example: //@oxy:include arith
	AnnotationTypeInclude AnnotationType = "include"
)

// Annotation represents a single parsed @oxy: annotation from a WGSL source
// line.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments. For include annotations,
	// Args[0] is the chunk key (e.g. "arith").
	Args []AnnotationArg

	// Line is the 1-based line number in the original WGSL source where this
	// annotation was found. Used for error reporting.
	Line int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
// For this library the arguments are the registered chunk keys.
type AnnotationArg string

const (
	// AnnotationArgLimits identifies the numeric limit constants chunk.
	// Source: limits/assets/limits.wgsl
	AnnotationArgLimits AnnotationArg = "limits"

	// AnnotationArgArith identifies the generic arithmetic helpers chunk
	// (dot_self, rcp, sqr, cross2 per-type instantiations).
	// Source: vec/assets/arith.wgsl
	AnnotationArgArith AnnotationArg = "arith"

	// AnnotationArgScreen identifies the ScreenSize struct and remap chunk.
	// Source: screen/assets/screen.wgsl
	AnnotationArgScreen AnnotationArg = "screen"

	// AnnotationArgAAStep identifies the anti-aliased step chunk. Gated on
	// FeatureDerivatives: it calls dpdx/dpdy, which exist only in
	// fragment-stage WGSL.
	// Source: fragment/assets/aa_step.wgsl
	AnnotationArgAAStep AnnotationArg = "aa_step"
)

// parseAnnotation attempts to parse a source line as an @oxy: annotation.
// Returns (nil, nil) for lines that are not annotations, an error for
// malformed ones.
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	comment := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	if !strings.HasPrefix(comment, annotationPrefix) {
		return nil, nil
	}

	fields := strings.Fields(strings.TrimPrefix(comment, annotationPrefix))
	if len(fields) == 0 {
		return nil, fmt.Errorf("line %d: annotation missing a type", lineNum)
	}

	switch AnnotationType(fields[0]) {
	case AnnotationTypeInclude:
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: @oxy:include takes exactly one chunk argument, got %d", lineNum, len(fields)-1)
		}
		return &Annotation{
			Type: AnnotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(fields[1])},
			Line: lineNum,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, fields[0])
	}
}

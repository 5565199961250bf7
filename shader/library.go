// library.go assembles the complete WGSL math library into a single source
// ready for textual inclusion into a shader program, and wraps it in a wgpu
// shader module descriptor for direct consumption by a renderer.
package shader

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// fnDeclRegex matches WGSL function declarations and captures the name.
	fnDeclRegex = regexp.MustCompile(`\bfn\s+(\w+)\s*\(`)

	// constDeclRegex matches module-scope const declarations and captures the name.
	constDeclRegex = regexp.MustCompile(`\bconst\s+(\w+)\s*:`)

	// structDeclRegex matches struct declarations and captures the name.
	structDeclRegex = regexp.MustCompile(`\bstruct\s+(\w+)\s*\{`)
)

// library is the implementation of the Library interface.
type library struct {
	source      string
	includes    []AnnotationArg
	derivatives bool
	module      *wgpu.ShaderModuleDescriptor
}

// Library is the assembled WGSL math library: the limits, arith, and screen
// chunks, plus aa_step when derivatives are enabled, concatenated in
// dependency order with each chunk appearing exactly once.
type Library interface {
	// Source returns the assembled WGSL source of the library, suitable for
	// prepending to a shader program's source text.
	//
	// Returns:
	//   - string: the assembled WGSL source
	Source() string

	// Includes returns the chunks present in the assembled source, in
	// injection order.
	//
	// Returns:
	//   - []AnnotationArg: the included chunk keys
	Includes() []AnnotationArg

	// Symbols returns the sorted names of all functions, module-scope
	// constants, and structs declared by the assembled source. A symbol
	// absent from this list (e.g. aa_step without derivatives) is undefined
	// for any shader built on the library.
	//
	// Returns:
	//   - []string: sorted declared symbol names
	Symbols() []string

	// Module returns the wgpu shader module descriptor wrapping the
	// assembled source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Library = &library{}

// NewLibrary assembles the WGSL math library with all options applied. The
// ungated chunks (limits, arith, screen) are always present; aa_step is
// appended only when WithDerivatives is given.
//
// Parameters:
//   - options: functional options to further configure the library
//
// Returns:
//   - Library: the assembled library
func NewLibrary(options ...LibraryBuilderOption) Library {
	l := &library{}
	for _, option := range options {
		option(l)
	}

	chunks := []AnnotationArg{AnnotationArgLimits, AnnotationArgArith, AnnotationArgScreen}
	var ppOptions []PreProcessorBuilderOption
	if l.derivatives {
		chunks = append(chunks, AnnotationArgAAStep)
		ppOptions = append(ppOptions, WithFeature(FeatureDerivatives))
	}

	var directives strings.Builder
	for _, chunk := range chunks {
		fmt.Fprintf(&directives, "//%sinclude %s\n", annotationPrefix, chunk)
	}

	pp := NewPreProcessor(ppOptions...)
	source, err := pp.Process(directives.String())
	if err != nil {
		// The registry and directives are both library-internal, so a
		// failure here is a programming error, not caller input.
		panic(fmt.Sprintf("shader: failed to assemble library source: %v", err))
	}

	l.source = source
	l.includes = append([]AnnotationArg(nil), pp.Includes()...)
	l.module = &wgpu.ShaderModuleDescriptor{
		Label: "oxy-shadermath",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	}
	return l
}

func (l *library) Source() string {
	return l.source
}

func (l *library) Includes() []AnnotationArg {
	return l.includes
}

func (l *library) Symbols() []string {
	var symbols []string
	for _, re := range []*regexp.Regexp{fnDeclRegex, constDeclRegex, structDeclRegex} {
		for _, m := range re.FindAllStringSubmatch(l.source, -1) {
			symbols = append(symbols, m[1])
		}
	}
	sort.Strings(symbols)
	return symbols
}

func (l *library) Module() *wgpu.ShaderModuleDescriptor {
	return l.module
}

package shader

import (
	"slices"
	"strings"
	"testing"
)

func TestLibrarySource(t *testing.T) {
	lib := NewLibrary()
	src := lib.Source()
	for _, want := range []string{"UINT_MAX", "fn dot_self_2", "fn cross2", "struct ScreenSize", "fn remap"} {
		if !strings.Contains(src, want) {
			t.Errorf("library source missing %q", want)
		}
	}
	if strings.Contains(src, "fn aa_step") {
		t.Error("aa_step present without WithDerivatives")
	}
	wantIncludes := []AnnotationArg{AnnotationArgLimits, AnnotationArgArith, AnnotationArgScreen}
	if !slices.Equal(lib.Includes(), wantIncludes) {
		t.Errorf("Includes() = %v, want %v", lib.Includes(), wantIncludes)
	}
}

func TestLibraryWithDerivatives(t *testing.T) {
	lib := NewLibrary(WithDerivatives())
	if !strings.Contains(lib.Source(), "fn aa_step") {
		t.Error("aa_step missing despite WithDerivatives")
	}
	if !slices.Contains(lib.Includes(), AnnotationArgAAStep) {
		t.Errorf("Includes() = %v, missing aa_step chunk", lib.Includes())
	}
}

func TestLibrarySymbols(t *testing.T) {
	syms := NewLibrary(WithDerivatives()).Symbols()
	for _, want := range []string{
		"dot_self_2", "dot_self_3", "dot_self_4",
		"rcp_f", "rcp_2", "rcp_3", "rcp_4",
		"sqr_f", "sqr_i", "sqr_u",
		"cross2", "remap", "aa_step",
		"ScreenSize",
		"UINT_MAX", "UINT_MIN", "INT_MAX", "INT_MIN",
		"FLOAT_EPSILON", "FLOAT_MAX", "FLOAT_MIN", "FLOAT_PI", "FLOAT_E",
	} {
		if !slices.Contains(syms, want) {
			t.Errorf("Symbols() missing %q", want)
		}
	}
	if !slices.IsSorted(syms) {
		t.Error("Symbols() not sorted")
	}

	// The gate removes the symbol entirely: callers referencing aa_step
	// against a gated-out library hit an undefined symbol at shader compile.
	if slices.Contains(NewLibrary().Symbols(), "aa_step") {
		t.Error("aa_step symbol present in library built without derivatives")
	}
}

func TestLibraryModule(t *testing.T) {
	lib := NewLibrary()
	mod := lib.Module()
	if mod == nil || mod.WGSLDescriptor == nil {
		t.Fatal("Module() descriptor incomplete")
	}
	if mod.WGSLDescriptor.Code != lib.Source() {
		t.Error("module code does not match library source")
	}
	if mod.Label == "" {
		t.Error("module label empty")
	}
}

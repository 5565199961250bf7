package shader

// LibraryBuilderOption is a functional option for configuring a library.
// Use the With* functions to create options.
type LibraryBuilderOption func(l *library)

// WithDerivatives marks the library as targeting fragment-stage code and
// includes the aa_step chunk. Without this option aa_step is absent from the
// assembled source and any shader calling it fails WGSL compilation with an
// undefined symbol.
//
// Returns:
//   - LibraryBuilderOption: option function to apply
func WithDerivatives() LibraryBuilderOption {
	return func(l *library) {
		l.derivatives = true
	}
}

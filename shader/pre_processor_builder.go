package shader

// PreProcessorBuilderOption is a functional option for configuring a
// preProcessor. Use the With* functions to create options.
type PreProcessorBuilderOption func(p *preProcessor)

// WithFeature enables a capability on the pre-processor, unlocking the
// library chunks gated on it.
//
// Parameters:
//   - f: the feature to enable
//
// Returns:
//   - PreProcessorBuilderOption: option function to apply
func WithFeature(f Feature) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.features[f] = true
	}
}

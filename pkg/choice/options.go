package choice

// Option configures a Resolver.
type Option func(*Resolver)

// WithClearIndexOnFreeText empties an existing selected-index record when an
// editable field stores a value that matches no option. The default keeps the
// record untouched, which can leave it pointing at a previously selected
// option.
func WithClearIndexOnFreeText(enabled bool) Option {
	return func(r *Resolver) {
		r.clearIndexOnFreeText = enabled
	}
}

// WithLogger attaches a resolve event logger. Passing nil restores the no-op
// logger.
func WithLogger(logger ResolveLogger) Option {
	return func(r *Resolver) {
		if logger == nil {
			r.logger = noopResolveLogger{}
			return
		}
		r.logger = logger
	}
}

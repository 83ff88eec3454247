package deltargb

// ProgressFunc receives completion updates during long encode/decode runs.
// done counts processed samples out of total (3 * width * height). It is a
// side channel only and has no effect on the produced bytes.
type ProgressFunc func(done, total int)

// Options configures Delta-RGB encoding and decoding. It implements the
// codec.Options interface.
type Options struct {
	// Progress, when non-nil, is invoked at whole-percent boundaries
	Progress ProgressFunc
}

// Validate checks if the options are valid
func (o *Options) Validate() error {
	// Nothing to validate: the format has no tunable parameters, the
	// delta bit budget is fixed.
	return nil
}

// progressNotifier wraps fn into a per-sample callback that fires only at
// whole-percent boundaries (and on the final sample). A nil fn yields a
// no-op notifier.
func progressNotifier(fn ProgressFunc, total int) func(done int) {
	if fn == nil {
		return func(int) {}
	}

	step := total / 100
	if step == 0 {
		step = 1
	}
	return func(done int) {
		if done%step == 0 || done == total {
			fn(done, total)
		}
	}
}

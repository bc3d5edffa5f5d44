package pagetree

const (
	// MinRank is the smallest rank a tree accepts. With rank 1 an internal
	// page could be left with no entries to hang its only child link on.
	MinRank = 2

	// DefaultRank gives pages of 2 to 4 keys.
	DefaultRank = 2
)

// Options configures tree behavior.
type Options struct {
	rank            int    // Pages hold rank..2*rank keys.
	logger          Logger // Receives rejected operations and root changes.
	locateCacheSize uint32 // Entries in the locate cache. 0 disables it.
}

// DefaultOptions returns the configuration used when no option is given.
//
// goland:noinspection GoUnusedExportedFunction
func DefaultOptions() Options {
	return Options{
		rank:   DefaultRank,
		logger: DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithRank sets the tree-wide capacity parameter: every non-root page holds
// between rank and 2*rank keys.
//
//goland:noinspection GoUnusedExportedFunction
func WithRank(rank int) Option {
	return func(opts *Options) {
		opts.rank = rank
	}
}

// WithLogger routes the tree's log output to logger. A nil logger discards.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}

// WithLocateCache remembers the page of up to size recently located keys.
// Any insert or delete drops the whole cache.
//
//goland:noinspection GoUnusedExportedFunction
func WithLocateCache(size uint32) Option {
	return func(opts *Options) {
		opts.locateCacheSize = size
	}
}

package credential

import "fmt"

// New builds the Store named by opts.Kind.
func New(opts Options) (Store, error) {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	switch opts.Kind {
	case "", KindMemory:
		return NewMemoryStore(opts.Size, opts.TTL), nil
	case KindSQLite:
		store, err := NewSQLiteStore(opts.SQLitePath, opts.TTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credential store %q", opts.Kind)
	}
}

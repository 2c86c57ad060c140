package storage

type setOptions struct {
	encrypt bool
}

// SetOption adjusts a single Set call.
type SetOption func(*setOptions)

// WithEncryption seals the value through the vault before it is cached or
// queued.
func WithEncryption() SetOption {
	return func(o *setOptions) { o.encrypt = true }
}

func newSetOptions(opts []SetOption) setOptions {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type getOptions struct {
	decrypt bool
}

// GetOption adjusts a single Get call.
type GetOption func(*getOptions)

// WithDecryption unseals values written with WithEncryption. Values stored
// in plaintext pass through unchanged.
func WithDecryption() GetOption {
	return func(o *getOptions) { o.decrypt = true }
}

func newGetOptions(opts []GetOption) getOptions {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

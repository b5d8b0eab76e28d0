package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithDisplay attaches the display the buffer reports damage to.
// Without one, Update still resets damage, which is what a headless
// run wants.
func WithDisplay(d Display) Option {
	return func(b *Buffer) {
		b.display = d
	}
}

// WithMessenger attaches the sink for user-visible messages such as
// load and save failures.
func WithMessenger(m Messenger) Option {
	return func(b *Buffer) {
		b.messenger = m
	}
}

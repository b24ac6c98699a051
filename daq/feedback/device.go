package feedback

import "context"

// Reader delivers analog input samples. ReadSamples blocks until at least
// one sample is available or ctx is done, and returns the number of samples
// written into buf.
type Reader interface {
	ReadSamples(ctx context.Context, buf []float64) (int, error)
}

// Writer drives an analog output to a single value.
type Writer interface {
	WriteValue(ctx context.Context, v float64) error
}

// ReaderFunc adapts a function to [Reader].
type ReaderFunc func(ctx context.Context, buf []float64) (int, error)

// ReadSamples calls f(ctx, buf).
func (f ReaderFunc) ReadSamples(ctx context.Context, buf []float64) (int, error) {
	return f(ctx, buf)
}

// WriterFunc adapts a function to [Writer].
type WriterFunc func(ctx context.Context, v float64) error

// WriteValue calls f(ctx, v).
func (f WriterFunc) WriteValue(ctx context.Context, v float64) error {
	return f(ctx, v)
}

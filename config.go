package bezlight

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko"
)

// Configuration keys understood by this module.
const (
	KeySamples = "bezier.samples" // number of samples per segment
	KeyWorkers = "bezier.workers" // number of workers for the illumination pass
)

// DefaultSamples is the sample count collaborators use if none is configured.
const DefaultSamples = 20

// ErrTooFewSamples indicates a configured sample count below 2.
var ErrTooFewSamples = errors.New("sample count must be at least 2")

// SampleCount reads the number of samples per segment from a configuration.
// Curves do not validate sample counts, it is the collaborator's duty to
// pass in at least 2. SampleCount substitutes DefaultSamples if the key is
// missing or out of range, and reports the out-of-range case as an error.
func SampleCount(conf schuko.Configuration) (int, error) {
	if conf == nil || !conf.IsSet(KeySamples) {
		return DefaultSamples, nil
	}
	n := conf.GetInt(KeySamples)
	if err := CheckSampleCount(n); err != nil {
		tracer().Errorf("configuration %s=%d: %v", KeySamples, n, err)
		return DefaultSamples, err
	}
	return n, nil
}

// CheckSampleCount returns ErrTooFewSamples (wrapped) for n < 2.
func CheckSampleCount(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	return nil
}

// Workers reads the number of workers for the illumination pass.
// Anything below 1 means sequential operation.
func Workers(conf schuko.Configuration) int {
	if conf == nil || !conf.IsSet(KeyWorkers) {
		return 1
	}
	if w := conf.GetInt(KeyWorkers); w > 1 {
		return w
	}
	return 1
}

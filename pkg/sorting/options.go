package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/errors"
)

// DefaultSeed seeds the shuffle when no seed is given.
const DefaultSeed = uint64(42)

// DefaultBucketCount is the number of buckets bucket sort aims for when
// neither a bucket size nor a bucket count is configured.
const DefaultBucketCount = 10

// Option configures a computation.
type Option func(*options)

type options struct {
	seed        uint64
	bucketSize  int
	bucketCount int
}

func defaultOptions() options {
	return options{seed: DefaultSeed, bucketCount: DefaultBucketCount}
}

// WithSeed sets the random seed used by the shuffle.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithBucketSize fixes the value range covered by each bucket.
// Zero selects a size from the bucket count.
func WithBucketSize(size int) Option {
	return func(o *options) { o.bucketSize = size }
}

// WithBucketCount sets how many buckets bucket sort aims for when no
// bucket size is given.
func WithBucketCount(count int) Option {
	return func(o *options) { o.bucketCount = count }
}

func (o options) validate() error {
	if o.bucketSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bucket size cannot be negative, got %d", o.bucketSize)
	}
	if o.bucketCount < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "bucket count must be positive, got %d", o.bucketCount)
	}
	return nil
}

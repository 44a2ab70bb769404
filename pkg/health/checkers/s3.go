package checkers

import (
	"context"
	"time"
)

// Pinger is implemented by remote stores that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type BucketChecker struct {
	store Pinger
}

func NewBucketChecker(store Pinger) *BucketChecker {
	return &BucketChecker{store: store}
}

func (c *BucketChecker) Name() string { return "s3" }

func (c *BucketChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.store.Ping(ctx)
}

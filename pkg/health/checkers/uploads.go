package checkers

import (
	"context"
	"fmt"
	"os"
)

// UploadDirChecker verifies that the local upload directory accepts writes.
type UploadDirChecker struct {
	dir string
}

func NewUploadDirChecker(dir string) *UploadDirChecker {
	return &UploadDirChecker{dir: dir}
}

func (c *UploadDirChecker) Name() string { return "uploads" }

func (c *UploadDirChecker) Check(context.Context) error {
	f, err := os.CreateTemp(c.dir, ".ready-*")
	if err != nil {
		return fmt.Errorf("upload dir %s not writable: %w", c.dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

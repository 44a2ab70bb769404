package health_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/atsmatch/pkg/health"
	"github.com/artem13815/atsmatch/pkg/health/checkers"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestReadyAllPass(t *testing.T) {
	svc := health.NewService(
		checkers.NewUploadDirChecker(t.TempDir()),
		checkers.NewModelChecker("gemini", "key"),
		checkers.NewBucketChecker(fakePinger{}),
	)

	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReadyNamesFailingChecker(t *testing.T) {
	tests := []struct {
		name    string
		checker health.Checker
		wantErr string
	}{
		{"missing key", checkers.NewModelChecker("gemini", ""), "model: gemini api key is not configured"},
		{"bucket down", checkers.NewBucketChecker(fakePinger{err: errors.New("no such bucket")}), "s3: no such bucket"},
		{"missing dir", checkers.NewUploadDirChecker(filepath.Join(os.TempDir(), "does-not-exist-ats", "x")), "uploads: upload dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := health.NewService(tt.checker).Ready(context.Background())

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

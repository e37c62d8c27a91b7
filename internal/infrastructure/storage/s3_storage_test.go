package storage

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestOpenErrorMapsMissingObject(t *testing.T) {
	err := openError("archive/abc123_es.mp3", &types.NoSuchKey{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("NoSuchKey mapped to %v, want fs.ErrNotExist", err)
	}

	other := errors.New("access denied")
	if got := openError("k", other); got != other || errors.Is(got, fs.ErrNotExist) {
		t.Fatalf("other error mapped to %v", got)
	}
}

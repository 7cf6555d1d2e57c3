package testutil

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gatepost/gatepost/journal"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireJournal opens a fresh writable journal under a temp directory,
// returning it together with its cleanup function.
func AcquireJournal(ctx context.Context, t TestLog, name string) (*journal.J, func()) {
	dir, err := ioutil.TempDir("", "gatepost-tests")
	if err != nil {
		t.Fatal(err)
	}
	abspath := filepath.Join(dir, name)
	j, err := journal.LoadJournal(ctx, abspath, true)
	if err != nil {
		t.Fatal(err)
	}
	return j, func() {
		err := j.Close()
		if err != nil {
			t.Log("unable to close journal", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

package pmcalc

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestErrorKinds(t *testing.T) {
	err := Errorf(NameError, "%s declared twice", "x")
	if err.Error() != "x declared twice" {
		t.Errorf("expected message to be undecorated, is %q", err.Error())
	}
	wrapped := fmt.Errorf("in statement: %w", err)
	if k, ok := KindOf(wrapped); !ok || k != NameError {
		t.Errorf("expected wrapped error to be of kind name error, is %s", k)
	}
	if !IsRecoverable(wrapped) {
		t.Error("expected name error to be recoverable")
	}
	if IsRecoverable(Errorf(InternalError, "putback() into a full buffer")) {
		t.Error("expected internal error not to be recoverable")
	}
	if IsRecoverable(io.ErrUnexpectedEOF) {
		t.Error("expected foreign error not to be recoverable")
	}
}

func TestExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc")
	defer teardown()
	//
	for i, x := range []struct {
		err  error
		code int
	}{
		{err: nil, code: ExitOK},
		{err: Errorf(InternalError, "boom"), code: ExitFailure},
		{err: fmt.Errorf("setup: %w", Errorf(NameError, "pi declared twice")), code: ExitFailure},
		{err: errors.New("disk on fire"), code: ExitUnknown},
	} {
		if c := ExitCodeFor(x.err); c != x.code {
			t.Errorf("test %d: expected exit code %d for %v, got %d", i, x.code, x.err, c)
		}
	}
}

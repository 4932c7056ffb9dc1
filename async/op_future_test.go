package async

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestOperationResolution(t *testing.T) {
	var op = NewOperation()

	select {
	case <-op.Done():
		t.Fatal("not resolved yet")
	default:
	}

	var failed = errors.New("an error")
	go op.Resolve(failed)

	<-op.Done()
	require.Equal(t, failed, op.Err())
}

func TestFinishedOperationIsResolved(t *testing.T) {
	var op = FinishedOperation(nil)

	select {
	case <-op.Done():
	default:
		t.Fatal("expected Done to select immediately")
	}
	require.NoError(t, op.Err())
}

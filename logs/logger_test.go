package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("cast", "resolution", "evaluated")
	})
	if !strings.Contains(buf.String(), "resolution=evaluated") {
		t.Fatalf("got %q", buf.String())
	}
}

package editarea

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseMode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, mode := range []Mode{ModeWYSIWYG, ModeMarkup, ModeText} {
		parsed, err := ParseMode(mode.String())
		if err != nil {
			t.Fatal(err.Error())
		}
		if parsed != mode {
			t.Errorf("ParseMode('%s') = %d, round trip broken", mode, parsed)
		}
	}
	if _, err := ParseMode("sourcecode"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode for unknown tag, got %v", err)
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("expected 'unknown' for an out-of-range mode")
	}
}

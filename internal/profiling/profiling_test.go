package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	snap := Snapshot()
	if snap["test.op"] <= 0 {
		t.Fatalf("expected positive duration for test.op, got %v", snap["test.op"])
	}

	// A second sample under the same name adds up.
	before := snap["test.op"]
	stop = Track("test.op")
	time.Sleep(time.Millisecond)
	stop()
	if after := Snapshot()["test.op"]; after <= before {
		t.Errorf("expected accumulation, %v -> %v", before, after)
	}
}

func TestResetFrame(t *testing.T) {
	Track("test.reset")()
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("expected empty totals after reset, got %v", Snapshot())
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	Track("test.a")()
	Track("test.b")()

	out := TopN(1)
	if !strings.Contains(out, "test.") {
		t.Errorf("expected a tracked entry in %q", out)
	}
	if strings.Contains(out, ", ") {
		t.Errorf("TopN(1) should format a single entry, got %q", out)
	}
}

package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("riot", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("riot", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("riot"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("riot"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("riot"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("riot")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("riot", 5*time.Second)
	rec.RecordRateLimit("riot", 0)

	if got := rec.RateLimitHits("riot"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("riot"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksRenders(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRender(20*time.Millisecond, nil)
	rec.RecordRender(30*time.Millisecond, errors.New("upstream"))

	snap := rec.Renders()
	if snap.Renders != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected render snapshot %+v", snap)
	}
	if snap.LastDuration != 30*time.Millisecond {
		t.Fatalf("expected last duration 30ms, got %s", snap.LastDuration)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("riot", time.Millisecond, nil)
	rec.RecordRateLimit("riot", time.Second)
	rec.RecordRender(time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/threads", 200, time.Millisecond)

	if rec.ProviderCalls("riot") != 0 || rec.Renders().Renders != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("missing"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

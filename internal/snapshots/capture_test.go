package snapshots

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/testutil"
)

type rawStub struct {
	payloads map[string][]byte
	champs   []byte
	err      error
	calls    []string
}

func (r *rawStub) FetchRaw(ctx context.Context, url string) ([]byte, error) {
	_ = ctx
	r.calls = append(r.calls, url)
	if r.err != nil {
		return nil, r.err
	}
	return r.payloads[url], nil
}

func (r *rawStub) FetchRawChampions(ctx context.Context) ([]byte, error) {
	_ = ctx
	r.calls = append(r.calls, "champions")
	return r.champs, nil
}

func newRawStub(t *testing.T) *rawStub {
	return &rawStub{
		payloads: map[string][]byte{
			testutil.SampleGameURL:     readTestdata(t, "match.json"),
			testutil.SampleTimelineURL: readTestdata(t, "timeline.json"),
		},
		champs: []byte(sampleChampions),
	}
}

func TestCaptureWritesEverythingAndRendersOffline(t *testing.T) {
	dir := t.TempDir()
	src := newRawStub(t)
	logger, buf := testutil.NewBufferLogger()
	c := NewCapturer(src, src, NewWriter(dir), logger)

	entry, err := c.Capture(context.Background(), testutil.SampleGameURL, testutil.SampleTimelineURL)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	want := []string{"champions", testutil.SampleGameURL, testutil.SampleTimelineURL}
	if len(src.calls) != len(want) {
		t.Fatalf("unexpected calls %v", src.calls)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("call %d: got %s want %s", i, src.calls[i], want[i])
		}
	}
	if entry.MatchSlug != Slug(testutil.SampleGameURL) {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected capture log")
	}

	store := NewFSStore(dir)
	if _, err := store.FetchMatch(context.Background(), testutil.SampleGameURL); err != nil {
		t.Fatalf("expected captured match to load, got %v", err)
	}
	m, err := ReadManifest(dir)
	if err != nil || len(m.Games) != 1 || m.ChampionsVersion != "14.2.1" {
		t.Fatalf("unexpected manifest %+v err %v", m, err)
	}
}

func TestCaptureWritesNothingOnInvalidPayload(t *testing.T) {
	dir := t.TempDir()
	src := newRawStub(t)
	src.payloads[testutil.SampleTimelineURL] = []byte("not json")
	c := NewCapturer(src, src, NewWriter(dir), nil)

	_, err := c.Capture(context.Background(), testutil.SampleGameURL, testutil.SampleTimelineURL)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
	if _, statErr := os.Stat(ChampionsPath(dir)); !os.IsNotExist(statErr) {
		t.Fatalf("expected no files written on failure")
	}
}

func TestCapturePropagatesFetchErrors(t *testing.T) {
	src := newRawStub(t)
	src.err = errors.New("offline")
	c := NewCapturer(src, src, NewWriter(t.TempDir()), nil)
	if _, err := c.Capture(context.Background(), testutil.SampleGameURL, testutil.SampleTimelineURL); !errors.Is(err, src.err) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

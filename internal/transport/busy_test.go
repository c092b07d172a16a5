package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestTrackBusyDuringAndAfterRequests(t *testing.T) {
	tracker := NewBusyTracker()

	release := make(chan struct{})
	started := make(chan struct{}, 3)
	send := Chain(func(*http.Request) (*http.Response, error) {
		started <- struct{}{}
		<-release
		return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
	}, TrackBusy(tracker))

	var wg sync.WaitGroup
	for _, path := range []string{"/a", "/b", "/c"} {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "http://portal.test"+path, nil)
			_, _ = send(req)
		}(path)
	}

	for i := 0; i < 3; i++ {
		<-started
	}
	if !tracker.Busy() {
		t.Fatal("tracker should be busy while requests are in flight")
	}

	close(release)
	wg.Wait()
	if tracker.Busy() {
		t.Fatal("tracker should be idle after all requests settle")
	}
}

func TestTrackBusyReleasesOnFailure(t *testing.T) {
	tracker := NewBusyTracker()

	send := Chain(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}, TrackBusy(tracker))

	req := httptest.NewRequest(http.MethodGet, "http://portal.test/api/plants", nil)
	if _, err := send(req); err == nil {
		t.Fatal("expected the transport error back")
	}
	if tracker.Busy() {
		t.Fatal("a failed request must not leak a busy entry")
	}
}

func TestTrackBusySkipFlag(t *testing.T) {
	tracker := NewBusyTracker()

	send := Chain(func(*http.Request) (*http.Response, error) {
		if tracker.Busy() {
			t.Error("skip-flagged request must not be tracked")
		}
		return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
	}, TrackBusy(tracker))

	req := httptest.NewRequest(http.MethodGet, "http://portal.test/api/poll", nil)
	req = req.WithContext(WithSkipBusy(req.Context()))
	if _, err := send(req); err != nil {
		t.Fatalf("send: %v", err)
	}
	if tracker.Busy() {
		t.Fatal("tracker should be idle")
	}
}

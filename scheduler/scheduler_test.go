package scheduler_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
	"github.com/theoremus-urban-solutions/transit-tracker/scheduler"
	"github.com/theoremus-urban-solutions/transit-tracker/store"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

func newTestScheduler(t *testing.T, interval time.Duration) (*scheduler.Scheduler, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.AppConfig{
		Fetch: config.FetchConfig{TimeoutMS: 5000},
		Agencies: map[string]config.Agency{
			"test": {Name: "Test", Endpoint: srv.URL},
		},
	}
	return scheduler.New(store.NewManager(cfg), interval), &requests
}

func TestSubscribeDeliversPromptly(t *testing.T) {
	sched, _ := newTestScheduler(t, time.Hour)
	defer sched.Stop()

	sub := sched.Subscribe("test", transit.DataTypeStations)
	defer sub.Cancel()

	select {
	case update := <-sub.C:
		if update.Err != nil {
			t.Fatalf("unexpected error update: %v", update.Err)
		}
		if update.Agency != "test" || update.DataType != transit.DataTypeStations {
			t.Errorf("update for the wrong key: %+v", update)
		}
		if _, ok := update.Value.(map[string]transit.Station); !ok {
			t.Errorf("expected a stations snapshot, got %T", update.Value)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial update before the first tick")
	}
}

func TestSharedLoopSingleFetchPerTick(t *testing.T) {
	sched, requests := newTestScheduler(t, time.Hour)
	defer sched.Stop()

	a := sched.Subscribe("test", transit.DataTypeVehicles)
	defer a.Cancel()

	// Wait for the initial poll to land before attaching the second
	// subscriber, then make sure it did not trigger another fetch.
	<-a.C
	b := sched.Subscribe("test", transit.DataTypeVehicles)
	defer b.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := requests.Load(); got != 1 {
		t.Errorf("second subscriber must share the loop, observed %d fetches", got)
	}
}

func TestCancelStopsPolling(t *testing.T) {
	sched, requests := newTestScheduler(t, 30*time.Millisecond)
	defer sched.Stop()

	sub := sched.Subscribe("test", transit.DataTypeStations)
	<-sub.C
	sub.Cancel()
	sub.Cancel() // idempotent

	settled := requests.Load()
	time.Sleep(150 * time.Millisecond)
	if got := requests.Load(); got != settled {
		t.Errorf("polling continued after last cancel: %d then %d fetches", settled, got)
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	sched, _ := newTestScheduler(t, 30*time.Millisecond)
	defer sched.Stop()

	a := sched.Subscribe("test", transit.DataTypeStations)
	defer a.Cancel()
	b := sched.Subscribe("test", transit.DataTypeStations)
	defer b.Cancel()

	for name, sub := range map[string]*scheduler.Subscription{"a": a, "b": b} {
		select {
		case <-sub.C:
		case <-time.After(2 * time.Second):
			t.Fatalf("subscriber %s never received an update", name)
		}
	}
}

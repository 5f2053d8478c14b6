package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-tracker/store"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

// Update is one poll result delivered to subscribers. Exactly one of Value
// and Err is meaningful.
type Update struct {
	Agency    string
	DataType  transit.DataType
	Value     transit.Snapshot
	Err       error
	FetchedAt time.Time
}

// Subscription is one consumer's attachment to a polled key. Updates arrive
// on C until Cancel is called; Cancel is idempotent and safe from any
// goroutine.
type Subscription struct {
	C <-chan Update

	key    pollKey
	id     int
	cancel sync.Once
	sched  *Scheduler
}

// Cancel detaches the subscription. When it was the key's last subscriber
// the polling loop is stopped as well.
func (s *Subscription) Cancel() {
	s.cancel.Do(func() {
		s.sched.unsubscribe(s.key, s.id)
	})
}

type pollKey struct {
	Agency   string
	DataType transit.DataType
}

// pollLoop is the per-key polling state: the subscriber channels and the
// stop function for the loop goroutine.
type pollLoop struct {
	subscribers map[int]chan Update
	stop        context.CancelFunc
}

// Scheduler broadcasts periodic snapshot refreshes to subscribers.
type Scheduler struct {
	manager  *store.Manager
	interval time.Duration

	mu     sync.Mutex
	loops  map[pollKey]*pollLoop
	nextID int
}

// New creates a scheduler polling on the given cadence.
func New(manager *store.Manager, interval time.Duration) *Scheduler {
	return &Scheduler{
		manager:  manager,
		interval: interval,
		loops:    map[pollKey]*pollLoop{},
	}
}

// Subscribe attaches to the polling loop for (agencyKey, dataType), starting
// it if this is the first subscriber. The first update arrives promptly: a
// new loop fetches immediately, before settling into its cadence.
func (s *Scheduler) Subscribe(agencyKey string, dataType transit.DataType) *Subscription {
	key := pollKey{Agency: agencyKey, DataType: dataType}
	ch := make(chan Update, 1)

	s.mu.Lock()
	s.nextID++
	id := s.nextID

	loop, ok := s.loops[key]
	if !ok {
		ctx, stop := context.WithCancel(context.Background())
		loop = &pollLoop{subscribers: map[int]chan Update{}, stop: stop}
		s.loops[key] = loop
		go s.run(ctx, key)
		log.Info().Str("agency", key.Agency).Stringer("datatype", key.DataType).Msg("Started poll loop")
	}
	loop.subscribers[id] = ch
	s.mu.Unlock()

	return &Subscription{C: ch, key: key, id: id, sched: s}
}

func (s *Scheduler) unsubscribe(key pollKey, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loop, ok := s.loops[key]
	if !ok {
		return
	}
	delete(loop.subscribers, id)
	if len(loop.subscribers) == 0 {
		loop.stop()
		delete(s.loops, key)
		log.Info().Str("agency", key.Agency).Stringer("datatype", key.DataType).Msg("Stopped poll loop")
	}
}

// Stop cancels every polling loop and drops all subscribers, for process
// shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, loop := range s.loops {
		loop.stop()
		delete(s.loops, key)
	}
}

func (s *Scheduler) run(ctx context.Context, key pollKey) {
	s.poll(ctx, key)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx, key)
		}
	}
}

func (s *Scheduler) poll(ctx context.Context, key pollKey) {
	value, err := s.manager.GetData(ctx, key.Agency, key.DataType)
	update := Update{
		Agency:    key.Agency,
		DataType:  key.DataType,
		Value:     value,
		Err:       err,
		FetchedAt: time.Now(),
	}

	s.mu.Lock()
	loop, ok := s.loops[key]
	if !ok {
		// Last subscriber left while the fetch was in flight; the late
		// result is a no-op.
		s.mu.Unlock()
		return
	}
	for _, ch := range loop.subscribers {
		select {
		case ch <- update:
		default:
			// Slow subscriber: drop this update rather than stall
			// the loop. The next tick supersedes it anyway.
		}
	}
	s.mu.Unlock()
}

package npc

import (
	"bytes"
	"encoding/gob"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/markerpush/internal/core/events/bus"
	"github.com/zeusync/markerpush/internal/core/physics"
)

// JobRecord is one finished (or rejected) job.
type JobRecord struct {
	ID          string
	Turn        int
	Pusher      int
	Marker      int
	Destination physics.Vec2
	Outcome     JobEventKind
	Ticks       int
}

// Summary counts journal records by outcome.
type Summary struct {
	Completed int
	TimedOut  int
	Lost      int
	Rejected  int
}

func (s Summary) Total() int { return s.Completed + s.TimedOut + s.Lost + s.Rejected }

// Journal keeps the history of job outcomes for a match.
type Journal interface {
	Append(rec JobRecord)
	History() []JobRecord
	Summary() Summary
	Reset()
	Save() ([]byte, error)
	Load(b []byte) error
}

type memJournal struct {
	mu   sync.RWMutex
	list []JobRecord
}

// NewJournal creates an in-memory journal with gob persistence.
func NewJournal() Journal { return &memJournal{list: make([]JobRecord, 0, 128)} }

func (j *memJournal) Append(rec JobRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	j.mu.Lock()
	j.list = append(j.list, rec)
	j.mu.Unlock()
}

func (j *memJournal) History() []JobRecord {
	j.mu.RLock()
	cp := make([]JobRecord, len(j.list))
	copy(cp, j.list)
	j.mu.RUnlock()
	return cp
}

func (j *memJournal) Summary() Summary {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var s Summary
	for _, r := range j.list {
		switch r.Outcome {
		case JobCompleted:
			s.Completed++
		case JobTimedOut:
			s.TimedOut++
		case JobLost:
			s.Lost++
		case JobRejected:
			s.Rejected++
		}
	}
	return s
}

func (j *memJournal) Reset() {
	j.mu.Lock()
	j.list = j.list[:0]
	j.mu.Unlock()
}

func (j *memJournal) Save() ([]byte, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(j.list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (j *memJournal) Load(b []byte) error {
	var list []JobRecord
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&list); err != nil {
		return err
	}
	j.mu.Lock()
	j.list = list
	j.mu.Unlock()
	return nil
}

// RecordJobs subscribes j to every job event kind that ends or refuses a job.
// The returned subscriptions can be cancelled to stop recording.
func RecordJobs(eb bus.EventBus, j Journal) ([]bus.Subscription, error) {
	handler := func(e bus.Event) error {
		ev, ok := e.Data().(JobEvent)
		if !ok {
			return nil
		}
		j.Append(JobRecord{
			Turn:        ev.Turn,
			Pusher:      ev.Pusher,
			Marker:      ev.Marker,
			Destination: ev.Destination,
			Outcome:     ev.Kind,
			Ticks:       ev.JobTime,
		})
		return nil
	}

	var subs []bus.Subscription
	for _, kind := range []JobEventKind{JobCompleted, JobTimedOut, JobLost, JobRejected} {
		sub, err := eb.Subscribe(kind.Topic(), handler)
		if err != nil {
			for _, s := range subs {
				_ = s.Cancel()
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

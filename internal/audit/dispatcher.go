package audit

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
)

// Sink receives history entries from the submission gate. The two
// implementations encode the audit policy: best-effort never fails the
// primary operation, strict does.
type Sink interface {
	Record(ctx context.Context, e Entry) error
}

// NewSink picks the audit mode. Best-effort is the default and matches the
// original console's swallow-audit-failures behavior, made explicit.
func NewSink(db *gorm.DB, strict bool) Sink {
	logger := New(db)
	if strict {
		return &strictSink{logger: logger}
	}
	return NewDispatcher(logger)
}

// ===============================
// Best-effort (async)
// ===============================

type Dispatcher struct {
	logger *Logger
	queue  chan Entry
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Entry, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if err := d.logger.Log(context.Background(), e); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Record enqueues the entry and always succeeds. A full queue drops the
// entry rather than blocking the request.
func (d *Dispatcher) Record(_ context.Context, e Entry) error {
	select {
	case d.queue <- e:
	default:
		log.Println("audit queue full, dropping entry")
	}
	return nil
}

// ===============================
// Strict (sync)
// ===============================

type strictSink struct {
	logger *Logger
}

func (s *strictSink) Record(ctx context.Context, e Entry) error {
	if err := s.logger.Log(ctx, e); err != nil {
		log.Println("audit error:", err)
		return httperr.ErrBusiness("persistence_failure")
	}
	return nil
}

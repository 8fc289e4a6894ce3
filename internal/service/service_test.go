package service_test

import (
	"sync"
	"testing"

	"mis/internal/repository"
	"mis/internal/service"
	"mis/internal/testutil"

	"gorm.io/gorm"
)

// recorder captures broadcast change events
type recorder struct {
	mu     sync.Mutex
	events []service.ChangeEvent
}

func (r *recorder) Broadcast(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := v.(service.ChangeEvent); ok {
		r.events = append(r.events, ev)
	}
}

func (r *recorder) Events() []service.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]service.ChangeEvent(nil), r.events...)
}

type fixture struct {
	db     *gorm.DB
	tables *repository.Tables
	audit  service.AuditService
	events *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	events := &recorder{}
	return &fixture{
		db:     db,
		tables: repository.NewTables(db),
		audit:  service.NewAuditService(repository.NewAuditRepository(db), events),
		events: events,
	}
}

package lead_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/lead-crm/model"
	leadrepo "github.com/muhammadheryan/lead-crm/repository/lead"
)

// memLeadRepository enforces the same unique keys as the leads table.
type memLeadRepository struct {
	mu     sync.Mutex
	nextID uint64
	leads  map[uint64]model.LeadEntity
}

func newMemLeadRepository() *memLeadRepository {
	return &memLeadRepository{leads: map[uint64]model.LeadEntity{}}
}

func duplicate(value, key string) error {
	return &mysql.MySQLError{
		Number:  1062,
		Message: fmt.Sprintf("Duplicate entry '%s' for key 'leads.%s'", value, key),
	}
}

func (m *memLeadRepository) Create(_ context.Context, data *model.LeadEntity) (*model.LeadEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.leads {
		if l.ProcessingID == data.ProcessingID {
			return nil, duplicate(data.ProcessingID, leadrepo.KeyProcessingID)
		}
		if l.DeletedAt == nil && l.Email == data.Email {
			return nil, duplicate(data.Email, leadrepo.KeyEmail)
		}
	}

	m.nextID++
	stored := *data
	stored.ID = m.nextID
	m.leads[stored.ID] = stored
	return &stored, nil
}

func (m *memLeadRepository) GetByID(_ context.Context, id uint64) (*model.LeadEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok || l.DeletedAt != nil {
		return nil, nil
	}
	return &l, nil
}

func (m *memLeadRepository) List(_ context.Context, filter *model.LeadFilter) ([]model.LeadEntity, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.LeadEntity, 0)
	for _, l := range m.leads {
		if l.DeletedAt != nil {
			continue
		}
		if filter != nil && filter.CreatedBy != 0 && !l.OwnedBy(filter.CreatedBy) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (m *memLeadRepository) ExistsEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.leads {
		if l.DeletedAt == nil && l.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLeadRepository) ExistsProcessingID(_ context.Context, processingID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.leads {
		if l.ProcessingID == processingID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLeadRepository) Update(_ context.Context, data *model.LeadEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.leads[data.ID]; ok {
		m.leads[data.ID] = *data
	}
	return nil
}

func (m *memLeadRepository) SoftDelete(_ context.Context, id, deletedBy uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok {
		return nil
	}
	l.DeletedBy = &deletedBy
	now := time.Now()
	l.DeletedAt = &now
	m.leads[id] = l
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/dao/criteria"
)

// Service implements an in-memory, thread-safe store for runs.
type Service struct {
	runs map[string]*model.Run
	mux  sync.RWMutex
}

var _ dao.Service[string, model.Run] = (*Service)(nil)

func (s *Service) Save(_ context.Context, run *model.Run) error {
	if run == nil {
		return dao.ErrNilEntity
	}
	if run.ID == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *Service) Load(_ context.Context, id string) (*model.Run, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mux.RLock()
	run, ok := s.runs[id]
	s.mux.RUnlock()
	if !ok {
		return nil, dao.ErrNotFound
	}
	return run, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.runs[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}

// List returns matching runs ordered by creation time.
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*model.Run, error) {
	s.mux.RLock()
	out := make([]*model.Run, 0, len(s.runs))
	for _, run := range s.runs {
		if criteria.FilterByPolicy(run.Policy, parameters) {
			out = append(out, run)
		}
	}
	s.mux.RUnlock()
	sortRuns(out)
	return out, nil
}

func sortRuns(runs []*model.Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
}

// New creates an empty store
func New() *Service {
	return &Service{runs: map[string]*model.Run{}}
}

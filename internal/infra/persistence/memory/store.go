// Package memory contains an in-process implementation of the persistence layer, used
// when no document database is configured and in tests.
package memory

import (
	"sync"

	"accounts/internal/domain/entity"
)

// Store holds every account in memory. A single lock guards the data; transactions
// hold it for their whole duration and work on a copy that replaces the data on commit.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

type state struct {
	accounts map[string]*entity.Account
	order    []string
}

func newState() *state {
	return &state{accounts: make(map[string]*entity.Account)}
}

func (s *state) clone() *state {
	c := &state{
		accounts: make(map[string]*entity.Account, len(s.accounts)),
		order:    append([]string(nil), s.order...),
	}
	for id, account := range s.accounts {
		c.accounts[id] = account.Clone()
	}

	return c
}

func (s *state) byDevice(deviceID string) *entity.Account {
	for _, id := range s.order {
		if account := s.accounts[id]; account.HasDevice(deviceID) {
			return account
		}
	}

	return nil
}

func (s *state) insert(account *entity.Account) {
	s.accounts[account.ID] = account
	s.order = append(s.order, account.ID)
}

func (s *state) remove(id string) {
	delete(s.accounts, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}
}

func (s *state) each(fn func(*entity.Account)) {
	for _, id := range s.order {
		fn(s.accounts[id])
	}
}

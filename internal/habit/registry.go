package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by Complete when the named habit does not exist,
// so callers can tell a missing habit apart from a gate rejection.
var ErrNotFound = errors.New("habit not found")

// Storage persists habits. The registry writes through on every mutation;
// implementations upsert by name.
type Storage interface {
	LoadHabits() ([]*Habit, error)
	SaveHabit(h *Habit) error
	DeleteHabit(name string) error
}

// Patch describes an edit. Nil fields keep the current value.
type Patch struct {
	Name        *string
	Description *string
	Periodicity *Periodicity
}

// Registry holds the in-memory habit list for the process lifetime. The
// authoritative copy lives in Storage: loaded once, written through on every
// mutation. A failed write propagates after memory is already mutated; the
// registry does not roll back.
type Registry struct {
	habits  []*Habit
	storage Storage
}

func NewRegistry(storage Storage) *Registry {
	return &Registry{storage: storage}
}

// Load replaces the in-memory list with the persisted habits.
func (r *Registry) Load() error {
	habits, err := r.storage.LoadHabits()
	if err != nil {
		return fmt.Errorf("load habits: %w", err)
	}
	r.habits = habits
	return nil
}

// Habits returns the current snapshot in insertion/load order.
func (r *Registry) Habits() []*Habit {
	return r.habits
}

// Find returns the first habit matching name case-insensitively, or nil.
func (r *Registry) Find(name string) *Habit {
	for _, h := range r.habits {
		if h.Matches(name) {
			return h
		}
	}
	return nil
}

// Add appends a habit and persists it. Uniqueness is not enforced in memory;
// the store's unique name constraint makes a duplicate add overwrite the
// prior record, so callers should check Find first.
func (r *Registry) Add(h *Habit) error {
	r.habits = append(r.habits, h)
	if err := r.storage.SaveHabit(h); err != nil {
		return fmt.Errorf("save habit %q: %w", h.Name, err)
	}
	return nil
}

// Edit applies a patch to the named habit and persists the result. Returns
// false when the habit is missing; nothing is touched in that case. A rename
// that collides with another habit is not guarded and will merge the two
// records in storage.
func (r *Registry) Edit(name string, patch Patch) (bool, error) {
	h := r.Find(name)
	if h == nil {
		return false, nil
	}

	oldName := h.Name
	if patch.Name != nil {
		if name := strings.ToLower(strings.TrimSpace(*patch.Name)); name != "" {
			h.Name = name
		}
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.Periodicity != nil {
		h.Periodicity = *patch.Periodicity
	}

	if err := r.storage.SaveHabit(h); err != nil {
		return true, fmt.Errorf("save habit %q: %w", h.Name, err)
	}
	if h.Name != oldName {
		if err := r.storage.DeleteHabit(oldName); err != nil {
			return true, fmt.Errorf("delete renamed habit %q: %w", oldName, err)
		}
	}
	return true, nil
}

// Delete removes the named habit from memory and storage. Returns false when
// not found.
func (r *Registry) Delete(name string) (bool, error) {
	for i, h := range r.habits {
		if !h.Matches(name) {
			continue
		}
		r.habits = append(r.habits[:i], r.habits[i+1:]...)
		if err := r.storage.DeleteHabit(h.Name); err != nil {
			return true, fmt.Errorf("delete habit %q: %w", h.Name, err)
		}
		return true, nil
	}
	return false, nil
}

// Complete marks the named habit completed for now's period. It returns
// ErrNotFound for a missing habit, (false, nil) when the current period is
// already satisfied, and persists the habit on acceptance.
func (r *Registry) Complete(name string, now time.Time) (bool, error) {
	h := r.Find(name)
	if h == nil {
		return false, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if !h.MarkCompleted(now) {
		return false, nil
	}
	if err := r.storage.SaveHabit(h); err != nil {
		return true, fmt.Errorf("save habit %q: %w", h.Name, err)
	}
	return true, nil
}

package transform

import (
	"fmt"
	"sort"

	"github.com/revcsv-dev/revcsv/internal/category"
	"github.com/revcsv-dev/revcsv/internal/model"
)

// Session holds one upload's normalized rows together with its category
// map, and exposes the editing contract used by interactive callers:
// date, category, and notes are mutable, everything else is fixed at
// transformation time.
type Session struct {
	txns []model.Transaction
	cats *category.Map
}

// NewSession wraps normalized rows and their category map.
func NewSession(txns []model.Transaction, cats *category.Map) *Session {
	if cats == nil {
		cats = category.NewMap()
	}
	return &Session{txns: txns, cats: cats}
}

// Transactions returns the full normalized sequence.
func (s *Session) Transactions() []model.Transaction {
	return s.txns
}

// Categories returns the session's category map.
func (s *Session) Categories() *category.Map {
	return s.cats
}

// SetDate replaces row i's date.
func (s *Session) SetDate(i int, date string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.txns[i].Date = date
	return nil
}

// SetCategory replaces row i's category and records the override in the
// category map so later rows with the same name pick it up.
func (s *Session) SetCategory(i int, cat string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.txns[i].Category = cat
	s.cats.Set(s.txns[i].Name, cat)
	return nil
}

// SetNotes replaces row i's notes.
func (s *Session) SetNotes(i int, notes string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.txns[i].Notes = notes
	return nil
}

// SortByDate re-sorts the rows by date ascending. The sort is stable, so
// rows sharing a date keep their file order.
func (s *Session) SortByDate() {
	sort.SliceStable(s.txns, func(a, b int) bool {
		return s.txns[a].Date < s.txns[b].Date
	})
}

// Reset replaces the rows wholesale and clears the category map, as on a
// new file upload.
func (s *Session) Reset(txns []model.Transaction) {
	s.txns = txns
	s.cats.Reset()
}

func (s *Session) check(i int) error {
	if i < 0 || i >= len(s.txns) {
		return fmt.Errorf("row %d out of range (have %d)", i, len(s.txns))
	}
	return nil
}

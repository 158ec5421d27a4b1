package ledger

import (
	"bytes"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// StorageKey is the fixed key the full ledger snapshot is persisted under.
const StorageKey = "smart_receipt_ledger_data"

// Store is the sole owner of the entry collection. All mutation goes
// through it, and every mutation persists a full snapshot before returning.
//
// Entries are kept newest first: Add prepends, and that order is both the
// display order and the persistence order.
//
// Mutations are strictly sequential by construction (single user, single
// process); the Store does no locking of its own.
type Store struct {
	entries []ReceiptEntry
	storage Storage
}

// Open loads the persisted snapshot and returns a ready store.
//
// A missing snapshot yields an empty ledger. So does a corrupt one: a
// ledger that cannot be decoded is logged and treated as empty rather than
// blocking the user out of the tool.
func Open(storage Storage) *Store {
	s := &Store{storage: storage}

	data, ok, err := storage.Read(StorageKey)
	if err != nil {
		log.Printf("warning: could not read ledger snapshot, starting empty: %v", err)
		return s
	}
	if !ok {
		return s
	}
	entries, err := DecodeEntries(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: corrupt ledger snapshot, starting empty: %v", err)
		return s
	}
	s.entries = entries
	return s
}

// Entries returns a copy of the entry collection, newest first.
func (s *Store) Entries() []ReceiptEntry {
	out := make([]ReceiptEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the ledger.
func (s *Store) Len() int { return len(s.entries) }

// Entry returns the entry with the given id, if present.
func (s *Store) Entry(id string) (ReceiptEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return ReceiptEntry{}, false
}

// Add validates the draft, fills in the generated fields (id, receipt
// number, derived amounts) and prepends the new entry to the collection.
// The collection is left untouched when validation fails.
func (s *Store) Add(draft EntryDraft) (ReceiptEntry, error) {
	if err := draft.Validate(); err != nil {
		return ReceiptEntry{}, fmt.Errorf("invalid entry: %w", err)
	}
	status := draft.Status
	if status == "" {
		status = Pending
	}

	amount, total := ComputeAmounts(draft.Quantity, draft.Price, draft.Discount)
	entry := ReceiptEntry{
		ID:              uuid.NewString(),
		Date:            draft.Date,
		ReceiptNo:       NextReceiptNumber(s.entries),
		Name:            draft.Name,
		ItemDescription: draft.ItemDescription,
		CustomerRequest: draft.CustomerRequest,
		Quantity:        draft.Quantity,
		Price:           draft.Price,
		Discount:        draft.Discount,
		Amount:          amount,
		TotalAmount:     total,
		Status:          status,
	}

	s.entries = prependEntry(s.entries, entry)
	s.persist()
	return entry, nil
}

// Remove deletes the entry with the given id. It returns false, leaving
// the collection untouched, when no entry matches. Asking the user for
// confirmation is the caller's job, not the store's.
func (s *Store) Remove(id string) bool {
	entries, removed := removeEntry(s.entries, id)
	if !removed {
		return false
	}
	s.entries = entries
	s.persist()
	return true
}

// UpdateStatus sets the status of the entry with the given id. Any status
// may be assigned regardless of the previous one. It returns false when no
// entry matches.
func (s *Store) UpdateStatus(id string, status Status) bool {
	entries, updated := updateEntryStatus(s.entries, id, status)
	if !updated {
		return false
	}
	s.entries = entries
	s.persist()
	return true
}

// Summary reduces the current collection into its financial summary.
func (s *Store) Summary() FinancialSummary {
	return Summarize(s.entries)
}

// Flush writes the full snapshot to storage, surfacing any error. Regular
// mutations go through persist instead; Flush exists for callers that want
// to rewrite the snapshot deliberately (see `srl fmt`).
func (s *Store) Flush() error {
	var buf bytes.Buffer
	if err := EncodeEntries(&buf, s.entries); err != nil {
		return fmt.Errorf("could not encode ledger snapshot: %w", err)
	}
	if err := s.storage.Write(StorageKey, buf.Bytes()); err != nil {
		return fmt.Errorf("could not persist ledger snapshot: %w", err)
	}
	return nil
}

// persist writes the full snapshot. A failed write is logged and otherwise
// swallowed: the in-memory state stays authoritative for this session, and
// the next successful write catches durable state up.
func (s *Store) persist() {
	if err := s.Flush(); err != nil {
		log.Printf("warning: %v", err)
	}
}

// The transition helpers below are pure functions over the entry slice, so
// the state machine can be tested without a store or a storage behind it.

func prependEntry(entries []ReceiptEntry, e ReceiptEntry) []ReceiptEntry {
	out := make([]ReceiptEntry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

func removeEntry(entries []ReceiptEntry, id string) ([]ReceiptEntry, bool) {
	for i, e := range entries {
		if e.ID == id {
			out := make([]ReceiptEntry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...), true
		}
	}
	return entries, false
}

func updateEntryStatus(entries []ReceiptEntry, id string, status Status) ([]ReceiptEntry, bool) {
	for i, e := range entries {
		if e.ID == id {
			out := make([]ReceiptEntry, len(entries))
			copy(out, entries)
			out[i].Status = status
			return out, true
		}
	}
	return entries, false
}

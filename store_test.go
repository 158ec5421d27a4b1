package ledger

import (
	"errors"
	"testing"
)

func draft(name, item string) EntryDraft {
	return EntryDraft{
		Date:            "2026-08-30",
		Name:            name,
		ItemDescription: item,
		Quantity:        2,
		Price:           dec("150"),
		Discount:        dec("50"),
	}
}

func TestStoreAdd(t *testing.T) {
	storage := NewMemoryStorage()
	store := Open(storage)

	entry, err := store.Add(draft("R. Sharma", "Wedding album"))
	if err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	if entry.ID == "" {
		t.Error("Add() did not assign an id")
	}
	if entry.ReceiptNo != "AB_RNC - 01" {
		t.Errorf("receiptNo = %q, want %q", entry.ReceiptNo, "AB_RNC - 01")
	}
	if !entry.Amount.Equal(dec("300")) {
		t.Errorf("amount = %s, want 300", entry.Amount)
	}
	if !entry.TotalAmount.Equal(dec("250")) {
		t.Errorf("totalAmount = %s, want 250", entry.TotalAmount)
	}
	if entry.Status != Pending {
		t.Errorf("status = %q, want %q", entry.Status, Pending)
	}
	if storage.Writes != 1 {
		t.Errorf("storage writes = %d, want 1 (every mutation persists)", storage.Writes)
	}
}

func TestStoreAddPrepends(t *testing.T) {
	store := Open(NewMemoryStorage())

	first, _ := store.Add(draft("A", "first item"))
	second, _ := store.Add(draft("B", "second item"))

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("entries are not newest first: got [%s, %s]", entries[0].Name, entries[1].Name)
	}
	if entries[0].ReceiptNo != "AB_RNC - 02" {
		t.Errorf("second receiptNo = %q, want %q", entries[0].ReceiptNo, "AB_RNC - 02")
	}

	// Unique ids.
	if first.ID == second.ID {
		t.Errorf("both entries share id %q", first.ID)
	}
}

func TestStoreAddValidation(t *testing.T) {
	storage := NewMemoryStorage()
	store := Open(storage)

	for _, d := range []EntryDraft{draft("", "item"), draft("name", ""), draft("  ", "item")} {
		if _, err := store.Add(d); err == nil {
			t.Errorf("Add(%+v) succeeded, want validation failure", d)
		}
	}

	if store.Len() != 0 {
		t.Errorf("rejected drafts mutated the collection: len = %d", store.Len())
	}
	if storage.Writes != 0 {
		t.Errorf("rejected drafts persisted a snapshot: writes = %d", storage.Writes)
	}
}

func TestStoreRemove(t *testing.T) {
	storage := NewMemoryStorage()
	store := Open(storage)
	entry, _ := store.Add(draft("A", "item"))

	if store.Remove("no-such-id") {
		t.Error("Remove() of an unknown id returned true")
	}
	if store.Len() != 1 {
		t.Errorf("no-op Remove changed the collection: len = %d", store.Len())
	}

	writes := storage.Writes
	if !store.Remove(entry.ID) {
		t.Error("Remove() of a present id returned false")
	}
	if store.Len() != 0 {
		t.Errorf("len = %d after Remove, want 0", store.Len())
	}
	if storage.Writes != writes+1 {
		t.Errorf("Remove did not persist: writes = %d, want %d", storage.Writes, writes+1)
	}
}

func TestStoreUpdateStatus(t *testing.T) {
	store := Open(NewMemoryStorage())
	entry, _ := store.Add(draft("A", "item"))

	if store.UpdateStatus("no-such-id", Paid) {
		t.Error("UpdateStatus() of an unknown id returned true")
	}

	// Free-form transitions: any status to any other and back again.
	for _, s := range []Status{Paid, Cancelled, Pending, Paid, Pending} {
		if !store.UpdateStatus(entry.ID, s) {
			t.Fatalf("UpdateStatus(%s) returned false", s)
		}
		got, _ := store.Entry(entry.ID)
		if got.Status != s {
			t.Errorf("status = %q, want %q", got.Status, s)
		}
	}

	// Derived fields are untouched by status changes.
	got, _ := store.Entry(entry.ID)
	if !got.Amount.Equal(entry.Amount) || !got.TotalAmount.Equal(entry.TotalAmount) {
		t.Error("UpdateStatus changed the derived amounts")
	}
}

func TestStoreNumberingAfterDelete(t *testing.T) {
	store := Open(NewMemoryStorage())
	e1, _ := store.Add(draft("A", "item one")) // AB_RNC - 01
	e2, _ := store.Add(draft("B", "item two")) // AB_RNC - 02

	// Deleting a lower suffix: a higher one survives, so the sequence
	// moves past it.
	store.Remove(e1.ID)
	e3, _ := store.Add(draft("C", "item three"))
	if e3.ReceiptNo != "AB_RNC - 03" {
		t.Errorf("receiptNo = %q, want %q", e3.ReceiptNo, "AB_RNC - 03")
	}

	// Deleting the unique maximum: numbering is derived from the current
	// collection, so the freed number is reused.
	store.Remove(e3.ID)
	store.Remove(e2.ID)
	e4, _ := store.Add(draft("D", "item four"))
	if e4.ReceiptNo != "AB_RNC - 01" {
		t.Errorf("receiptNo = %q, want %q (numbering follows current max, not a counter)", e4.ReceiptNo, "AB_RNC - 01")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()
	store := Open(storage)
	store.Add(draft("A", "item one"))
	e2, _ := store.Add(draft("B", "item two"))
	store.UpdateStatus(e2.ID, Paid)

	reloaded := Open(storage)
	want := store.Entries()
	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("entry %d differs after reload:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestOpenMissingSnapshot(t *testing.T) {
	store := Open(NewMemoryStorage())
	if store.Len() != 0 {
		t.Errorf("len = %d on a fresh storage, want 0", store.Len())
	}
}

func TestOpenCorruptSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Write(StorageKey, []byte("this is not json"))

	store := Open(storage)
	if store.Len() != 0 {
		t.Errorf("len = %d on a corrupt snapshot, want 0 (soft failure)", store.Len())
	}

	// The store still works after the soft failure.
	if _, err := store.Add(draft("A", "item")); err != nil {
		t.Errorf("Add() after corrupt load failed: %v", err)
	}
}

func TestStorePersistFailure(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Fail = errors.New("disk full")
	store := Open(storage)

	// A failed write is logged, not surfaced: the mutation still applies
	// in memory.
	entry, err := store.Add(draft("A", "item"))
	if err != nil {
		t.Fatalf("Add() surfaced a persistence failure: %v", err)
	}
	if _, ok := store.Entry(entry.ID); !ok {
		t.Error("entry missing from memory after failed persist")
	}
}

func TestTransitionHelpersArePure(t *testing.T) {
	entries := []ReceiptEntry{
		testEntry("a", "AB_RNC - 01", Pending, "10"),
		testEntry("b", "AB_RNC - 02", Pending, "20"),
	}

	updated, ok := updateEntryStatus(entries, "a", Paid)
	if !ok {
		t.Fatal("updateEntryStatus did not find entry a")
	}
	if entries[0].Status != Pending {
		t.Error("updateEntryStatus mutated its input")
	}
	if updated[0].Status != Paid {
		t.Error("updateEntryStatus did not apply the new status")
	}

	removed, ok := removeEntry(entries, "b")
	if !ok || len(removed) != 1 || len(entries) != 2 {
		t.Error("removeEntry mutated its input or removed the wrong entry")
	}

	prepended := prependEntry(entries, testEntry("c", "AB_RNC - 03", Pending, "30"))
	if len(entries) != 2 || prepended[0].ID != "c" {
		t.Error("prependEntry mutated its input or misplaced the new entry")
	}
}

package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeEntries writes the entries as a single JSON array, preserving their
// order (the store keeps newest first). Each entry is marshaled with a
// canonical field order so that consecutive snapshots of the same ledger
// stay diffable.
func EncodeEntries(w io.Writer, entries []ReceiptEntry) error {
	decimal.MarshalJSONWithoutQuotes = true

	if _, err := io.WriteString(w, "["); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return fmt.Errorf("could not write snapshot: %w", err)
			}
		}
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("could not marshal entry %q: %w", e.ID, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("could not write entry %q: %w", e.ID, err)
		}
	}
	if _, err := io.WriteString(w, "]\n"); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// DecodeEntries reads a JSON array of entries as written by EncodeEntries.
// The order of the array is preserved.
func DecodeEntries(r io.Reader) ([]ReceiptEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var entries []ReceiptEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not decode ledger snapshot: %w", err)
	}
	return entries, nil
}

package ledger

import "testing"

func TestMoneyString(t *testing.T) {
	if got := M(dec("1.5"), "USD").String(); got != "$1.50" {
		t.Errorf("String() = %q, want $1.50", got)
	}
	if got := M(dec("1234"), "USD").String(); got != "$1,234.00" {
		t.Errorf("String() = %q, want $1,234.00", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(dec("10.25"), "INR")
	b := M(dec("4.75"), "INR")

	if got := a.Add(b); !got.Equal(M(dec("15"), "INR")) {
		t.Errorf("Add() = %v, want 15 INR", got)
	}
	if !M(dec("0"), "INR").IsZero() {
		t.Error("IsZero() = false for zero money")
	}
	if !M(dec("-15"), "INR").IsNegative() {
		t.Error("IsNegative() = false for a negative total")
	}
	if a.Equal(M(dec("10.25"), "USD")) {
		t.Error("Equal() ignored the currency")
	}
}

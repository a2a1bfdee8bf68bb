package smartfi

import (
	"encoding/json"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		in   string
		want Currency
	}{
		{"COP", COP},
		{"usd", USD},
		{" cop ", COP},
	}
	for _, tc := range testCases {
		got, err := ParseCurrency(tc.in)
		if err != nil {
			t.Errorf("ParseCurrency(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseCurrency("EUR"); err == nil {
		t.Error("ParseCurrency accepted an unsupported currency")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(1000, COP)
	b := M(250, COP)

	if got := a.Add(b); !got.Equal(M(1250, COP)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(750, COP)) {
		t.Errorf("Sub = %v", got)
	}
	if got := b.Neg(); !got.Equal(M(-250, COP)) {
		t.Errorf("Neg = %v", got)
	}
	if got := M(-250, COP).Abs(); !got.Equal(b) {
		t.Errorf("Abs = %v", got)
	}
	if !b.LessThan(a) {
		t.Error("LessThan is wrong")
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// an amount without a currency adopts the other operand's
	got := M(100, "").Add(M(50, USD))
	if got.Currency() != USD {
		t.Errorf("currency = %q, want USD", got.Currency())
	}
	got = M(100, COP).Sub(M(50, ""))
	if got.Currency() != COP {
		t.Errorf("currency = %q, want COP", got.Currency())
	}
}

func TestMoney_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding COP and USD did not panic")
		}
	}()
	M(1, COP).Add(M(1, USD))
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, COP).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want %q", got, "-")
	}
	if got := M(100, COP).SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a leading +", got)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(M(1000.5, USD))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"currency":"USD","amount":1000.5}` {
		t.Errorf("Marshal = %s", data)
	}

	// the currency key is dropped when unset
	data, err = json.Marshal(M(10, ""))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"amount":10}` {
		t.Errorf("Marshal = %s", data)
	}
}

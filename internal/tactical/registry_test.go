package tactical

import "testing"

func TestLookupBuiltinTactical(t *testing.T) {
	factory, err := Lookup("tactical")
	if err != nil {
		t.Fatalf("Lookup(tactical) failed: %v", err)
	}
	algo := factory(1, 0)
	if algo == nil {
		t.Fatalf("factory returned a nil algorithm")
	}
}

func TestLookupUnknownKeyIsError(t *testing.T) {
	if _, err := Lookup("does-not-exist"); err == nil {
		t.Fatalf("expected an error for an unregistered key")
	}
}

func TestRegisterAddsNewKey(t *testing.T) {
	Register("test-echo", NewAlgorithm)
	if _, err := Lookup("test-echo"); err != nil {
		t.Fatalf("Lookup(test-echo) failed after Register: %v", err)
	}
}

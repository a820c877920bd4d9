package errors

import (
	"fmt"
	"testing"
)

func TestIsTypeWalksWrappedChain(t *testing.T) {
	inner := UnknownRegion("mars")
	outer := fmt.Errorf("computing service %q: %w", "avatars", inner)

	if !IsType(outer, TypeUnknownRegion) {
		t.Fatalf("expected %s in chain of %v", TypeUnknownRegion, outer)
	}
	if IsType(outer, TypeFetch) {
		t.Errorf("did not expect %s in chain of %v", TypeFetch, outer)
	}
	if got := TypeOf(outer); got != TypeUnknownRegion {
		t.Errorf("TypeOf = %s, want %s", got, TypeUnknownRegion)
	}
}

func TestIsTypeFindsCauseType(t *testing.T) {
	err := Wrap(TypeConfig, "loading pricing", Parsing("bad number", nil))

	if !IsType(err, TypeConfig) {
		t.Error("expected outer type to match")
	}
	if !IsType(err, TypeParsing) {
		t.Error("expected cause type to match")
	}
}

func TestTypeOfPlainError(t *testing.T) {
	if got := TypeOf(fmt.Errorf("boom")); got != TypeInternal {
		t.Errorf("TypeOf = %s, want %s", got, TypeInternal)
	}
	if IsType(nil, TypeInternal) {
		t.Error("nil error must not match any type")
	}
}

func TestTransportMessage(t *testing.T) {
	err := Transport(503)
	want := "[TRANSPORT_ERROR] received 503, was expecting 200"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Context["status_code"] != 503 {
		t.Errorf("status_code context = %v", err.Context["status_code"])
	}
}

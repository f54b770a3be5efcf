package player

import (
	"errors"
	"testing"
)

func TestHistoryRoundTrip(t *testing.T) {
	history := []Position{PositionDefender, PositionMidfielder, PositionDefender}

	raw, err := EncodeHistory(history)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeHistory(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(history) {
		t.Fatalf("length: got=%d want=%d", len(decoded), len(history))
	}
	for i, pos := range history {
		if decoded[i] != pos {
			t.Fatalf("entry %d: got=%s want=%s", i, decoded[i], pos)
		}
	}
}

func TestDecodeHistoryEmptyBlob(t *testing.T) {
	decoded, err := DecodeHistory(nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil history, got %v", decoded)
	}
}

func TestDecodeHistoryMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "not json", raw: []byte("definitely not json")},
		{name: "wrong version", raw: []byte(`{"v":9,"positions":["GK"]}`)},
		{name: "unknown position", raw: []byte(`{"v":1,"positions":["SWEEPER"]}`)},
		{name: "wrong shape", raw: []byte(`["GK","DEF"]`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeHistory(tc.raw)
			if !errors.Is(err, ErrMalformedHistory) {
				t.Fatalf("expected ErrMalformedHistory, got %v", err)
			}
		})
	}
}

func TestEncodeHistoryNil(t *testing.T) {
	raw, err := EncodeHistory(nil)
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}

	decoded, err := DecodeHistory(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty history, got %v", decoded)
	}
}

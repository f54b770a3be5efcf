package player

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedHistory marks a position history blob that cannot be decoded.
// Consumers treat it as "no usable history" rather than a hard failure.
var ErrMalformedHistory = errors.New("malformed position history")

const historyVersion = 1

// historyEnvelope is the persisted wire form of a position history.
// The version field exists so the stored shape can evolve without
// reinterpreting old rows.
type historyEnvelope struct {
	Version   int        `json:"v"`
	Positions []Position `json:"positions"`
}

// EncodeHistory serializes a position history into its versioned envelope.
func EncodeHistory(history []Position) ([]byte, error) {
	if history == nil {
		history = []Position{}
	}
	raw, err := json.Marshal(historyEnvelope{
		Version:   historyVersion,
		Positions: history,
	})
	if err != nil {
		return nil, fmt.Errorf("encode position history: %w", err)
	}

	return raw, nil
}

// DecodeHistory parses a versioned history envelope. An empty blob decodes to
// an empty history; anything unparseable, an unknown version, or an unknown
// position value returns ErrMalformedHistory.
func DecodeHistory(raw []byte) ([]Position, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var envelope historyEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHistory, err)
	}
	if envelope.Version != historyVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHistory, envelope.Version)
	}
	for _, pos := range envelope.Positions {
		if _, ok := AllPositions[pos]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrMalformedHistory, pos)
		}
	}

	return envelope.Positions, nil
}

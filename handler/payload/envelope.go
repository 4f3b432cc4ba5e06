package payload

import (
	"encoding/json"
	"fmt"

	"github.com/airesearchhub/site/pkg/portal"
)

// Envelope wraps every API payload. Version is the sha256 of the encoded
// data and doubles as the response ETag.
type Envelope[T any] struct {
	Version string `json:"version"`
	Data    T      `json:"data"`
}

func NewEnvelope[T any](data T) (Envelope[T], error) {
	encoded, err := json.Marshal(data)

	if err != nil {
		return Envelope[T]{}, fmt.Errorf("could not encode payload: %w", err)
	}

	return Envelope[T]{
		Version: portal.Sha256Hex(encoded),
		Data:    data,
	}, nil
}

package mapstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"trackmap/models"
)

var (
	// ErrNotFound means no map has been stored for a track identity.
	ErrNotFound = errors.New("track map not found")
	// ErrMalformed means a stored document is not a usable map.
	ErrMalformed = errors.New("malformed track map document")
)

// Encode serialises p as a JSON array of [x, y] pairs in path order.
func Encode(p models.Path) ([]byte, error) {
	pairs := make([][2]float32, len(p))
	for i, pt := range p {
		pairs[i] = [2]float32{pt.X, pt.Y}
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("encode track map: %w", err)
	}
	return data, nil
}

// Decode parses a document written by Encode. Anything other than an array of
// two-element numeric pairs holding at least two points is ErrMalformed.
func Decode(data []byte) (models.Path, error) {
	var pairs [][]*float32
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(pairs) < 2 {
		return nil, fmt.Errorf("%w: %d points", ErrMalformed, len(pairs))
	}
	p := make(models.Path, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: record %d has %d values", ErrMalformed, i, len(pair))
		}
		if pair[0] == nil || pair[1] == nil {
			return nil, fmt.Errorf("%w: record %d has a null value", ErrMalformed, i)
		}
		p[i] = models.Point{X: *pair[0], Y: *pair[1]}
	}
	return p, nil
}

package codec

import "encoding/json"

// JSON is a document codec on encoding/json. beconv.Decimal fields are
// written as strings ("12.50", "123e2") through their text marshalers, so no
// precision is lost to float64.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

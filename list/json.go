package list

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the values of the list as a JSON array, from front to
// back. An empty list is encoded as [].
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

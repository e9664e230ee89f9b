package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is one key/value pair of a remote call.
type Param struct {
	Value any
	Key   string
}

// Params is an ordered parameter list. Slice values are sent as repeated
// "key[]" entries.
type Params []Param

// Add appends a parameter and returns the extended list.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Has reports whether a parameter with the key is present.
func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Keys returns parameter keys in insertion order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, param := range p {
		keys = append(keys, param.Key)
	}
	return keys
}

// Values encodes the parameters as form values.
func (p Params) Values() url.Values {
	values := url.Values{}
	for _, param := range p {
		switch v := param.Value.(type) {
		case []string:
			key := arrayKey(param.Key)
			for _, item := range v {
				values.Add(key, item)
			}
		case []int64:
			key := arrayKey(param.Key)
			for _, item := range v {
				values.Add(key, strconv.FormatInt(item, 10))
			}
		default:
			values.Add(param.Key, formatValue(v))
		}
	}
	return values
}

func arrayKey(key string) string {
	if strings.HasSuffix(key, "[]") {
		return key
	}
	return key + "[]"
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}

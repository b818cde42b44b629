package dotenv

import (
	"io"
	"sort"

	"github.com/joho/godotenv"
)

// Pair is a single KEY=VALUE assignment.
type Pair struct {
	Key   string
	Value string
}

// Pairs is the set of assignments read from one file, ordered by key.
type Pairs []Pair

// Keys returns the keys in order.
func (p Pairs) Keys() []string {
	keys := make([]string, len(p))
	for i, pair := range p {
		keys[i] = pair.Key
	}
	return keys
}

// Map returns the pairs as a map.
func (p Pairs) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, pair := range p {
		m[pair.Key] = pair.Value
	}
	return m
}

// Parse reads .env formatted content from r. Duplicate keys resolve to the
// last occurrence.
func Parse(r io.Reader) (Pairs, error) {
	m, err := godotenv.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromMap(m), nil
}

// Read parses the named file without touching any environment.
func Read(filename string) (Pairs, error) {
	filename = cleanFilename(filename)
	if filename == "" {
		return nil, &LoadError{File: filename, Err: ErrEmptyFilename}
	}
	m, err := godotenv.Read(filename)
	if err != nil {
		return nil, &LoadError{File: filename, Err: err}
	}
	return fromMap(m), nil
}

func fromMap(m map[string]string) Pairs {
	pairs := make(Pairs, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

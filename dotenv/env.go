package dotenv

import (
	"os"
	"sort"
	"sync"
)

// Environment is the variable table the loader populates.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnvironment reads and writes the process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnvironment) Setenv(key, value string) error      { return os.Setenv(key, value) }

// MapEnvironment is an in-memory Environment. The zero value is ready to use.
type MapEnvironment struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnvironment returns a MapEnvironment seeded with vars.
func NewMapEnvironment(vars map[string]string) *MapEnvironment {
	m := &MapEnvironment{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *MapEnvironment) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[key]
	return v, ok
}

func (m *MapEnvironment) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
	return nil
}

// Keys returns the variable names in sorted order.
func (m *MapEnvironment) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.vars))
	for k := range m.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Environ returns the variables as KEY=VALUE strings, sorted by key.
func (m *MapEnvironment) Environ() []string {
	keys := m.Keys()
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m.vars[k])
	}
	return out
}

// Require returns a *MissingKeysError naming every key not set in env.
func Require(env Environment, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := env.LookupEnv(k); !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

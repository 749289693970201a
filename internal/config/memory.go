package config

import "strconv"

// Memory is the headless store: a plain map that lives as long as the
// process. It is not safe for concurrent use.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Exists(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Memory) Read(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", notFound(key)
	}
	return v, nil
}

func (m *Memory) Write(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) ReadBool(key string) (bool, error) {
	v, err := m.Read(key)
	if err != nil {
		return false, err
	}
	return parseBool(key, v)
}

func (m *Memory) WriteBool(key string, value bool) error {
	return m.Write(key, formatBool(value))
}

func (m *Memory) ReadInt(key string) (int, error) {
	v, err := m.Read(key)
	if err != nil {
		return 0, err
	}
	return parseInt(key, v)
}

func (m *Memory) WriteInt(key string, value int) error {
	return m.Write(key, strconv.Itoa(value))
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *Memory) Location() string {
	return "memory"
}

// snapshot copies the stored values.
func (m *Memory) snapshot() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

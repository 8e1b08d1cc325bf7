package storage

import "sync"

// memoryKV guarda las colecciones en un mapa. Pensado para tests.
type memoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory crea el backend en memoria.
func NewMemory(seed SeedAdmin) *Store {
	return newStore(&memoryKV{data: make(map[string][]byte)}, seed)
}

func (m *memoryKV) load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *memoryKV) save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

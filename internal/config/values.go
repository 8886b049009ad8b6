package config

import "math"

// Get loads the full document and returns the value stored at key, or
// fallback when the key is absent from the merged mapping.
func (s *Store) Get(key string, fallback any) (any, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	if value, ok := cfg[key]; ok {
		return value, nil
	}
	return fallback, nil
}

// Set loads the document, assigns key, and writes the whole mapping back.
// Concurrent writers race; the last save wins.
func (s *Store) Set(key string, value any) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg[key] = value
	return s.Save(cfg)
}

// GetInt returns the integer stored at key. JSON numbers decode as float64,
// so integral floats coerce. A missing key or a non-integral value yields
// fallback.
func (s *Store) GetInt(key string, fallback int) (int, error) {
	value, err := s.Get(key, nil)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return fallback, nil
}

// GetBool returns the boolean stored at key, or fallback when the key is
// missing or holds another type.
func (s *Store) GetBool(key string, fallback bool) (bool, error) {
	value, err := s.Get(key, nil)
	if err != nil {
		return false, err
	}
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return fallback, nil
}

// GetString returns the string stored at key, or fallback when the key is
// missing or holds another type.
func (s *Store) GetString(key string, fallback string) (string, error) {
	value, err := s.Get(key, nil)
	if err != nil {
		return "", err
	}
	if v, ok := value.(string); ok {
		return v, nil
	}
	return fallback, nil
}

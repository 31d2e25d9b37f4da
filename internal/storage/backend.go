package storage

// OpenBackend opens the score store named by the config backend selector.
// "json" opens the flat-file store; anything else falls back to SQLite.
func OpenBackend(backend, path string) (Store, error) {
	if backend == "json" {
		s, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

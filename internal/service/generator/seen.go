package generator

// SeenSet records keys that were already emitted for one content type.
// It only grows.
type SeenSet struct {
	keys map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{keys: make(map[string]struct{})}
}

func (s *SeenSet) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *SeenSet) Add(key string) {
	s.keys[key] = struct{}{}
}

func (s *SeenSet) Len() int {
	return len(s.keys)
}

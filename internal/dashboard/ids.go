package dashboard

import "time"

// idSource hands out millisecond-timestamp ids. Two ids requested in the
// same millisecond still differ: the later one is bumped past the last.
type idSource struct {
	now  func() time.Time
	last int64
}

func (s *idSource) next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// observe ensures future ids are larger than id.
func (s *idSource) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

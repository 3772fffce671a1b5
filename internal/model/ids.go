package model

import "time"

// IDSource hands out millisecond timestamps as ids. When the clock has not
// moved past the previous id the next id is previous+1, so ids never repeat.
type IDSource struct {
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

func (s *IDSource) Now() time.Time {
	return s.now()
}

package domain

// ReadingStatus is the position of a book in a user's library.
// Any status may be changed to any other status.
type ReadingStatus string

const (
	ReadingStatusWantToRead ReadingStatus = "want_to_read"
	ReadingStatusReading    ReadingStatus = "reading"
	ReadingStatusCompleted  ReadingStatus = "completed"
)

func (s ReadingStatus) String() string { return string(s) }

func (s ReadingStatus) IsValid() bool {
	switch s {
	case ReadingStatusWantToRead, ReadingStatusReading, ReadingStatusCompleted:
		return true
	}
	return false
}

// ReadingStatuses lists all statuses in lifecycle order.
func ReadingStatuses() []ReadingStatus {
	return []ReadingStatus{ReadingStatusWantToRead, ReadingStatusReading, ReadingStatusCompleted}
}

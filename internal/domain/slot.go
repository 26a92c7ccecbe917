package domain

import "time"

// ProposedBooking внешне исполнимая единица: одна основная запись
// и ноль-или-одна буферная запись на каждый предложенный слот
type ProposedBooking struct {
	AppointmentTypeID AppointmentTypeID
	Start             time.Time
	DurationMinutes   int
	IsBuffer          bool
}

// End время окончания предлагаемой записи
func (b ProposedBooking) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// TimeSlot результат движка: доступный для записи слот.
// Buffer, если присутствует, начинается ровно в Primary.End()
// и длится фиксированные BufferDurationMinutes минут.
type TimeSlot struct {
	Start          time.Time
	End            time.Time
	HasDualBooking bool // Слот делит интервал с существующей dual-записью
	Primary        ProposedBooking
	Buffer         *ProposedBooking
}

// RequiresBuffer true, если слот бронируется вместе с буферной записью
func (s TimeSlot) RequiresBuffer() bool {
	return s.Buffer != nil
}

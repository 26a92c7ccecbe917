package scheduling

import "time"

// Interval полуоткрытый временной интервал [Start, End).
// Иммутабельное значение: все операции возвращают результат, ничего не мутируя.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps проверяет реальное пересечение полуоткрытых интервалов.
// Граничные случаи (один заканчивается там, где начинается другой)
// пересечением НЕ считаются.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Contains true, если o целиком лежит внутри i
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// Equal точное совпадение границ
func (i Interval) Equal(o Interval) bool {
	return i.Start.Equal(o.Start) && i.End.Equal(o.End)
}

// AdjacentWithin true, если o начинается не раньше конца i и зазор между ними
// не превышает tolerance
func (i Interval) AdjacentWithin(o Interval, tolerance time.Duration) bool {
	gap := o.Start.Sub(i.End)
	return gap >= 0 && gap <= tolerance
}

// Minutes длительность интервала в минутах
func (i Interval) Minutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}

package scheduling

import (
	"sort"
	"time"
)

// blockMember запись рабочего блока: реальная или гипотетическая.
// Анализатору важны только интервал и признак гипотетичности —
// различие реальная/гипотетическая нигде дальше не используется.
type blockMember struct {
	interval     Interval
	hypothetical bool
}

// workBlockMinutes сливает записи в непрерывные рабочие блоки и возвращает
// длительность блока, содержащего гипотетического кандидата.
//
// Записи сортируются хронологически; запись вливается в текущий блок, если
// её начало отстоит от конца блока не более чем на tolerance (впритык или
// почти впритык — один непрерывный блок), иначе начинается новый блок.
// Кандидат без соседей сам по себе является блоком.
func workBlockMinutes(hypothetical Interval, appointments []Interval, tolerance time.Duration) int {
	members := make([]blockMember, 0, len(appointments)+1)
	for _, iv := range appointments {
		members = append(members, blockMember{interval: iv})
	}
	members = append(members, blockMember{interval: hypothetical, hypothetical: true})

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].interval.Start.Before(members[j].interval.Start)
	})

	var (
		blockStart  time.Time
		blockEnd    time.Time
		containsHyp bool
		started     bool
	)

	for _, m := range members {
		if started && !m.interval.Start.After(blockEnd.Add(tolerance)) {
			// Продолжение текущего блока
			if m.interval.End.After(blockEnd) {
				blockEnd = m.interval.End
			}
		} else {
			// Разрыв: если кандидат уже внутри завершённого блока, дальше
			// блоки только позже и его не содержат
			if containsHyp {
				break
			}
			blockStart = m.interval.Start
			blockEnd = m.interval.End
			containsHyp = false
			started = true
		}

		if m.hypothetical {
			containsHyp = true
		}
	}

	return NewInterval(blockStart, blockEnd).Minutes()
}

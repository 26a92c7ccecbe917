// Package scheduling — ядро вычисления доступных слотов: перебор кандидатов,
// фильтр конфликтов, анализ непрерывных рабочих блоков и синтез буферов.
//
// Ядро чистое и детерминированное: не выполняет I/O, не хранит состояние
// между вычислениями и на одинаковых входах даёт одинаковый результат.
package scheduling

import (
	"errors"
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ErrUnknownAppointmentType возвращается при запросе слотов для типа,
// отсутствующего в каталоге
var ErrUnknownAppointmentType = errors.New("scheduling: unknown appointment type")

// Policy параметры политики слотов. Значения по умолчанию — бизнес-правила
// из domain/constants.go.
type Policy struct {
	SlotStep            time.Duration
	BufferDuration      time.Duration
	SoftWorkLimit       time.Duration
	HardWorkLimit       time.Duration
	BlockMergeTolerance time.Duration
}

// DefaultPolicy политика по умолчанию: шаг 30 минут, буфер 30 минут,
// мягкий порог 60 минут, жёсткий предел 90 минут, зазор слияния 1 минута
func DefaultPolicy() Policy {
	return Policy{
		SlotStep:            domain.SlotStepMinutes * time.Minute,
		BufferDuration:      domain.BufferDurationMinutes * time.Minute,
		SoftWorkLimit:       domain.SoftWorkLimitMinutes * time.Minute,
		HardWorkLimit:       domain.HardWorkLimitMinutes * time.Minute,
		BlockMergeTolerance: domain.BlockMergeToleranceMinutes * time.Minute,
	}
}

// Engine движок вычисления доступных слотов для одного провайдера
type Engine struct {
	catalog      *domain.Catalog
	bufferTypeID domain.AppointmentTypeID
	ignorable    map[domain.AppointmentTypeID]struct{}
	policy       Policy
}

// NewEngine создает движок. Буферный тип автоматически попадает в множество
// игнорируемых: буферы не считаются работой и не блокируют кандидатов.
func NewEngine(catalog *domain.Catalog, bufferTypeID domain.AppointmentTypeID, policy Policy) *Engine {
	return &Engine{
		catalog:      catalog,
		bufferTypeID: bufferTypeID,
		ignorable: map[domain.AppointmentTypeID]struct{}{
			bufferTypeID: {},
		},
		policy: policy,
	}
}

// AvailableSlots вычисляет доступные для записи слоты запрошенного типа.
//
// Конвейер строго однонаправленный:
// генерация кандидатов → фильтр конфликтов → анализ рабочих блоков →
// синтез буферов → сборка результата.
//
// Пустые окна и пустой результат — не ошибка.
func (e *Engine) AvailableSlots(
	typeID domain.AppointmentTypeID,
	windows []domain.AvailabilityWindow,
	appointments []domain.Appointment,
) ([]domain.TimeSlot, error) {
	typ, ok := e.catalog.ByID(typeID)
	if !ok {
		return nil, ErrUnknownAppointmentType
	}

	// 1. Генерация кандидатов: обычная серия по окнам, затем dual-зеркала
	candidates := generateCandidates(typ, windows, e.policy.SlotStep)
	candidates = append(candidates, synthesizeDualCandidates(typ, appointments, e.catalog)...)

	// 2. Фильтр конфликтов по неигнорируемым записям
	blocking := e.blockingAppointments(appointments)
	survivors := filterConflicts(candidates, blocking, typ, e.catalog)

	// 3. Анализ рабочих блоков и синтез буферов
	blockingIntervals := make([]Interval, len(blocking))
	for i, appt := range blocking {
		blockingIntervals[i] = NewInterval(appt.Start, appt.End)
	}

	results := make([]domain.TimeSlot, 0, len(survivors))

	for _, s := range survivors {
		candidate := s.candidate.Interval

		blockMinutes := workBlockMinutes(candidate, blockingIntervals, e.policy.BlockMergeTolerance)
		if blockMinutes > int(e.policy.HardWorkLimit/time.Minute) {
			// Жёсткий предел: буфер кандидата не спасает
			continue
		}

		var buffer *domain.ProposedBooking
		if blockMinutes >= int(e.policy.SoftWorkLimit/time.Minute) {
			bufInterval := bufferInterval(candidate, e.policy.BufferDuration)
			if bufferCollides(bufInterval, appointments) {
				// Буфер разместить нельзя — кандидат отбрасывается целиком
				continue
			}
			buffer = &domain.ProposedBooking{
				AppointmentTypeID: e.bufferTypeID,
				Start:             bufInterval.Start,
				DurationMinutes:   bufInterval.Minutes(),
				IsBuffer:          true,
			}
		}

		results = append(results, domain.TimeSlot{
			Start:          candidate.Start,
			End:            candidate.End,
			HasDualBooking: s.hasDualBooking,
			Primary: domain.ProposedBooking{
				AppointmentTypeID: typ.ID,
				Start:             candidate.Start,
				DurationMinutes:   typ.DurationMinutes,
			},
			Buffer: buffer,
		})
	}

	// 4. Сборка: сортировка по возрастанию начала; stable сохраняет порядок
	// генерации для намеренной dual-пары дубликатов
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Start.Before(results[j].Start)
	})

	return results, nil
}

// blockingAppointments отбрасывает записи игнорируемых типов: они не считаются
// работой, не продлевают и не разрывают блоки и не конфликтуют с кандидатами.
// Записи с неизвестным internal name консервативно считаются обычной работой.
func (e *Engine) blockingAppointments(appointments []domain.Appointment) []domain.Appointment {
	blocking := make([]domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if t, ok := e.catalog.ByInternalName(appt.InternalTypeName); ok {
			if _, ignored := e.ignorable[t.ID]; ignored {
				continue
			}
		}
		blocking = append(blocking, appt)
	}
	return blocking
}

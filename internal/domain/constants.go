package domain

// Константы политики непрерывной работы провайдера.
// Значения 30/60/90/1 — бизнес-правила, а не детали реализации:
// менять их можно только вместе с политикой клиники.
const (
	// SlotStepMinutes шаг перебора кандидатов (слоты выравниваются на :00/:30)
	SlotStepMinutes = 30

	// BufferDurationMinutes фиксированная длительность буферной записи
	BufferDurationMinutes = 30

	// SoftWorkLimitMinutes порог непрерывной работы, после которого слот
	// обязан сопровождаться буфером
	SoftWorkLimitMinutes = 60

	// HardWorkLimitMinutes жёсткий предел непрерывной работы; кандидаты,
	// превышающие его, отклоняются без возможности спасения буфером
	HardWorkLimitMinutes = 90

	// BlockMergeToleranceMinutes максимальный зазор между записями,
	// при котором они считаются одним непрерывным рабочим блоком
	BlockMergeToleranceMinutes = 1
)

// Форматы времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

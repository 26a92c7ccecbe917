package domain

import "fmt"

// AppointmentTypeID канонический идентификатор типа приёма.
// Все сравнения и поиски выполняются в этом типе; строковые формы
// конвертируются один раз на границе системы.
type AppointmentTypeID int64

// AppointmentType статическое описание типа приёма из каталога провайдера
type AppointmentType struct {
	ID              AppointmentTypeID
	DisplayName     string // Название для пациента и напоминаний
	InternalName    string // Имя, которым тип идентифицируется в upstream-системе
	DurationMinutes int
	DualBookable    bool // Допускает ли тип две записи на идентичный интервал
}

// Catalog каталог типов приёма с разрешёнными индексами по id и internal name.
// Строится один раз на вычисление и далее используется вместо линейных поисков.
type Catalog struct {
	byID           map[AppointmentTypeID]AppointmentType
	byInternalName map[string]AppointmentType
}

// NewCatalog строит каталог. Дубликаты id или internal name — ошибка входных данных.
func NewCatalog(types []AppointmentType) (*Catalog, error) {
	c := &Catalog{
		byID:           make(map[AppointmentTypeID]AppointmentType, len(types)),
		byInternalName: make(map[string]AppointmentType, len(types)),
	}

	for _, t := range types {
		if _, exists := c.byID[t.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate appointment type id %d", t.ID)
		}
		if _, exists := c.byInternalName[t.InternalName]; exists {
			return nil, fmt.Errorf("catalog: duplicate internal name %q", t.InternalName)
		}
		c.byID[t.ID] = t
		c.byInternalName[t.InternalName] = t
	}

	return c, nil
}

// ByID возвращает тип приёма по id
func (c *Catalog) ByID(id AppointmentTypeID) (AppointmentType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// ByInternalName возвращает тип приёма по внутреннему имени upstream-системы
func (c *Catalog) ByInternalName(name string) (AppointmentType, bool) {
	t, ok := c.byInternalName[name]
	return t, ok
}

// All возвращает все типы каталога (порядок не определён)
func (c *Catalog) All() []AppointmentType {
	out := make([]AppointmentType, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	return out
}

// Len количество типов в каталоге
func (c *Catalog) Len() int {
	return len(c.byID)
}

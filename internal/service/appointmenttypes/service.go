// Package appointmenttypes отвечает за каталог типов приёма.
// Каталог принадлежит upstream-системе; сервис загружает его по требованию,
// строит индексы и держит в памяти короткий период, чтобы не ходить
// в календарь провайдера на каждый запрос.
package appointmenttypes

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service сервис каталога типов приёма
type Service struct {
	client         CalendarClient
	bufferTypeName string
	refreshTTL     time.Duration
	now            func() time.Time
	logger         Logger

	mu           sync.Mutex
	catalog      *domain.Catalog
	bufferTypeID domain.AppointmentTypeID
	fetchedAt    time.Time
}

// NewService создает новый экземпляр сервиса каталога.
// bufferTypeName — внутреннее имя буферного типа в upstream-системе.
func NewService(client CalendarClient, bufferTypeName string, refreshTTL time.Duration, logger Logger) *Service {
	if refreshTTL <= 0 {
		refreshTTL = 5 * time.Minute
	}
	return &Service{
		client:         client,
		bufferTypeName: bufferTypeName,
		refreshTTL:     refreshTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// Catalog возвращает актуальный каталог и id буферного типа.
// Результат кэшируется на refreshTTL; при недоступности upstream-системы
// и живом кэше отдаётся кэшированная версия.
func (s *Service) Catalog(ctx context.Context) (*domain.Catalog, domain.AppointmentTypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil && s.now().Sub(s.fetchedAt) < s.refreshTTL {
		return s.catalog, s.bufferTypeID, nil
	}

	types, err := s.client.GetAppointmentTypes(ctx)
	if err != nil {
		if s.catalog != nil {
			s.logger.Warn("Catalog: provider calendar unavailable, serving cached catalog: %v", err)
			return s.catalog, s.bufferTypeID, nil
		}
		s.logger.Error("Catalog: failed to fetch appointment types: %v", err)
		return nil, 0, fmt.Errorf("%w: Catalog - fetch appointment types: %v", ErrInternal, err)
	}

	if len(types) == 0 {
		s.logger.Error("Catalog: provider returned empty catalog")
		return nil, 0, ErrEmptyCatalog
	}

	domainTypes := make([]domain.AppointmentType, 0, len(types))
	for _, t := range types {
		domainTypes = append(domainTypes, domain.AppointmentType{
			ID:              domain.AppointmentTypeID(t.ID),
			DisplayName:     t.DisplayName,
			InternalName:    t.InternalName,
			DurationMinutes: t.DurationMinutes,
			DualBookable:    t.DualBookable,
		})
	}

	catalog, err := domain.NewCatalog(domainTypes)
	if err != nil {
		s.logger.Error("Catalog: invalid catalog from provider: %v", err)
		return nil, 0, fmt.Errorf("%w: Catalog - build catalog: %v", ErrInternal, err)
	}

	bufferType, ok := catalog.ByInternalName(s.bufferTypeName)
	if !ok {
		s.logger.Error("Catalog: buffer type %q not present in provider catalog", s.bufferTypeName)
		return nil, 0, ErrBufferTypeMissing
	}

	s.catalog = catalog
	s.bufferTypeID = bufferType.ID
	s.fetchedAt = s.now()

	s.logger.Info("Catalog: refreshed, %d appointment types, buffer type id=%d", catalog.Len(), bufferType.ID)
	return s.catalog, s.bufferTypeID, nil
}

// List возвращает типы каталога, доступные для записи пациентом.
// Буферный тип — служебный и наружу не отдаётся.
func (s *Service) List(ctx context.Context) ([]domain.AppointmentType, error) {
	catalog, bufferTypeID, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	all := catalog.All()
	out := make([]domain.AppointmentType, 0, len(all))
	for _, t := range all {
		if t.ID == bufferTypeID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

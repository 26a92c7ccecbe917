package appointmenttypes

import "errors"

var (
	// ErrBufferTypeMissing возвращается, когда в каталоге провайдера нет сконфигурированного буферного типа
	ErrBufferTypeMissing = errors.New("buffer appointment type missing from catalog")

	// ErrEmptyCatalog возвращается, когда каталог провайдера пуст
	ErrEmptyCatalog = errors.New("provider catalog is empty")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointmenttypes service: internal error")
)

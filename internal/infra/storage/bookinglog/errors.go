package bookinglog

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись журнала не найдена
	ErrRecordNotFound = errors.New("bookinglog.repository: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookinglog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookinglog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookinglog.repository: failed to scan row")
)

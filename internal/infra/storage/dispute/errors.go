package dispute

import "errors"

var (
	// ErrDisputeNotFound возвращается, когда спор не найден
	ErrDisputeNotFound = errors.New("dispute.repository: dispute not found")

	// ErrDuplicateDispute возвращается при попытке открыть второй спор
	// по одному бронированию
	ErrDuplicateDispute = errors.New("dispute.repository: dispute already exists for booking")

	// ErrStatusConflict возвращается, когда условное обновление статуса
	// не применилось (текущий статус не совпал с ожидаемым)
	ErrStatusConflict = errors.New("dispute.repository: status conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dispute.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dispute.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dispute.repository: failed to scan row")
)

package domain

import "errors"

var (
	// ErrBrokerUnavailable — публикация не дошла до брокера (нет соединения, таймаут, отказ брокера). HTTP 503.
	ErrBrokerUnavailable = &labeledError{label: "broker_unavailable", message: "broker unavailable"}

	// ErrSerialization — полезную нагрузку нельзя закодировать для отправки. HTTP 400.
	ErrSerialization = &labeledError{label: "serialization_error", message: "serialization error"}

	// ErrMalformedLocation — сообщение не похоже на "<lat>,<lon>". Консьюмер логирует и пропускает.
	ErrMalformedLocation = &labeledError{label: "malformed_location", message: "malformed location"}
)

// labeledError — ошибка с меткой для метрик (status в bridge_messages_*_total).
type labeledError struct {
	label   string
	message string
}

func (e *labeledError) Error() string {
	return e.message
}

// Label возвращает метку ошибки для метрик.
func (e *labeledError) Label() string {
	return e.label
}

// ErrorLabel достаёт метку из цепочки ошибок: "" для nil, "unknown" для ошибок без метки.
func ErrorLabel(err error) string {
	if err == nil {
		return ""
	}
	var le *labeledError
	if errors.As(err, &le) {
		return le.Label()
	}
	return "unknown"
}

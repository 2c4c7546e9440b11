package events

// Conn подмножество методов *nats.Conn, используемое издателем
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

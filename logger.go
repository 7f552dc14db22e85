package beconv

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is the leveled logger used by the store and the CLI. The codec
// functions in this package never log. Adapters for zap, logrus and slog live
// under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldPath       = "path"
	FieldBackend    = "backend"
	FieldRows       = "rows"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldClientIP   = "client_ip"
	FieldPort       = "port"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentSource    = "source"
	ComponentNormalize = "normalize"
	ComponentReport    = "report"
	ComponentTerm      = "term"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpNormalize = "normalize"
	OpAggregate = "aggregate"
	OpRender    = "render"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

// Fields provides a builder for structured log fields
type Fields map[string]any

// NewFields creates a new Fields instance
func NewFields() Fields {
	return make(Fields)
}

// WithComponent adds the component field
func (f Fields) WithComponent(component string) Fields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds the operation field
func (f Fields) WithOperation(op string) Fields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error field
func (f Fields) WithError(err error) Fields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithRows adds the row-count field
func (f Fields) WithRows(n int) Fields {
	f[FieldRows] = n
	return f
}

// ToSlice converts Fields to a slice for slog
func (f Fields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}

package validation

// Handler receives validation failures as they are reported.
type Handler interface {
	// Append reports one failure. A non-nil return is the terminal failure
	// and stops the validator; nil lets it continue.
	Append(err Error) error
}

// Validator is implemented by anything that can check its own rules and
// report failures to a Handler.
type Validator interface {
	Validate(h Handler) error
}

// Compile-time checks for the shipped policies.
var (
	_ Handler = ThrowsHandler{}
	_ Handler = (*Notification)(nil)
)

// ThrowsHandler fails on the first reported error.
type ThrowsHandler struct{}

// Append returns a *DomainError built from err.
func (ThrowsHandler) Append(err Error) error {
	return With(err)
}

// Notification accumulates every reported error without failing.
// The zero value is ready to use. Not safe for concurrent use.
type Notification struct {
	errors []Error
}

// NewNotification returns an empty Notification.
func NewNotification() *Notification {
	return &Notification{}
}

// Append records err and always returns nil.
func (n *Notification) Append(err Error) error {
	n.errors = append(n.errors, err)
	return nil
}

// Errors returns the collected errors in report order.
func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

// HasErrors reports whether anything was collected.
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Err returns the collected errors as a *DomainError, or nil when empty.
func (n *Notification) Err() error {
	if !n.HasErrors() {
		return nil
	}
	return WithErrors(n.errors)
}

// Validate runs v against h and folds the outcome into a single error.
// For a Notification the collected errors are returned as one *DomainError;
// for any other handler the handler's own terminal error is returned.
func Validate(v Validator, h Handler) error {
	if err := v.Validate(h); err != nil {
		return err
	}
	if n, ok := h.(*Notification); ok {
		return n.Err()
	}
	return nil
}

// Mode names a reporting policy so it can be chosen from configuration.
type Mode string

const (
	// ModeNotification collects every failure before deciding.
	ModeNotification Mode = "notification"
	// ModeThrows fails on the first reported failure.
	ModeThrows Mode = "throws"
)

// IsValid returns true if the mode is one of the defined constants.
func (m Mode) IsValid() bool {
	switch m {
	case ModeNotification, ModeThrows:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// NewHandler returns a fresh Handler for m. Unknown modes fall back to
// ModeNotification.
func NewHandler(m Mode) Handler {
	if m == ModeThrows {
		return ThrowsHandler{}
	}
	return NewNotification()
}

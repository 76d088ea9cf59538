package content

// Level classifies a notification for the operator
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notification reports the outcome of one provider operation
type Notification struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
	Level      Level  `json:"level"`
	Message    string `json:"message"`
	// Local is set when the change only exists in memory
	Local bool `json:"local"`
}

// Notifier receives operation outcomes. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

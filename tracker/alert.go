package tracker

type (
	// Alert is a message for the user, shown by the host for a number of
	// ticks.
	Alert struct {
		Message  string
		Type     AlertType
		Duration int // ticks left
	}

	AlertType int

	// Alerts keeps the alert currently shown. A new alert replaces the shown
	// one only if it is at least as severe or the shown one has expired.
	Alerts Model
)

const (
	None AlertType = iota
	Notify
	Warning
	Error
)

// AlertDuration is the default number of ticks an alert is shown.
const AlertDuration = 3 * 60

func (t AlertType) String() string {
	switch t {
	case Notify:
		return "notify"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "none"
}

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add shows the message for duration ticks.
func (a *Alerts) Add(message string, alertType AlertType, duration int) {
	if a.alert.Duration > 0 && a.alert.Type > alertType {
		return
	}
	a.alert = Alert{Message: message, Type: alertType, Duration: duration}
}

// Current returns the shown alert; ok is false when there is none.
func (a *Alerts) Current() (alert Alert, ok bool) {
	return a.alert, a.alert.Duration > 0 && a.alert.Type != None
}

// tick counts the shown alert down.
func (a *Alerts) tick() {
	if a.alert.Duration > 0 {
		a.alert.Duration--
	}
}

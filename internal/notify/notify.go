// Package notify is the user-facing notification collaborator. Every
// state change in the core surfaces a success or error banner through
// it; the core never consumes a return value, so implementations are
// fire-and-forget.
package notify

import "github.com/sirupsen/logrus"

// Kind of notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// LogNotifier renders notifications as structured log lines. It is
// the default sink for the CLI, where there is no toast UI to drive.
type LogNotifier struct{}

func (LogNotifier) Notify(kind Kind, title, message string) {
	entry := logrus.WithFields(logrus.Fields{
		"notification": kind,
		"title":        title,
	})
	if kind == KindError {
		entry.Error(message)
		return
	}
	entry.Info(message)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Notifications []Notification
}

type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

func (r *Recorder) Notify(kind Kind, title, message string) {
	r.Notifications = append(r.Notifications, Notification{Kind: kind, Title: title, Message: message})
}

// Last returns the most recent notification, or a zero value.
func (r *Recorder) Last() Notification {
	if len(r.Notifications) == 0 {
		return Notification{}
	}
	return r.Notifications[len(r.Notifications)-1]
}

// Discard drops everything. Useful when a test does not care.
type Discard struct{}

func (Discard) Notify(Kind, string, string) {}

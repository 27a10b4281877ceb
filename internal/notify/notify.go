// Package notify is the user-facing notification surface (toasts in the
// original storefront UI).
package notify

import "log"

// Notifier receives the transient messages the cart and checkout flows emit.
// The UI layer renders these as toasts; the headless binary logs them.
type Notifier interface {
	Success(title, description string)
	Info(title, description string)
	Error(title, description string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Success(title, description string) {
	log.Printf("toast success: %s - %s", title, description)
}

func (LogNotifier) Info(title, description string) {
	log.Printf("toast info: %s - %s", title, description)
}

func (LogNotifier) Error(title, description string) {
	log.Printf("toast error: %s - %s", title, description)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string, string) {}
func (Nop) Info(string, string)    {}
func (Nop) Error(string, string)   {}

// Package notify delivers timer notifications through the Fyne app:
// passive desktop notifications for informational messages and a small
// prompt window for actionable ones.
package notify

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Manager implements the notifier consumed by the timer.
type Manager struct {
	app     fyne.App
	appName string
}

// New creates a notification manager.
func New(app fyne.App, appName string) *Manager {
	return &Manager{app: app, appName: appName}
}

// Info shows a passive desktop notification.
func (manager *Manager) Info(message string) {
	manager.app.SendNotification(fyne.NewNotification(manager.appName, message))
}

// Ask shows the message with an accept button. The returned channel receives
// the action label on accept or "" on dismiss, exactly once. Closing the
// window counts as dismissal.
func (manager *Manager) Ask(message, actionLabel string) <-chan string {
	result := make(chan string, 1)

	fyne.Do(func() {
		manager.app.SendNotification(fyne.NewNotification(manager.appName, message))

		window := manager.app.NewWindow(manager.appName)
		resolved := false
		resolve := func(choice string) {
			if resolved {
				return
			}
			resolved = true
			result <- choice
			window.Close()
		}

		accept := widget.NewButton(actionLabel, func() {
			resolve(actionLabel)
		})
		accept.Importance = widget.HighImportance
		dismiss := widget.NewButton("Dismiss", func() {
			resolve("")
		})

		window.SetContent(container.NewVBox(
			widget.NewLabel(message),
			container.NewHBox(accept, dismiss),
		))
		window.SetCloseIntercept(func() {
			resolve("")
		})
		window.Show()
		window.RequestFocus()
	})

	return result
}

package tray

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"pomobar/internal/core/phasetimer"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart    func()
	OnPause    func()
	OnReset    func()
	OnSkip     func()
	OnSettings func()
	OnQuit     func()
}

// Manager renders the timer status in the system tray. It implements the
// display sink the timer pushes to; setters record state and schedule a menu
// rebuild on the UI thread.
type Manager struct {
	mu        sync.Mutex
	app       desktop.App
	callbacks Callbacks
	text      string
	tooltip   string
	color     string
	command   string
	disposed  bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	return &Manager{
		app:       app,
		callbacks: callbacks,
		command:   phasetimer.CommandStart,
	}
}

// SetText updates the status line.
func (manager *Manager) SetText(text string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.text = text
}

// SetTooltip updates the session summary line.
func (manager *Manager) SetTooltip(text string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.tooltip = text
}

// SetColor selects the tray icon for the given state token.
func (manager *Manager) SetColor(token string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.color = token
}

// SetClickAction binds the primary menu item to a timer command.
func (manager *Manager) SetClickAction(command string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.command = command
}

// Show pushes the recorded state to the tray.
func (manager *Manager) Show() {
	fyne.Do(manager.refresh)
}

// Dispose tears the tray menu down; later updates are ignored.
func (manager *Manager) Dispose() {
	manager.mu.Lock()
	manager.disposed = true
	app := manager.app
	manager.mu.Unlock()

	if app != nil {
		fyne.Do(func() {
			app.SetSystemTrayMenu(fyne.NewMenu("Pomobar"))
		})
	}
}

// refresh rebuilds the tray menu from the last recorded state. Runs on the
// UI thread.
func (manager *Manager) refresh() {
	manager.mu.Lock()
	if manager.disposed || manager.app == nil {
		manager.mu.Unlock()
		return
	}
	text := manager.text
	tooltip := manager.tooltip
	color := manager.color
	command := manager.command
	app := manager.app
	callbacks := manager.callbacks
	manager.mu.Unlock()

	actionLabel := "Start"
	action := callbacks.OnStart
	if command == phasetimer.CommandPause {
		actionLabel = "Pause"
		action = callbacks.OnPause
	}

	statusItem := fyne.NewMenuItem(text, nil)
	statusItem.Disabled = true
	summaryItem := fyne.NewMenuItem(tooltip, nil)
	summaryItem.Disabled = true

	app.SetSystemTrayMenu(fyne.NewMenu("Pomobar",
		statusItem,
		summaryItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(actionLabel, action),
		fyne.NewMenuItem("Reset", callbacks.OnReset),
		fyne.NewMenuItem("Skip phase", callbacks.OnSkip),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", callbacks.OnSettings),
		fyne.NewMenuItem("Quit", callbacks.OnQuit),
	))

	if color == phasetimer.ColorActive {
		app.SetSystemTrayIcon(theme.MediaPlayIcon())
	} else {
		app.SetSystemTrayIcon(theme.MediaPauseIcon())
	}
}

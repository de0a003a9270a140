package main

import (
	"log"

	"pomobar/internal/core/phasetimer"
	"pomobar/internal/platform"
	"pomobar/internal/storage"
	"pomobar/internal/ui/notify"
	"pomobar/internal/ui/preferences"
	"pomobar/internal/ui/tray"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "Pomobar"

func main() {
	lock, err := platform.LockInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.pomobar.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Pomobar is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settingsPath, err := storage.DefaultPath(appName)
	if err != nil {
		log.Printf("settings path: %v", err)
	}
	settings := preferences.DefaultSettings()
	if settingsPath != "" {
		if settings, err = storage.Load(settingsPath); err != nil {
			log.Printf("load settings: %v", err)
		}
	}

	// The tray callbacks close over the timer; it is assigned below, before
	// the UI starts dispatching events.
	var timer *phasetimer.Timer
	var prefsWindow *preferences.Window

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnStart: func() { timer.Start() },
		OnPause: func() { timer.Pause() },
		OnReset: func() { timer.Reset() },
		OnSkip:  func() { timer.Skip() },
		OnSettings: func() {
			prefsWindow.Show()
		},
		OnQuit: func() {
			timer.Dispose()
			fyneApp.Quit()
		},
	})

	notifier := notify.New(fyneApp, appName)
	timer = phasetimer.New(settings.PhaseConfig(), platform.NewTicker(), trayManager, notifier)

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		timer.UpdateConfig(updated.PhaseConfig())
		if settingsPath == "" {
			return
		}
		if err := storage.Save(settingsPath, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	fyneApp.Run()
}

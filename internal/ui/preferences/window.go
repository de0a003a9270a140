package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	workEntry  *widget.Entry
	breakEntry *widget.Entry
}

// New creates a settings window. onSave receives the updated settings when
// the user saves; invalid entries keep their previous value.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomobar Settings")

	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	workEntry.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	breakEntry.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))

	form := container.NewVBox(
		widget.NewLabelWithStyle("Phase lengths", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work phase"), workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break phase"), breakEntry, widget.NewLabel("min")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 180))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		workEntry:  workEntry,
		breakEntry: breakEntry,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.breakEntry.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workEntry.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

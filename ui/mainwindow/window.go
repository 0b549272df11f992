// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/color"
	"log"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"polysketch/internal/app"
	"polysketch/internal/version"
	"polysketch/pkg/geometry"
	"polysketch/ui/canvas"
	"polysketch/ui/prefs"
)

const (
	prefKeyFillColor    = "fillColor"
	prefKeyStrokeColor  = "strokeColor"
	prefKeyLineWidth    = "lineWidth"
	prefKeyWindowWidth  = "windowWidth"
	prefKeyWindowHeight = "windowHeight"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	state  *app.State
	prefs  *prefs.Prefs
	canvas *canvas.EditorCanvas

	statusBar *widget.Label
	undoBtn   *widget.Button
	redoBtn   *widget.Button

	prefsDirty atomic.Bool
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(version.Name)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.restoreStyle()
	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()

	mw.Resize(fyne.NewSize(
		float32(appPrefs.FloatWithFallback(prefKeyWindowWidth, 1024)),
		float32(appPrefs.FloatWithFallback(prefKeyWindowHeight, 720)),
	))
	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.Close()
	})

	return mw
}

// restoreStyle applies the persisted render style before the first paint.
func (mw *MainWindow) restoreStyle() {
	style := app.DefaultStyle()
	style.FillColor = mw.prefs.Color(prefKeyFillColor, style.FillColor)
	style.StrokeColor = mw.prefs.Color(prefKeyStrokeColor, style.StrokeColor)
	style.LineWidth = int(mw.prefs.FloatWithFallback(prefKeyLineWidth, float64(style.LineWidth)))
	mw.state.SetStyle(style)
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewEditorCanvas(mw.state)
	mw.canvas.SetHoverHandler(mw.onHover, mw.onHoverEnd)

	mw.statusBar = widget.NewLabel("Ready")

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with edit and style controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() {
		mw.state.Editor.Undo()
	})
	mw.redoBtn = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() {
		mw.state.Editor.Redo()
	})
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), mw.onClear)

	fillBtn := widget.NewButtonWithIcon("Fill", theme.ColorPaletteIcon(), func() {
		mw.pickColor("Fill Color", func(style *app.Style, c color.RGBA) {
			style.FillColor = c
		})
	})
	strokeBtn := widget.NewButtonWithIcon("Stroke", theme.ColorPaletteIcon(), func() {
		mw.pickColor("Stroke Color", func(style *app.Style, c color.RGBA) {
			style.StrokeColor = c
		})
	})

	widthSlider := widget.NewSlider(1, 8)
	widthSlider.Step = 1
	widthSlider.SetValue(float64(mw.state.Style().LineWidth))
	widthSlider.OnChanged = func(v float64) {
		mw.updateStyle(func(style *app.Style) {
			style.LineWidth = int(v)
		})
	}

	mw.updateEditButtons()

	return container.NewBorder(nil, nil,
		container.NewHBox(mw.undoBtn, mw.redoBtn, clearBtn, widget.NewSeparator(), fillBtn, strokeBtn),
		nil,
		container.NewBorder(nil, nil, widget.NewLabel("Width:"), nil, widthSlider),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	undoItem := fyne.NewMenuItem("Undo", func() { mw.state.Editor.Undo() })
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}
	redoItem := fyne.NewMenuItem("Redo", func() { mw.state.Editor.Redo() })
	redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}
	clearItem := fyne.NewMenuItem("Clear Sketch", mw.onClear)

	editMenu := fyne.NewMenu("Edit",
		undoItem,
		redoItem,
		fyne.NewMenuItemSeparator(),
		clearItem,
	)

	aboutItem := fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About",
			fmt.Sprintf("%s v%s\nbuilt %s", version.Name, version.Version, version.BuildTime),
			mw.Window)
	})
	helpMenu := fyne.NewMenu("Help", aboutItem)

	mw.SetMainMenu(fyne.NewMainMenu(editMenu, helpMenu))
}

// setupShortcuts registers the keyboard shortcuts on the window canvas so
// they work without opening the menu.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.state.Editor.Undo() },
	)
	mw.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.state.Editor.Redo() },
	)
}

// setupEventHandlers wires application events to UI updates.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventGeometryChanged, func(interface{}) {
		mw.updateEditButtons()
		mw.showSummary()
	})
	mw.state.On(app.EventStyleChanged, func(interface{}) {
		mw.persistStyle()
	})
}

func (mw *MainWindow) onClear() {
	if mw.state.Editor.Clear() {
		log.Println("Sketch cleared")
	}
}

// pickColor opens a color picker and applies the chosen color via apply.
func (mw *MainWindow) pickColor(title string, apply func(style *app.Style, c color.RGBA)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		mw.updateStyle(func(style *app.Style) {
			apply(style, rgba)
		})
	}, mw.Window)
	picker.Advanced = true
	picker.Show()
}

func (mw *MainWindow) updateStyle(mutate func(style *app.Style)) {
	style := mw.state.Style()
	mutate(&style)
	mw.state.SetStyle(style)
}

// persistStyle mirrors the current style into preferences; the hot-reload
// tick (or window close) flushes them to disk.
func (mw *MainWindow) persistStyle() {
	style := mw.state.Style()
	mw.prefs.SetColor(prefKeyFillColor, style.FillColor)
	mw.prefs.SetColor(prefKeyStrokeColor, style.StrokeColor)
	mw.prefs.SetFloat(prefKeyLineWidth, float64(style.LineWidth))
	mw.prefsDirty.Store(true)
}

func (mw *MainWindow) updateEditButtons() {
	if mw.undoBtn == nil {
		return
	}
	if mw.state.Editor.CanUndo() {
		mw.undoBtn.Enable()
	} else {
		mw.undoBtn.Disable()
	}
	if mw.state.Editor.CanRedo() {
		mw.redoBtn.Enable()
	} else {
		mw.redoBtn.Disable()
	}
}

// onHover reports the pointer position and, when the pointer is inside a
// committed polygon, that polygon's area.
func (mw *MainWindow) onHover(p geometry.Point2D) {
	snap := mw.state.Editor.Snapshot()
	for i := len(snap.Committed) - 1; i >= 0; i-- {
		if geometry.PointInPolygon(p, snap.Committed[i]) {
			mw.statusBar.SetText(fmt.Sprintf("%.0f, %.0f — polygon %d, area %.0f, perimeter %.0f",
				p.X, p.Y, i+1, geometry.Area(snap.Committed[i]), geometry.Perimeter(snap.Committed[i])))
			return
		}
	}
	mw.statusBar.SetText(fmt.Sprintf("%.0f, %.0f", p.X, p.Y))
}

func (mw *MainWindow) onHoverEnd() {
	mw.showSummary()
}

func (mw *MainWindow) showSummary() {
	snap := mw.state.Editor.Snapshot()
	if len(snap.Active) > 0 {
		mw.statusBar.SetText(fmt.Sprintf("%d polygons — drawing, %d points",
			len(snap.Committed), len(snap.Active)))
		return
	}
	mw.statusBar.SetText(fmt.Sprintf("%d polygons", len(snap.Committed)))
}

// SavePreferences writes preferences to disk immediately.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefKeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefKeyWindowHeight, float64(size.Height))
	mw.prefsDirty.Store(false)
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// SavePreferencesIfChanged writes preferences only when something changed
// since the last save. Safe to call from a background goroutine.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if mw.prefsDirty.CompareAndSwap(true, false) {
		if err := mw.prefs.Save(); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	}
}

// Package main provides the entry point for the PolySketch application.
package main

import (
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"polysketch/internal/app"
	"polysketch/internal/version"
	"polysketch/ui/mainwindow"
	"polysketch/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", version.Name, version.Version)

	fyneApp := fyneapp.NewWithID("io.polysketch.app")
	fyneApp.Settings().SetTheme(&app.SketchTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	setupHotReload(win)

	win.Show()
	fyneApp.Run()
}

// setupHotReload configures automatic change detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnTick(func() {
		win.SavePreferencesIfChanged()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected, restart to pick it up")
	})

	reloader.Start()
}

package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// showWindow displays img until the window is closed.
func showWindow(img image.Image, title string) error {
	if title == "" {
		title = "xcsvplot"
	}
	a := app.NewWithID("com.github.paul-breen.xcsvplot")
	w := a.NewWindow(title)
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	w.SetContent(c)
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
	return nil
}

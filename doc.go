/*
Package facedetect detects human faces in a still image, a video file or a live camera stream,
draws a bounding box around each of them and shows the result in a window.

The package provides a command line interface, supporting various flags for selecting the source and the detector.
To check the supported commands type:

	$ facedetect --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/facedetect"
	)

	func main() {
		src, err := facedetect.OpenImage("people.jpg")
		if err != nil {
			// handle the error
		}
		det, err := facedetect.NewPigoDetector("data/facefinder", facedetect.DefaultDetectorParams)
		if err != nil {
			// handle the error
		}
		defer det.Close()

		cfg := facedetect.ConfigFor(facedetect.Image, facedetect.DefaultMaxWidth, facedetect.DefaultMaxHeight)
		p, err := facedetect.NewPipeline(cfg, src, det, display)
		if err != nil {
			// handle the error
		}
		if err := p.RunOnce(); err != nil {
			fmt.Printf("Error detecting faces: %s", err.Error())
		}
	}

The display is any value implementing the Display interface, like the Gio window of the gui package.
*/
package facedetect

// Package cv binds the OpenCV backed collaborators of the face detection
// pipeline: video file and camera capture, the Haar cascade classifier and
// the highgui display window. It requires gocv and an OpenCV installation.
package cv

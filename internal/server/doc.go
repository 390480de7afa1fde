// Package server exposes the transcription pipeline over HTTP: a small
// HTML form for interactive use and a JSON endpoint for batch requests.
package server

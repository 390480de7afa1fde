// Package api defines the JSON wire types for the transcription endpoint
// and their conversions from pipeline outcomes.
package api

// Package services holds cross-cutting helpers for the adapter layer:
// the error taxonomy shared by the fetcher, transcriber, and subtitle
// writer, and context annotation for request correlation.
package services

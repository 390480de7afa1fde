// Package language canonicalizes user-supplied language hints into ISO
// 639-1 codes and renders human-readable names for output.
package language

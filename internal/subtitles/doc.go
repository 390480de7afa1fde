// Package subtitles writes and parses SRT subtitle files.
//
// Write serializes transcript segments into numbered SRT cues; Parse is the
// inverse and recovers the segment sequence from a file on disk. Timestamps
// use the SRT comma-millisecond form HH:MM:SS,mmm.
package subtitles

// Package filehandler provides a file destination that appends formatted
// lines and rotates the file once it would grow beyond a maximum size.
//
// Rotated files are renamed to <name>.<timestamp>; only the newest
// MaxBackups of them are kept. Writes go through a bufio.Writer, so call
// Sync or Close to make sure everything reached the disk.
package filehandler

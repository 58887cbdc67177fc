// Package multihandler fans one message out to several destinations.
//
// Tee combines plain sinks; MultiHandler combines handlers and closes them
// together.
package multihandler

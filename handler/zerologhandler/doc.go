// Package zerologhandler forwards clog messages to a zerolog.Logger.
//
// Events are started with Logger.WithLevel, which never exits or panics,
// so clog Fatal keeps its zerolog fatal level. Unknown messages carry no
// level field.
package zerologhandler

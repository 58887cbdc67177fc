// Package zaphandler forwards clog messages to a zap.Logger.
//
// The message location and tag become structured fields:
//
//	{"level":"warn","msg":"disk almost full","tag":"IO","file":"disk.go","line":42,"func":"disk.check"}
//
// Fatal messages are logged at error level so that a clog Fatal never
// terminates the process through zap.
package zaphandler

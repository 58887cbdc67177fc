// Package logrushandler forwards clog messages to a logrus.Logger.
package logrushandler

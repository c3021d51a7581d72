package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

var disabled bool

func init() {
	// Per-module filtering happens in Module.Enabled, logrus must let
	// everything through.
	logrus.SetLevel(logrus.DebugLevel)
}

// Disable turns off all logging, including warnings and errors.
func Disable() {
	disabled = true
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// Contexter is implemented by objects which add fields to every log line
// (for instance the variant currently running).
type Contexter interface {
	AddLogContext(z *EntryZ)
}

var contexts []Contexter

// AddContext registers c so that its fields are added to all log entries.
func AddContext(c Contexter) {
	contexts = append(contexts, c)
}

// RemoveContext unregisters a Contexter previously added with AddContext.
func RemoveContext(c Contexter) {
	for i := range contexts {
		if contexts[i] == c {
			contexts = append(contexts[:i], contexts[i+1:]...)
			return
		}
	}
}

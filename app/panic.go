package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
)

// recoverStep turns a panic inside step into a logged error so the host
// loop shuts down cleanly instead of leaving a frozen window.
func recoverStep(log zerolog.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			ev := log.Error().Str("panic", fmt.Sprint(r))
			if stack := strings.TrimSpace(string(debug.Stack())); stack != "" {
				ev = ev.Strs("stack", strings.Split(stack, "\n"))
			}
			ev.Msg("frame panicked")
			err = fmt.Errorf("frame panicked: %v", r)
		}()
		return step()
	}
}

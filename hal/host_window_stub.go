//go:build !cgo

package hal

import "errors"

func RunWindow(_ Options, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use -headless")
}

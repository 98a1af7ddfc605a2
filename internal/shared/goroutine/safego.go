// Package goroutine launches background goroutines that log panics instead of crashing.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/smmpanel/panel/internal/shared/logger"
)

// Go runs fn in a new goroutine. A panic in fn is logged with its stack and
// reported through onPanic when it is not nil.
func Go(log logger.Interface, name string, fn func(), onPanic func(recovered any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				if onPanic != nil {
					onPanic(r)
				}
			}
		}()
		fn()
	}()
}

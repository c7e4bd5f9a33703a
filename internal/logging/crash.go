package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
)

// RecoverPanic recovers a panic in the calling goroutine, logs it with a stack
// trace and hands the recovered value to onPanic (if non-nil).
// It must be called directly via defer.
//
//	defer logging.RecoverPanic(ctx, "nowplaying", func(error) { emitEmpty() })
func RecoverPanic(ctx context.Context, component string, onPanic func(err error)) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}

	FromContext(ctx).Error().
		Str(FieldComponent, component).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Err(err).
		Msg("recovered from panic")

	if onPanic != nil {
		onPanic(err)
	}
}

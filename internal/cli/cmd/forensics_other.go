//go:build !linux && !darwin

package cmd

import (
	"context"
	"runtime/debug"
)

func enableCrashForensics(context.Context) {
	debug.SetTraceback("crash")
}

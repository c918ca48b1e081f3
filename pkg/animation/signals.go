package animation

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/motion/pkg/logging"
)

// Animator lifecycle signals. Hook them with capitan.Hook to observe every
// animator in a process without registering per-animator observers.
var (
	// AnimatorBegan is emitted on the first frame of a tween.
	AnimatorBegan = capitan.NewSignal(
		"motion.animator.began",
		"Animator tween began",
	)

	// AnimatorEnded is emitted when a tween reaches its state.
	AnimatorEnded = capitan.NewSignal(
		"motion.animator.ended",
		"Animator tween ended",
	)

	// AnimatorInterrupted is emitted when a tween is replaced or cancelled.
	AnimatorInterrupted = capitan.NewSignal(
		"motion.animator.interrupted",
		"Animator tween interrupted",
	)
)

// Signal field keys.
var (
	// KeyFastener is the animator name.
	KeyFastener = capitan.NewStringKey("fastener")

	// KeyDuration is the tween duration.
	KeyDuration = capitan.NewDurationKey("duration")
)

func emitBegan(name string, d time.Duration) {
	capitan.Emit(context.Background(), AnimatorBegan,
		KeyFastener.Field(name),
		KeyDuration.Field(d),
	)
}

func emitEnded(name string) {
	capitan.Emit(context.Background(), AnimatorEnded, KeyFastener.Field(name))
}

func emitInterrupted(name string) {
	capitan.Emit(context.Background(), AnimatorInterrupted, KeyFastener.Field(name))
}

func logger() *slog.Logger {
	return logging.Logger()
}

// Package reconcile decides how the music track is stretched against
// the assembled video: whether it must be looped to cover the full
// video length, and where the trailing fade-out begins.
//
// The decision is a pure function of the two durations and the fade
// length, with no engine involvement, so it can be tested exhaustively.
package reconcile

// Decision describes how the music track is fitted to the video.
type Decision struct {
	// NeedsLoop is true when the music is shorter than the video and
	// must be seamlessly looped before mixing.
	NeedsLoop bool

	// LoopTarget is the duration, in seconds, the looped audio artifact
	// must reach. Zero when NeedsLoop is false.
	LoopTarget float64

	// FadeStart is the offset, in seconds, at which the audio fade-out
	// begins: video duration minus fade duration, exactly. A fade
	// longer than the video yields a negative offset; it is reported
	// as-is, unclamped.
	FadeStart float64
}

// Reconcile computes the mixing decision for the given video duration,
// music duration, and fade-out duration (all in fractional seconds).
func Reconcile(videoDuration, audioDuration, fadeDuration float64) Decision {
	d := Decision{
		NeedsLoop: audioDuration < videoDuration,
		FadeStart: videoDuration - fadeDuration,
	}

	if d.NeedsLoop {
		d.LoopTarget = videoDuration
	}

	return d
}

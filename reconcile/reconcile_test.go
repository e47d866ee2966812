package reconcile

import "testing"

func TestReconcile(t *testing.T) {
	tests := []struct {
		name           string
		videoDuration  float64
		audioDuration  float64
		fadeDuration   float64
		wantNeedsLoop  bool
		wantLoopTarget float64
		wantFadeStart  float64
	}{
		{
			name:           "music shorter than video loops",
			videoDuration:  60,
			audioDuration:  45,
			fadeDuration:   3,
			wantNeedsLoop:  true,
			wantLoopTarget: 60,
			wantFadeStart:  57,
		},
		{
			name:          "music longer than video plays direct",
			videoDuration: 10,
			audioDuration: 15,
			fadeDuration:  3,
			wantNeedsLoop: false,
			wantFadeStart: 7,
		},
		{
			name:          "equal durations do not loop",
			videoDuration: 30,
			audioDuration: 30,
			fadeDuration:  3,
			wantNeedsLoop: false,
			wantFadeStart: 27,
		},
		{
			name:           "fractional durations preserved",
			videoDuration:  92.5,
			audioDuration:  61.75,
			fadeDuration:   2.5,
			wantNeedsLoop:  true,
			wantLoopTarget: 92.5,
			wantFadeStart:  90,
		},
		{
			name:          "fade longer than video goes negative",
			videoDuration: 2,
			audioDuration: 10,
			fadeDuration:  3,
			wantNeedsLoop: false,
			wantFadeStart: -1,
		},
		{
			name:          "zero fade starts at video end",
			videoDuration: 20,
			audioDuration: 25,
			fadeDuration:  0,
			wantNeedsLoop: false,
			wantFadeStart: 20,
		},
		{
			name:           "zero-length music loops",
			videoDuration:  5,
			audioDuration:  0,
			fadeDuration:   3,
			wantNeedsLoop:  true,
			wantLoopTarget: 5,
			wantFadeStart:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Reconcile(tt.videoDuration, tt.audioDuration, tt.fadeDuration)

			if d.NeedsLoop != tt.wantNeedsLoop {
				t.Errorf("NeedsLoop = %v; want %v", d.NeedsLoop, tt.wantNeedsLoop)
			}
			if d.LoopTarget != tt.wantLoopTarget {
				t.Errorf("LoopTarget = %v; want %v", d.LoopTarget, tt.wantLoopTarget)
			}
			if d.FadeStart != tt.wantFadeStart {
				t.Errorf("FadeStart = %v; want %v", d.FadeStart, tt.wantFadeStart)
			}
		})
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	a := Reconcile(92.48, 61.7, 3)
	b := Reconcile(92.48, 61.7, 3)
	if a != b {
		t.Errorf("Reconcile is not deterministic: %+v != %+v", a, b)
	}
}

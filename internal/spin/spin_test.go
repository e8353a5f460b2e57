package spin

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func testAnimator(seed int64) *Animator {
	return New(DefaultPolicy(), WithRand(rand.New(rand.NewSource(seed))))
}

func TestEaseOutCubic_Endpoints(t *testing.T) {
	t.Parallel()

	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %v, want 1", got)
	}
}

func TestEaseOutCubic_Monotone(t *testing.T) {
	t.Parallel()

	const steps = 1000
	prev := EaseOutCubic(0)
	for i := 1; i <= steps; i++ {
		p := float64(i) / steps
		eased := EaseOutCubic(p)
		if eased < prev {
			t.Fatalf("EaseOutCubic not monotone: eased(%v) = %v < %v", p, eased, prev)
		}
		prev = eased
	}
}

func TestEaseOutCubic_Decelerates(t *testing.T) {
	t.Parallel()

	// ease-out: the first half covers more eased distance than the second
	firstHalf := EaseOutCubic(0.5) - EaseOutCubic(0)
	secondHalf := EaseOutCubic(1) - EaseOutCubic(0.5)
	if firstHalf <= secondHalf {
		t.Errorf("expected deceleration, first half %v <= second half %v", firstHalf, secondHalf)
	}
}

func TestStart_ParametersWithinPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	now := time.Unix(1000, 0)

	for seed := int64(1); seed <= 50; seed++ {
		a := testAnimator(seed)
		job, ok := a.Start(0.5, 6, now)
		if !ok {
			t.Fatalf("seed %d: Start() = false", seed)
		}

		if job.Duration < policy.MinDuration || job.Duration > policy.MaxDuration {
			t.Errorf("seed %d: duration %v outside [%v, %v]", seed, job.Duration, policy.MinDuration, policy.MaxDuration)
		}

		wholeTurns := math.Floor(job.TotalRotation / (2 * math.Pi))
		if int(wholeTurns) < policy.MinRevolutions || int(wholeTurns) > policy.MaxRevolutions {
			t.Errorf("seed %d: %v whole turns outside [%d, %d]", seed, wholeTurns, policy.MinRevolutions, policy.MaxRevolutions)
		}

		if job.StartAngle != 0.5 {
			t.Errorf("seed %d: start angle %v, want 0.5", seed, job.StartAngle)
		}
		if job.ID == uuid.Nil {
			t.Errorf("seed %d: job has nil ID", seed)
		}
	}
}

func TestStart_NoOpWhileSpinning(t *testing.T) {
	t.Parallel()

	a := testAnimator(1)
	now := time.Unix(1000, 0)

	first, ok := a.Start(0, 4, now)
	if !ok {
		t.Fatal("first Start() = false")
	}

	if _, ok := a.Start(1, 4, now.Add(time.Second)); ok {
		t.Error("Start() while spinning succeeded, want no-op")
	}

	// the in-flight job is untouched
	current, ok := a.Job()
	if !ok {
		t.Fatal("Job() = false while spinning")
	}
	if diff := cmp.Diff(first, current); diff != "" {
		t.Errorf("job changed by rejected Start (-want +got):\n%s", diff)
	}
}

func TestStart_NoOpWithoutSectors(t *testing.T) {
	t.Parallel()

	a := testAnimator(1)
	if _, ok := a.Start(0, 0, time.Unix(1000, 0)); ok {
		t.Error("Start() with zero sectors succeeded, want no-op")
	}
	if a.Spinning() {
		t.Error("Spinning() = true after rejected start")
	}
}

func TestStep_AnglesIncreaseAndFinish(t *testing.T) {
	t.Parallel()

	a := testAnimator(42)
	start := time.Unix(1000, 0)

	job, ok := a.Start(1.0, 8, start)
	if !ok {
		t.Fatal("Start() = false")
	}

	const frames = 50
	prev := job.StartAngle
	for i := 1; i < frames; i++ {
		at := start.Add(job.Duration * time.Duration(i) / frames)
		angle, done := a.Step(at)
		if done {
			t.Fatalf("frame %d: done before full duration", i)
		}
		if angle < prev {
			t.Fatalf("frame %d: angle %v < previous %v, not monotone", i, angle, prev)
		}
		prev = angle
	}

	final, done := a.Step(start.Add(job.Duration))
	if !done {
		t.Fatal("Step at full duration: done = false")
	}
	if final < 0 || final >= 2*math.Pi {
		t.Errorf("final angle %v not normalized to [0, 2π)", final)
	}

	want := math.Mod(job.StartAngle+job.TotalRotation, 2*math.Pi)
	if diff := cmp.Diff(want, final, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("final angle mismatch:\n%s", diff)
	}

	if a.Spinning() {
		t.Error("Spinning() = true after completion")
	}
}

func TestStep_IdleReportsDone(t *testing.T) {
	t.Parallel()

	a := testAnimator(7)
	if _, done := a.Step(time.Unix(1000, 0)); !done {
		t.Error("Step() while idle: done = false")
	}
}

func TestStep_CompletionFreesAnimatorForNextSpin(t *testing.T) {
	t.Parallel()

	a := testAnimator(3)
	start := time.Unix(1000, 0)

	job, ok := a.Start(0, 4, start)
	if !ok {
		t.Fatal("Start() = false")
	}

	final, done := a.Step(start.Add(job.Duration + time.Second))
	if !done {
		t.Fatal("overshoot step: done = false")
	}

	// a fresh spin starts from where the last one ended
	next, ok := a.Start(final, 4, start.Add(10*time.Second))
	if !ok {
		t.Fatal("Start() after completion = false")
	}
	if next.StartAngle != final {
		t.Errorf("next start angle = %v, want %v", next.StartAngle, final)
	}
	if next.ID == job.ID {
		t.Error("new job reused the previous job ID")
	}
}

func TestJob_ProgressClamped(t *testing.T) {
	t.Parallel()

	job := Job{
		StartedAt: time.Unix(1000, 0),
		Duration:  4 * time.Second,
	}

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"before start", time.Unix(999, 0), 0},
		{"at start", time.Unix(1000, 0), 0},
		{"halfway", time.Unix(1002, 0), 0.5},
		{"at end", time.Unix(1004, 0), 1},
		{"after end", time.Unix(1010, 0), 1},
	}
	for _, tt := range tests {
		if got := job.Progress(tt.at); got != tt.want {
			t.Errorf("%s: Progress() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

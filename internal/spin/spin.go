// Package spin drives the wheel's spin lifecycle: it picks a randomized
// duration and rotation for each spin and converts elapsed wall-clock
// time into an eased rotation angle.
//
// The animator is advanced by timestamps handed to Step rather than by
// its own timers, so a frame scheduler (tea.Tick in the TUI, nothing in
// headless mode) owns the pacing and tests can drive it with a fake clock.
package spin

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

// Policy bounds the randomized spin parameters.
type Policy struct {
	MinDuration time.Duration
	MaxDuration time.Duration

	// Revolution counts are inclusive integers. The continuous variant
	// would not change winner resolution (whole turns drop out mod 2π),
	// but integer turns keep the headline numbers readable in logs.
	MinRevolutions int
	MaxRevolutions int
}

func DefaultPolicy() Policy {
	return Policy{
		MinDuration:    3 * time.Second,
		MaxDuration:    6 * time.Second,
		MinRevolutions: 5,
		MaxRevolutions: 10,
	}
}

// Job is the ephemeral state of one spin, created by Start and discarded
// when the animation completes.
type Job struct {
	ID            uuid.UUID
	StartAngle    float64
	TotalRotation float64
	Duration      time.Duration
	StartedAt     time.Time
}

// Progress returns linear progress through the job in [0, 1].
func (j Job) Progress(now time.Time) float64 {
	if j.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(j.StartedAt)) / float64(j.Duration)
	return math.Min(math.Max(p, 0), 1)
}

// AngleAt returns the wheel angle at the given instant,
// startAngle + totalRotation·easeOutCubic(progress).
func (j Job) AngleAt(now time.Time) float64 {
	return j.StartAngle + j.TotalRotation*EaseOutCubic(j.Progress(now))
}

// FinalAngle is the angle the wheel comes to rest at, normalized to [0, 2π).
func (j Job) FinalAngle() float64 {
	return wheel.Normalize(j.StartAngle + j.TotalRotation)
}

// Animator is a two-state machine, Idle and Spinning. A non-nil job means
// Spinning.
type Animator struct {
	policy Policy
	rng    *rand.Rand
	job    *Job
}

type Option func(*Animator)

// WithRand injects the random source, for reproducible spins.
func WithRand(rng *rand.Rand) Option {
	return func(a *Animator) {
		a.rng = rng
	}
}

func New(policy Policy, opts ...Option) *Animator {
	a := &Animator{
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animator) Spinning() bool {
	return a.job != nil
}

// Job returns the in-flight job while Spinning.
func (a *Animator) Job() (Job, bool) {
	if a.job == nil {
		return Job{}, false
	}
	return *a.job, true
}

// Start begins a spin from startAngle. It is a no-op returning ok=false
// while already Spinning or when the wheel has no sectors (which would
// make the sector angle undefined).
func (a *Animator) Start(startAngle float64, sectors int, now time.Time) (Job, bool) {
	if a.job != nil || sectors <= 0 {
		return Job{}, false
	}

	var (
		durationRange = a.policy.MaxDuration - a.policy.MinDuration
		duration      = a.policy.MinDuration + time.Duration(a.rng.Int63n(int64(durationRange)+1))
		revolutions   = a.policy.MinRevolutions + a.rng.Intn(a.policy.MaxRevolutions-a.policy.MinRevolutions+1)
		// extra fractional turn so the landing sector stays unpredictable
		rotation = float64(revolutions)*2*math.Pi + a.rng.Float64()*2*math.Pi
	)

	a.job = &Job{
		ID:            uuid.New(),
		StartAngle:    startAngle,
		TotalRotation: rotation,
		Duration:      duration,
		StartedAt:     now,
	}
	return *a.job, true
}

// Step advances the spin to the given instant and returns the wheel angle
// for this frame. done is true exactly once, on the step that reaches
// full progress: the animator transitions to Idle, discards the job, and
// returns the normalized final angle. Calling Step while Idle returns
// done=true with ok-to-ignore angle 0.
func (a *Animator) Step(now time.Time) (angle float64, done bool) {
	if a.job == nil {
		return 0, true
	}

	if a.job.Progress(now) < 1 {
		return a.job.AngleAt(now), false
	}

	final := a.job.FinalAngle()
	a.job = nil
	return final, true
}

// EaseOutCubic maps linear progress to decelerating progress,
// 1 − (1−p)³. Monotone on [0, 1] with eased(0)=0 and eased(1)=1.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

package run_test

import (
	"context"
	"math/rand"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/step"
)

type recorder struct {
	mu     sync.Mutex
	frames []step.Frame
	hook   func(step.Frame)
}

func (r *recorder) Render(f step.Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	hook := r.hook
	r.mu.Unlock()
	if hook != nil {
		hook(f)
	}
}

func (r *recorder) Frames() []step.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]step.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var example = seq.Sequence{5, 3, 8, 1}

func referenceFrames(id string, input seq.Sequence) []step.Frame {
	rec := &recorder{}
	c := run.New(run.WithSink(rec), run.WithDelay(0))
	c.Load(input)
	_, err := c.Run(context.Background(), id)
	Expect(err).NotTo(HaveOccurred())
	return rec.Frames()
}

var _ = Describe("Controller", func() {
	var (
		rec  *recorder
		ctrl *run.Controller
		ctx  context.Context
	)

	BeforeEach(func() {
		rec = &recorder{}
		ctrl = run.New(run.WithSink(rec), run.WithDelay(0))
		ctx = context.Background()
	})

	Describe("idle", func() {
		It("reports the loaded sequence as ready", func() {
			ctrl.Load(example)

			snap := ctrl.Snapshot()
			Expect(snap.State).To(Equal(run.Idle))
			Expect(snap.Status).To(Equal("Ready"))
			Expect(snap.Operation).To(Equal("Ready"))
			Expect(snap.Values).To(Equal(example))
			Expect(snap.Counters).To(Equal(seq.Counters{}))
			Expect(snap.Report).To(BeNil())
		})

		It("copies the loaded sequence", func() {
			input := example.Clone()
			ctrl.Load(input)
			input[0] = 99
			Expect(ctrl.Snapshot().Values[0]).To(Equal(5))
		})

		It("generates sequences of the requested size", func() {
			ctrl = run.New(run.WithRand(rand.New(rand.NewSource(1))))
			s := ctrl.Generate(30)
			Expect(s).To(HaveLen(30))
			Expect(ctrl.Snapshot().Values).To(Equal(s))
			for _, v := range s {
				Expect(v).To(BeNumerically(">=", seq.MinValue))
				Expect(v).To(BeNumerically("<=", seq.MaxValue))
			}
		})

		It("rejects pause", func() {
			_, err := ctrl.TogglePause()
			Expect(err).To(MatchError(run.ErrInvalidState))
		})

		It("rejects unknown algorithms without changing state", func() {
			ctrl.Load(example)
			err := ctrl.Start(ctx, "bogo")
			Expect(err).To(MatchError(algo.ErrUnknown))
			Expect(ctrl.State()).To(Equal(run.Idle))
		})

		It("maps speed to delay", func() {
			ctrl.SetSpeed(100)
			Expect(ctrl.Delay()).To(Equal(110 * time.Millisecond))
			ctrl.SetSpeed(200)
			Expect(ctrl.Delay()).To(Equal(10 * time.Millisecond))
		})
	})

	Describe("natural completion", func() {
		It("sorts the worked example", func() {
			ctrl.Load(example)
			snap, err := ctrl.Run(ctx, "bubble")
			Expect(err).NotTo(HaveOccurred())

			Expect(snap.State).To(Equal(run.Finished))
			Expect(snap.Status).To(Equal("Sorted"))
			Expect(snap.Values).To(Equal(seq.Sequence{1, 3, 5, 8}))
			Expect(snap.Counters).To(Equal(seq.Counters{Comparisons: 6, Swaps: 4}))
			Expect(snap.Algorithm.ID).To(Equal("bubble"))
			Expect(snap.Operation).To(Equal("Array is fully sorted"))
			Expect(snap.Report).NotTo(BeNil())
			Expect(snap.Report.TotalOps).To(Equal(10))
			Expect(snap.Report.Label).To(Equal("O(n log n) - Log-linear"))
		})

		It("ends with a final frame marking every index sorted", func() {
			ctrl.Load(example)
			_, err := ctrl.Run(ctx, "quick")
			Expect(err).NotTo(HaveOccurred())

			frames := rec.Frames()
			Expect(frames).NotTo(BeEmpty())
			last := frames[len(frames)-1]
			Expect(last.Final).To(BeTrue())
			Expect(last.Kind).To(Equal(step.Finish))
			Expect(last.Sorted).To(ConsistOf(0, 1, 2, 3))
			Expect(last.Pivot).To(Equal(-1))
			Expect(last.Step).To(Equal(len(frames) - 1))
			for _, f := range frames[:len(frames)-1] {
				Expect(f.Final).To(BeFalse())
			}
		})

		It("finishes empty input immediately", func() {
			ctrl.Load(nil)
			snap, err := ctrl.Run(ctx, "merge")
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.State).To(Equal(run.Finished))
			Expect(snap.Counters).To(Equal(seq.Counters{}))
			Expect(rec.Len()).To(Equal(1))
		})

		It("allows a new run after finishing", func() {
			ctrl.Load(example)
			_, err := ctrl.Run(ctx, "insertion")
			Expect(err).NotTo(HaveOccurred())

			snap, err := ctrl.Run(ctx, "insertion")
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Counters.Swaps).To(Equal(0))
			Expect(snap.Counters.Comparisons).To(Equal(3))
		})

		DescribeTable("every algorithm sorts",
			func(id string) {
				input := seq.Sequence{42, 7, 7, 99, 15, 63, 5, 100, 21, 7}
				ctrl.Load(input)
				snap, err := ctrl.Run(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(snap.Values.IsSorted()).To(BeTrue())
				Expect(snap.Values.IsPermutationOf(input)).To(BeTrue())
			},
			Entry("bubble", "bubble"),
			Entry("selection", "selection"),
			Entry("insertion", "insertion"),
			Entry("merge", "merge"),
			Entry("quick", "quick"),
		)
	})

	Describe("pause", func() {
		DescribeTable("suspends at the step it was requested and resumes identically",
			func(id string, k int) {
				input := seq.Sequence{9, 4, 7, 1, 8, 2, 6}
				want := referenceFrames(id, input)

				rec.hook = func(f step.Frame) {
					if f.Step == k {
						_, err := ctrl.TogglePause()
						Expect(err).NotTo(HaveOccurred())
					}
				}
				ctrl.Load(input)
				Expect(ctrl.Start(ctx, id)).To(Succeed())

				Eventually(ctrl.State).Should(Equal(run.Paused))
				Consistently(rec.Len, 50*time.Millisecond).Should(Equal(k))
				Expect(ctrl.Snapshot().Operation).To(Equal("Paused"))

				state, err := ctrl.TogglePause()
				Expect(err).NotTo(HaveOccurred())
				Expect(state).To(Equal(run.Running))

				ctrl.Wait()
				Expect(ctrl.State()).To(Equal(run.Finished))
				Expect(rec.Frames()).To(Equal(want))
			},
			Entry("bubble at 1", "bubble", 1),
			Entry("insertion at 4", "insertion", 4),
			Entry("merge at 7", "merge", 7),
			Entry("quick at 3", "quick", 3),
		)

		It("rejects a second start while paused", func() {
			rec.hook = func(f step.Frame) {
				if f.Step == 1 {
					ctrl.TogglePause()
				}
			}
			ctrl.Load(example)
			Expect(ctrl.Start(ctx, "selection")).To(Succeed())
			Eventually(ctrl.State).Should(Equal(run.Paused))

			Expect(ctrl.Start(ctx, "selection")).To(MatchError(run.ErrInvalidState))

			ctrl.Stop()
			ctrl.Wait()
			Expect(ctrl.State()).To(Equal(run.Cancelled))
		})

		It("counts paused time in elapsed seconds", func() {
			clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			ctrl = run.New(run.WithSink(rec), run.WithDelay(0), run.WithClock(clock.Now))
			rec.hook = func(f step.Frame) {
				if f.Step == 1 {
					ctrl.TogglePause()
				}
			}
			ctrl.Load(example)
			Expect(ctrl.Start(ctx, "bubble")).To(Succeed())
			Eventually(ctrl.State).Should(Equal(run.Paused))

			clock.Advance(2500 * time.Millisecond)
			Expect(ctrl.Snapshot().Elapsed).To(Equal(2))

			ctrl.Stop()
			clock.Advance(10 * time.Second)
			ctrl.Wait()
			Expect(ctrl.Snapshot().Elapsed).To(Equal(2))
		})
	})

	Describe("cancel", func() {
		DescribeTable("stops after exactly the steps already rendered",
			func(id string, k int) {
				input := seq.Sequence{9, 4, 7, 1, 8, 2, 6, 3}
				rec.hook = func(f step.Frame) {
					if f.Step == k {
						ctrl.Stop()
					}
				}
				ctrl.Load(input)
				snap, err := ctrl.Run(ctx, id)

				Expect(err).To(MatchError(context.Canceled))
				Expect(snap.State).To(Equal(run.Cancelled))
				Expect(snap.Status).To(Equal("Cancelled"))
				Expect(snap.Report).To(BeNil())
				Expect(rec.Len()).To(Equal(k))
				Expect(snap.Values.IsPermutationOf(input)).To(BeTrue())
			},
			Entry("bubble", "bubble", 5),
			Entry("selection", "selection", 2),
			Entry("insertion", "insertion", 6),
			Entry("merge", "merge", 9),
			Entry("quick", "quick", 4),
		)

		DescribeTable("reports a permutation right after stop, before the run unwinds",
			func(id string) {
				input := ctrl.Generate(40)
				ctrl.SetDelay(2 * time.Millisecond)

				for i := 0; i < 20; i++ {
					ctrl.Load(input)
					Expect(ctrl.Start(ctx, id)).To(Succeed())
					target := 1 + i%7
					Eventually(rec.Len).Should(BeNumerically(">=", target))

					ctrl.Stop()
					snap := ctrl.Snapshot()
					Expect(snap.State).To(Equal(run.Cancelled))
					Expect(snap.Values.IsPermutationOf(input)).To(BeTrue())

					ctrl.Wait()
					Expect(ctrl.Snapshot().Values.IsPermutationOf(input)).To(BeTrue())
					rec.mu.Lock()
					rec.frames = nil
					rec.mu.Unlock()
				}
			},
			Entry("merge", "merge"),
			Entry("insertion", "insertion"),
		)

		It("cancels through the parent context", func() {
			parent, cancel := context.WithCancel(ctx)
			rec.hook = func(f step.Frame) {
				if f.Step == 3 {
					cancel()
				}
			}
			ctrl.Load(example)
			_, err := ctrl.Run(parent, "bubble")
			Expect(err).To(MatchError(context.Canceled))
			Expect(ctrl.State()).To(Equal(run.Cancelled))
			Expect(rec.Len()).To(Equal(3))
		})

		It("cancels a paused run when a new sequence is generated", func() {
			rec.hook = func(f step.Frame) {
				if f.Step == 2 {
					ctrl.TogglePause()
				}
			}
			ctrl.Load(example)
			Expect(ctrl.Start(ctx, "bubble")).To(Succeed())
			Eventually(ctrl.State).Should(Equal(run.Paused))

			fresh := ctrl.Generate(12)
			Expect(ctrl.State()).To(Equal(run.Cancelled))
			Expect(ctrl.Snapshot().Values).To(Equal(fresh))

			rec.hook = nil
			snap, err := ctrl.Run(ctx, "quick")
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Values).To(HaveLen(12))
			Expect(snap.Values.IsSorted()).To(BeTrue())
		})

		It("is a no-op when nothing is running", func() {
			ctrl.Load(example)
			ctrl.Stop()
			Expect(ctrl.State()).To(Equal(run.Idle))
		})
	})
})

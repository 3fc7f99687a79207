package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/session"
	"github.com/san-kum/convsim/internal/signal"
)

var _ = Describe("Session", func() {
	Describe("before signals are compiled", func() {
		var s *session.Session

		BeforeEach(func() {
			s = session.New(signal.Continuous)
		})

		It("is not ready", func() {
			Expect(s.Ready()).To(BeFalse())
		})

		It("reports not-ready instead of raising on playback commands", func() {
			status := s.Apply(session.CmdPlay)
			Expect(status.Ready).To(BeFalse())
			Expect(status.Message).To(ContainSubstring("not ready"))
			Expect(status.State).To(Equal(session.Stopped))
		})

		It("returns ErrNotReady from frame evaluation", func() {
			_, err := s.EvaluateAt(0)
			Expect(err).To(MatchError(session.ErrNotReady))
		})

		It("returns ErrNotReady from the full curve", func() {
			_, err := s.FullCurve()
			Expect(err).To(MatchError(session.ErrNotReady))
		})
	})

	Describe("setting expressions", func() {
		It("compiles both signals and becomes ready", func() {
			s := session.New(signal.Continuous)
			Expect(s.SetExpressions("rect(t)", "rect(t)")).To(Succeed())
			Expect(s.Ready()).To(BeTrue())

			x, h := s.Expressions()
			Expect(x).To(Equal("rect(t)"))
			Expect(h).To(Equal("rect(t)"))
		})

		It("keeps the previous state when a signal fails to compile", func() {
			s := session.New(signal.Continuous)
			Expect(s.SetExpressions("rect(t)", "tri(t)")).To(Succeed())

			err := s.SetExpressions("rect(t)", "bogus(t)")
			Expect(err).To(MatchError(signal.ErrUnknownIdent))

			_, h := s.Expressions()
			Expect(h).To(Equal("tri(t)"))
			Expect(s.Ready()).To(BeTrue())
		})

		It("rejects unsafe input before it reaches the compiler", func() {
			s := session.New(signal.Continuous)
			err := s.SetExpressions("eval(t)", "rect(t)")
			Expect(err).To(MatchError(signal.ErrUnsafeToken))
		})

		It("rewinds playback to the grid minimum", func() {
			s := session.New(signal.Continuous)
			Expect(s.SetExpressions("rect(t)", "rect(t)")).To(Succeed())
			s.Apply(session.CmdStepForward)
			s.Apply(session.CmdStepForward)

			Expect(s.SetExpressions("u(t)", "exp(-t)*u(t)")).To(Succeed())
			Expect(s.Status().Shift).To(Equal(conv.DefaultOutputGrid.Min))
		})
	})

	Describe("frame evaluation", func() {
		var s *session.Session

		BeforeEach(func() {
			s = session.New(signal.Continuous)
			Expect(s.SetExpressions("rect(t)", "rect(t)")).To(Succeed())
		})

		It("produces the convolution value at the shift", func() {
			frame, err := s.EvaluateAt(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Value).To(BeNumerically("~", 1.0, 0.02))
		})

		It("clamps shifts outside the grid", func() {
			frame, err := s.EvaluateAt(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Shift).To(Equal(conv.DefaultOutputGrid.Max))
		})
	})

	Describe("playback", func() {
		var s *session.Session

		BeforeEach(func() {
			s = session.New(signal.Discrete)
			Expect(s.SetExpressions("[1,2,1]", "[1,1]")).To(Succeed())
		})

		It("steps by one index in discrete mode", func() {
			min, _ := discreteBounds()
			before := s.Status().Shift
			Expect(before).To(Equal(min))

			status := s.Apply(session.CmdStepForward)
			Expect(status.Shift).To(Equal(min + 1))
		})

		It("accumulates history while playing and clears it on reset", func() {
			s.Apply(session.CmdPlay)
			for i := 0; i < 5; i++ {
				_, _, err := s.Tick()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(s.History()).To(HaveLen(5))

			s.Apply(session.CmdReset)
			Expect(s.History()).To(BeEmpty())
			Expect(s.Status().State).To(Equal(session.Stopped))
		})

		It("does not advance on ticks while stopped", func() {
			before := s.Status().Shift
			frame, status, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(status.State).To(Equal(session.Stopped))
			Expect(frame.Shift).To(Equal(before))
			Expect(s.History()).To(BeEmpty())
		})

		It("wraps while playing and keeps going", func() {
			min, max := discreteBounds()
			s.Apply(session.CmdPlay)
			s.SetShift(max)

			_, status, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(status.Shift).To(Equal(min))
			Expect(status.State).To(Equal(session.Playing))
		})

		It("applies speed changes on the next tick", func() {
			s.Apply(session.CmdPlay)
			status := s.SetSpeed(3)
			Expect(status.Speed).To(Equal(3.0))

			before := status.Shift
			_, after, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Shift).To(Equal(before + 3))
		})
	})

	Describe("asynchronous full-curve recomputation", func() {
		It("applies results for the current version", func() {
			s := session.New(signal.Discrete)
			Expect(s.SetExpressions("[1,2,1]", "[1,1]")).To(Succeed())

			kernel, version, err := s.Snapshot()
			Expect(err).NotTo(HaveOccurred())

			res := kernel.Full()
			Expect(s.ApplyFull(res, version)).To(BeTrue())

			cached, err := s.FullCurve()
			Expect(err).NotTo(HaveOccurred())
			Expect(cached.ValueAt(1)).To(Equal(3.0))
		})

		It("discards stale results after parameters changed", func() {
			s := session.New(signal.Discrete)
			Expect(s.SetExpressions("[1,2,1]", "[1,1]")).To(Succeed())

			kernel, version, err := s.Snapshot()
			Expect(err).NotTo(HaveOccurred())
			res := kernel.Full()

			// Edit races ahead of the worker.
			Expect(s.SetExpressions("[1,1]", "[1,1]")).To(Succeed())

			Expect(s.ApplyFull(res, version)).To(BeFalse())
			fresh, err := s.FullCurve()
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.ValueAt(1)).To(Equal(2.0))
		})
	})
})

func discreteBounds() (float64, float64) {
	return float64(conv.DefaultIndexWindow.Min), float64(conv.DefaultIndexWindow.Max)
}

package engine

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particles/internal/particle"
)

var _ = Describe("Step", func() {
	var (
		e   *Engine
		ctx context.Context
	)

	BeforeEach(func() {
		var err error
		e, err = New(DefaultParams(), 4)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Context("with two distant particles at rest", func() {
		var sys *particle.System

		BeforeEach(func() {
			sys = particle.New([]particle.Particle{
				{X: 0, Y: 0, Mass: 5, Active: true},
				{X: 10, Y: 0, Mass: 1, Active: true},
			})
		})

		It("pulls them towards each other with equal and opposite momentum", func() {
			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Merges).To(BeZero())

			p0, p1 := sys.Particles[0], sys.Particles[1]
			Expect(p0.VX).To(BeNumerically(">", 0))
			Expect(p1.VX).To(BeNumerically("<", 0))
			Expect(p0.VY).To(BeZero())
			Expect(p1.VY).To(BeZero())
			Expect(p0.Mass*p0.VX).To(BeNumerically("~", -p1.Mass*p1.VX, 1e-12))

			Expect(p0.VX).To(BeNumerically("~", 0.01, 1e-15))
			Expect(p1.VX).To(BeNumerically("~", -0.05, 1e-15))
		})

		It("moves them by their new velocity", func() {
			_, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())

			Expect(sys.Particles[0].X).To(BeNumerically("~", 0.01, 1e-15))
			Expect(sys.Particles[1].X).To(BeNumerically("~", 9.95, 1e-15))
		})
	})

	Context("with two particles inside the collision radius", func() {
		var sys *particle.System

		BeforeEach(func() {
			sys = particle.New([]particle.Particle{
				{X: 100, Y: 100, VX: 1, VY: 0, Mass: 2, Active: true},
				{X: 101, Y: 102, VX: 0, VY: -2, Mass: 7, Active: true},
			})
		})

		It("merges the lighter into the heavier", func() {
			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Merges).To(Equal(1))

			light, heavy := sys.Particles[0], sys.Particles[1]
			Expect(light.Active).To(BeFalse())
			Expect(heavy.Active).To(BeTrue())
			Expect(heavy.Mass).To(Equal(9.0))
			Expect(heavy.VX).To(BeNumerically("~", 2.0/9.0, 1e-15))
			Expect(heavy.VY).To(BeNumerically("~", -14.0/9.0, 1e-15))
		})

		It("draws only the survivor", func() {
			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Draws).To(HaveLen(1))
			Expect(frame.Draws[0].X).To(Equal(101))
			Expect(frame.Draws[0].Y).To(Equal(100))
		})

		It("leaves the absorbed particle untouched afterwards", func() {
			_, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			absorbed := sys.Particles[0]

			for i := 0; i < 5; i++ {
				frame, err := e.Step(ctx, sys)
				Expect(err).NotTo(HaveOccurred())
				Expect(frame.Draws).To(HaveLen(1))
			}
			Expect(sys.Particles[0]).To(Equal(absorbed))
		})
	})

	Context("with equal masses colliding", func() {
		It("keeps the second-half particle", func() {
			sys := particle.New([]particle.Particle{
				{X: 0, Y: 0, VX: 1, Mass: 3, Active: true},
				{X: 1, Y: 1, VX: -1, Mass: 3, Active: true},
			})

			_, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(sys.Particles[0].Active).To(BeFalse())
			Expect(sys.Particles[1].Active).To(BeTrue())
			Expect(sys.Particles[1].VX).To(BeZero())
			Expect(sys.Particles[1].Mass).To(Equal(6.0))
		})
	})

	Context("with inactive particles", func() {
		It("never moves, accelerates or draws them", func() {
			inert := particle.Particle{X: 20, Y: 20, VX: 9, VY: 9, Mass: 50, Active: false}
			sys := particle.New([]particle.Particle{
				{X: 0, Y: 0, Mass: 1, Active: true},
				inert,
				{X: 40, Y: 0, Mass: 1, Active: true},
				inert,
			})

			for i := 0; i < 10; i++ {
				frame, err := e.Step(ctx, sys)
				Expect(err).NotTo(HaveOccurred())
				Expect(frame.Draws).To(HaveLen(2))
			}
			Expect(sys.Particles[1]).To(Equal(inert))
			Expect(sys.Particles[3]).To(Equal(inert))
		})
	})

	Context("with pairs inside the same half", func() {
		It("does not evaluate them against each other", func() {
			sys := particle.New([]particle.Particle{
				{X: 0, Y: 0, Mass: 1, Active: true},
				{X: 1, Y: 0, Mass: 1, Active: true},
				{X: 1000, Y: 1000, Mass: 1, Active: true},
				{X: 1001, Y: 1000, Mass: 1, Active: true},
			})

			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Merges).To(BeZero())
			Expect(sys.ActiveCount()).To(Equal(4))
		})
	})

	DescribeTable("colours draws by speed",
		func(vx, vy float64, want uint8) {
			sys := particle.New([]particle.Particle{{VX: vx, VY: vy, Mass: 1, Active: true}})
			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Draws[0].Color.R).To(Equal(want))
			Expect(frame.Draws[0].Color.G).To(Equal(want))
			Expect(frame.Draws[0].Color.B).To(Equal(uint8(255)))
		},
		Entry("stationary", 0.0, 0.0, uint8(0)),
		Entry("at threshold", 1.5, -1.5, uint8(255)),
		Entry("beyond threshold", -4.0, 0.0, uint8(255)),
		Entry("half speed", 0.75, 0.75, uint8(127)),
	)

	It("counts frames", func() {
		sys := particle.New([]particle.Particle{{Mass: 1, Active: true}})
		for i := 0; i < 3; i++ {
			frame, err := e.Step(ctx, sys)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Index).To(Equal(i))
		}
		Expect(e.Frames()).To(Equal(3))
	})
})

package engine

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/san-kum/particles/internal/particle"
)

func BenchmarkStep(b *testing.B) {
	counts := []int{500, 2000}
	workers := []int{1, 4}

	for _, n := range counts {
		for _, w := range workers {
			b.Run(fmt.Sprintf("Particles-%d/Workers-%d", n, w), func(b *testing.B) {
				sys, err := particle.Generate(rand.New(rand.NewSource(1)), n, particle.Bounds{
					X:    particle.Range{Min: 0, Max: 1920},
					Y:    particle.Range{Min: 0, Max: 1080},
					Mass: particle.Range{Min: 1, Max: 10},
				})
				if err != nil {
					b.Fatal(err)
				}
				e, _ := New(DefaultParams(), w)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := e.Step(context.Background(), sys); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

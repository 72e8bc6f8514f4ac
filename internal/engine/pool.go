package engine

import "sync"

// bufferPool recycles per-worker delta buffers between frames.
type bufferPool struct {
	pool sync.Pool
	size int
}

func newBufferPool(size int) *bufferPool {
	return &bufferPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]Vec2, size)
			},
		},
	}
}

func (p *bufferPool) Get() []Vec2 {
	return p.pool.Get().([]Vec2)
}

func (p *bufferPool) Put(b []Vec2) {
	if len(b) == p.size {
		clear(b)
		p.pool.Put(b)
	}
}

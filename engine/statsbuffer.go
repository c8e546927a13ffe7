package engine

import (
	"sync"

	"contagion/simulation"
)

// Sample は統計時系列の1点です。
type Sample struct {
	Time  float64
	Stats simulation.Statistics
}

// StatsBuffer は (時刻, 統計) の時系列を上限付きで保持します。
// 上限に達したら1つおきに間引いて記録間隔を倍にし、全期間の形を保ちます。
type StatsBuffer struct {
	mu      sync.Mutex
	samples []Sample
	limit   int
	minGap  float64
}

// NewStatsBuffer は最大 limit 点を保持するバッファを作ります。limit は4以上。
func NewStatsBuffer(limit int) *StatsBuffer {
	if limit < 4 {
		limit = 4
	}
	return &StatsBuffer{
		samples: make([]Sample, 0, limit),
		limit:   limit,
	}
}

// Record は1点を記録します。前回の記録から minGap 未満しか経っていない点は捨てます。
func (b *StatsBuffer) Record(t float64, stats simulation.Statistics) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n := len(b.samples); n > 0 && t-b.samples[n-1].Time < b.minGap {
		return
	}
	b.samples = append(b.samples, Sample{Time: t, Stats: stats})

	if len(b.samples) >= b.limit {
		b.compact()
	}
}

// compact は偶数番目の点だけを残し、以後の最小記録間隔を倍にします。
func (b *StatsBuffer) compact() {
	kept := b.samples[:0]
	for i := 0; i < len(b.samples); i += 2 {
		kept = append(kept, b.samples[i])
	}
	b.samples = kept
	if b.minGap == 0 {
		b.minGap = 0.1
	} else {
		b.minGap *= 2
	}
}

// Samples は記録済みの時系列のコピーを返します。
func (b *StatsBuffer) Samples() []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Sample, len(b.samples))
	copy(out, b.samples)
	return out
}

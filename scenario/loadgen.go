package scenario

import (
	"fmt"
	"math"
	"math/rand"
)

// constants characterizing the synthetic rendering workload
const (
	MIN_BURST     = 1
	AVG_BURST     = 6
	STD_DEV_BURST = 4
	MAX_BURST     = 30

	MAX_ARRIVAL_SPREAD = 3 // max ticks between consecutive arrivals
)

// LoadGen produces synthetic task batches. Same seed, same batch.
type LoadGen struct {
	r *rand.Rand
}

func NewLoadGen(seed int64) *LoadGen {
	return &LoadGen{r: rand.New(rand.NewSource(seed))}
}

func (lg *LoadGen) sampleNormal(mu, sigma float64) float64 {
	return lg.r.NormFloat64()*sigma + mu
}

// GenTasks makes nTasks tasks with arrivals drifting forward and bursts
// drawn from a clamped normal.
func (lg *LoadGen) GenTasks(nTasks int) []TaskConfig {
	tasks := make([]TaskConfig, nTasks)
	arrival := 0
	for i := 0; i < nTasks; i++ {
		burst := int(math.Max(math.Min(lg.sampleNormal(AVG_BURST, STD_DEV_BURST), MAX_BURST), MIN_BURST))
		tasks[i] = TaskConfig{
			ID:      fmt.Sprintf("T%d", i+1),
			Arrival: arrival,
			Burst:   burst,
		}
		arrival += lg.r.Intn(MAX_ARRIVAL_SPREAD + 1)
	}
	return tasks
}

// Generate builds a whole random scenario over nVMs machines.
func (lg *LoadGen) Generate(nTasks, nVMs int) *Config {
	return &Config{
		Name:   fmt.Sprintf("random-%dx%d", nTasks, nVMs),
		Tasks:  lg.GenTasks(nTasks),
		NumVMs: nVMs,
	}
}

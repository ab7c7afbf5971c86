package main

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Report 用例耗时统计
type Report struct {
	Name   string
	Rounds int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Stddev time.Duration
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: rounds: %d, min: %s, max: %s, mean: %s, stddev: %s",
		r.Name, r.Rounds, r.Min, r.Max, r.Mean, r.Stddev)
}

// runRounds 重复执行用例,汇总每轮耗时
func runRounds(ctx context.Context, name string, rounds int, fn func(context.Context) error) (*Report, error) {
	samples := make([]time.Duration, 0, rounds)

	for i := 0; i < rounds; i++ {
		start := time.Now()
		if err := fn(ctx); err != nil {
			return nil, err
		}
		samples = append(samples, time.Since(start))
	}

	return summarize(name, samples), nil
}

func summarize(name string, samples []time.Duration) *Report {
	result := &Report{
		Name:   name,
		Rounds: len(samples),
		Min:    samples[0],
		Max:    samples[0],
	}

	var sum float64
	for _, v := range samples {
		if v < result.Min {
			result.Min = v
		}
		if v > result.Max {
			result.Max = v
		}
		sum += float64(v)
	}
	mean := sum / float64(len(samples))
	result.Mean = time.Duration(mean)

	var sq float64
	for _, v := range samples {
		d := float64(v) - mean
		sq += d * d
	}
	result.Stddev = time.Duration(math.Sqrt(sq / float64(len(samples))))

	return result
}

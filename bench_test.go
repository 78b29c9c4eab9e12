package mwmap

import (
	"context"
	"os"
	"strings"
	"testing"
)

func BenchmarkParseSample(b *testing.B) {
	data, err := os.ReadFile(samplePath())
	if err != nil {
		b.Fatalf("ReadFile failed: %v", err)
	}
	text := strings.Repeat(string(data), 200)

	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		res, err := Parse(ctx, text)
		if err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
		_ = res
	}
}

func BenchmarkParseSampleSerial(b *testing.B) {
	data, err := os.ReadFile(samplePath())
	if err != nil {
		b.Fatalf("ReadFile failed: %v", err)
	}
	text := strings.Repeat(string(data), 200)

	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		res, err := Parse(ctx, text, WithWorkers(1))
		if err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
		_ = res
	}
}

package blocksort

import "testing"

func TestBlockLengthDefaults(t *testing.T) {
	cfg := DefaultConfig()

	// Small inputs are dominated by the MinBlockLen floor.
	for _, n := range []int{0, 1, 15, 100, 1023} {
		if b := BlockLength(n, cfg); b != DefaultMinBlockLen {
			t.Errorf("BlockLength(%v) = %v, want %v", n, b, DefaultMinBlockLen)
		}
	}

	// Beyond the floor, the length tracks sqrt(n)/2 rounded down to even.
	if b := BlockLength(10000, cfg); b != 50 {
		t.Errorf("BlockLength(10000) = %v, want 50", b)
	}
	if b := BlockLength(1<<20, cfg); b != 512 {
		t.Errorf("BlockLength(1<<20) = %v, want 512", b)
	}
	if b := BlockLength(1156, cfg); b != 16 {
		// sqrt(1156)/2 = 17, rounded down to 16, at the floor anyway
		t.Errorf("BlockLength(1156) = %v, want 16", b)
	}
	if b := BlockLength(1<<14, cfg); b != 64 {
		t.Errorf("BlockLength(1<<14) = %v, want 64", b)
	}
	if b := BlockLength(1<<20, cfg)%2 + BlockLength(1<<14, cfg)%2; b != 0 {
		t.Errorf("block lengths above the floor must be even")
	}
}

func TestBlockLengthConfig(t *testing.T) {
	// Wider cache lines raise the floor.
	cfg := Config{CacheLineBytes: 1024, ElementSize: 8}
	if b := BlockLength(100, cfg); b != 128 {
		t.Errorf("BlockLength(100) = %v, want 128", b)
	}

	// An explicit minimum dominates the heuristic.
	cfg = Config{MinBlockLen: 64}
	if b := BlockLength(100, cfg); b != 64 {
		t.Errorf("BlockLength(100) = %v, want 64", b)
	}

	// The zero configuration behaves like the default one.
	if b, d := BlockLength(10000, Config{}), BlockLength(10000, DefaultConfig()); b != d {
		t.Errorf("BlockLength with zero config = %v, want %v", b, d)
	}

	// Oversized elements still leave at least one element per cache line.
	cfg = Config{CacheLineBytes: 64, ElementSize: 128, MinBlockLen: 1}
	if b := BlockLength(4, cfg); b != 1 {
		t.Errorf("BlockLength(4) = %v, want 1", b)
	}
}

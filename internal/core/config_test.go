package core

import "testing"

func TestRuntimeConfigNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   RuntimeConfig
		want RuntimeConfig
	}{
		{
			name: "zero value",
			in:   RuntimeConfig{},
			want: DefaultConfig(),
		},
		{
			name: "keeps set fields",
			in:   RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7, Difficulty: "hard"},
			want: RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7, Difficulty: "hard"},
		},
		{
			name: "negative tick rate",
			in:   RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: -5},
			want: RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenKey(t *testing.T) {
	tests := []struct {
		name   string
		want   ebiten.Key
		wantOK bool
	}{
		{" ", ebiten.KeySpace, true},
		{"space", ebiten.KeySpace, true},
		{"up", ebiten.KeyArrowUp, true},
		{"esc", ebiten.KeyEscape, true},
		{"p", ebiten.KeyP, true},
		{"Q", ebiten.KeyQ, true},
		{"enter", ebiten.KeyEnter, true},
		{"ctrl+c", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ebitenKey(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ebitenKey(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ebitenKey(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

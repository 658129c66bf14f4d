package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int32
		wantW, wantH int32
	}{
		{1600, 900, 1600, 900},
		{0, 900, 1, 900},
		{-5, -5, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestScreenAspect(t *testing.T) {
	s := NewScreen(1600, 900)
	if got := s.Aspect(); got != float32(1600)/900 {
		t.Errorf("Aspect() = %v", got)
	}

	// A minimized window reports 0x0; the aspect must stay finite.
	s.Resize(0, 0)
	if got := s.Aspect(); got != 1 {
		t.Errorf("Aspect() after 0x0 resize = %v, want 1", got)
	}
}

package snake

import "testing"

func TestDetect(t *testing.T) {
	bounds := DefaultBounds()

	// Square loop: tail (50,50), head (50,75) about to move up into the tail.
	loop := NewBody(
		Position{50, 50}, Position{75, 50}, Position{75, 75}, Position{50, 75},
	)

	tests := []struct {
		name string
		head Position
		body *Body
		want Collision
	}{
		{"free cell", Position{150, 50}, DefaultBody(), CollisionNone},
		{"right edge is inside", Position{800, 50}, DefaultBody(), CollisionNone},
		{"past right edge", Position{825, 50}, DefaultBody(), CollisionBoundary},
		{"past top edge", Position{125, -25}, DefaultBody(), CollisionBoundary},
		{"own body", Position{75, 50}, DefaultBody(), CollisionSelf},
		{"cell the tail would vacate", Position{50, 50}, loop, CollisionSelf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.head, tt.body, bounds); got != tt.want {
				t.Errorf("Detect(%s) = %s, want %s", tt.head, got, tt.want)
			}
		})
	}
}

func TestDetectBoundaryBeforeSelf(t *testing.T) {
	// A body cell placed outside the board must still report boundary.
	b := NewBody(Position{825, 50}, Position{800, 50})
	if got := Detect(Position{825, 50}, b, DefaultBounds()); got != CollisionBoundary {
		t.Errorf("Expected boundary, got %s", got)
	}
}

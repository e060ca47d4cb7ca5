package main

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

func (v *Viewer) handleTouchEvents() {
	// Use AppendTouchIDs instead of TouchIDs
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Initialize touch tracking maps if needed
	if v.lastTouchX == nil {
		v.lastTouchX = make(map[ebiten.TouchID]float64)
		v.lastTouchY = make(map[ebiten.TouchID]float64)
	}

	// Handle touch start
	for _, id := range touches {
		if _, exists := v.lastTouchX[id]; !exists {
			x, y := ebiten.TouchPosition(id)
			v.lastTouchX[id] = float64(x)
			v.lastTouchY[id] = float64(y)
		}
	}

	// Clean up ended touches
	for id := range v.lastTouchX {
		if !containsTouchID(touches, id) {
			delete(v.lastTouchX, id)
			delete(v.lastTouchY, id)
		}
	}

	// Two finger touch - pinch to scale the panel body
	if len(touches) == 2 {
		id1, id2 := touches[0], touches[1]
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)

		currentDist := distance(float64(x1), float64(y1), float64(x2), float64(y2))

		if _, ok := v.lastTouchX[id1]; ok {
			if _, ok := v.lastTouchX[id2]; ok {
				prevDist := distance(v.lastTouchX[id1], v.lastTouchY[id1],
					v.lastTouchX[id2], v.lastTouchY[id2])

				if currentDist > prevDist*1.1 {
					v.scaleBody(scaleStep)
				} else if currentDist < prevDist*0.9 {
					v.scaleBody(1 / scaleStep)
				}
			}
		}

		v.lastTouchX[id1], v.lastTouchY[id1] = float64(x1), float64(y1)
		v.lastTouchX[id2], v.lastTouchY[id2] = float64(x2), float64(y2)
	}
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	return slices.Contains(ids, id)
}

// Helper function to calculate distance between two points
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

package telemetry

import "testing"

var testThresholds = BookmarkThresholds{CloseCallDist: 60, SwarmWorms: 2.5, CrisisStamina: 10}

func hasBookmark(bms []Bookmark, typ BookmarkType) bool {
	for _, bm := range bms {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func calmWindow(end int64) WindowStats {
	return WindowStats{
		Session:        1,
		WindowEndTick:  end,
		ActiveWormMean: 1,
		NearestP10:     400,
		StaminaP10:     80,
		Activations:    1,
	}
}

func TestBookmarkDetector_CloseCall(t *testing.T) {
	bd := NewBookmarkDetector(10, testThresholds)

	if bms := bd.Check(calmWindow(600)); len(bms) != 0 {
		t.Fatalf("calm window produced %v", bms)
	}

	near := calmWindow(1200)
	near.NearestP10 = 40
	if !hasBookmark(bd.Check(near), BookmarkCloseCall) {
		t.Error("expected close_call bookmark")
	}

	// Being caught is not a close call
	caught := near
	caught.Collisions = 1
	if hasBookmark(bd.Check(caught), BookmarkCloseCall) {
		t.Error("close_call fired on a collision window")
	}
}

func TestBookmarkDetector_StaminaCrisisFiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(10, testThresholds)

	low := calmWindow(600)
	low.StaminaP10 = 5
	if !hasBookmark(bd.Check(low), BookmarkStaminaCrisis) {
		t.Fatal("expected stamina_crisis bookmark")
	}
	low.WindowEndTick = 1200
	if hasBookmark(bd.Check(low), BookmarkStaminaCrisis) {
		t.Error("crisis should not repeat while stamina stays low")
	}

	bd.Check(calmWindow(1800))
	low.WindowEndTick = 2400
	if !hasBookmark(bd.Check(low), BookmarkStaminaCrisis) {
		t.Error("crisis should fire again after recovery")
	}
}

func TestBookmarkDetector_Swarm(t *testing.T) {
	bd := NewBookmarkDetector(10, testThresholds)

	swarm := calmWindow(600)
	swarm.ActiveWormMean = 3
	bms := bd.Check(swarm)
	if !hasBookmark(bms, BookmarkSwarm) {
		t.Fatal("expected swarm bookmark")
	}
	if bms[0].Session != 1 || bms[0].Tick != 600 {
		t.Errorf("bookmark identity wrong: %+v", bms[0])
	}
}

func TestBookmarkDetector_WakeSurge(t *testing.T) {
	bd := NewBookmarkDetector(10, testThresholds)

	for i := int64(1); i <= 4; i++ {
		bd.Check(calmWindow(i * 600))
	}

	surge := calmWindow(3000)
	surge.Activations = 4
	if !hasBookmark(bd.Check(surge), BookmarkWakeSurge) {
		t.Error("expected wake_surge bookmark")
	}
}

func TestBookmarkDetector_Reset(t *testing.T) {
	bd := NewBookmarkDetector(10, testThresholds)
	for i := int64(1); i <= 4; i++ {
		bd.Check(calmWindow(i * 600))
	}
	bd.Reset()

	// Without history a burst of activations is not a surge
	surge := calmWindow(600)
	surge.Activations = 4
	if hasBookmark(bd.Check(surge), BookmarkWakeSurge) {
		t.Error("wake_surge fired without history")
	}
}

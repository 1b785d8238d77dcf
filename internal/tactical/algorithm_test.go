package tactical

import (
	"testing"

	"github.com/Garsondee/tanksim/internal/engine"
)

func TestAlgorithmRequestsInfoBeforeActing(t *testing.T) {
	algo := NewAlgorithm(1, 0)
	if a := algo.NextAction(); a != engine.GetBattleInfo {
		t.Fatalf("first action = %s, want GetBattleInfo", a)
	}
}

func TestAlgorithmShootsOnDirectEngagement(t *testing.T) {
	grid := engine.NewGrid(10, 5)
	self := engine.NewTank(1, 0, 0, 0, engine.Right, 3)
	enemy := engine.NewTank(2, 0, 5, 0, engine.Left, 3)
	tanks := []*engine.Tank{self, enemy}

	algo := NewAlgorithm(1, 0)
	algo.ReceiveBattleInfo(engine.NewBattleInfo(self, grid, tanks, nil))

	action := algo.NextAction()
	if action != engine.Shoot {
		t.Fatalf("action = %s, want Shoot with a clear line to the enemy", action)
	}
}

func TestAlgorithmRefreshesInfoPeriodically(t *testing.T) {
	grid := engine.NewGrid(10, 5)
	self := engine.NewTank(1, 0, 0, 0, engine.Up, 0) // no ammo, no shell, forces navigation
	enemy := engine.NewTank(2, 0, 5, 0, engine.Left, 0)
	tanks := []*engine.Tank{self, enemy}

	algo := NewAlgorithm(1, 0)
	algo.ReceiveBattleInfo(engine.NewBattleInfo(self, grid, tanks, nil))

	sawRefresh := false
	for i := 0; i < infoRefreshInterval+1; i++ {
		if algo.NextAction() == engine.GetBattleInfo {
			sawRefresh = true
			break
		}
	}
	if !sawRefresh {
		t.Fatalf("expected a GetBattleInfo refresh within %d ticks", infoRefreshInterval+1)
	}
}

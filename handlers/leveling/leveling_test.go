package leveling

import "testing"

func TestLevelFromXP(t *testing.T) {
	cases := []struct {
		xp   int64
		want int
	}{
		{0, 0},
		{149, 0},
		{150, 1},
		{599, 1},
		{600, 2},
		{1349, 2},
		{1350, 3},
		{-5, 0},
	}
	for _, tc := range cases {
		if got := LevelFromXP(tc.xp); got != tc.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestXPForLevelInvertsLevelFromXP(t *testing.T) {
	for level := 0; level <= 20; level++ {
		floor := XPForLevel(level)
		if got := LevelFromXP(floor); got != level {
			t.Errorf("LevelFromXP(XPForLevel(%d)) = %d", level, got)
		}
		if level > 0 {
			if got := LevelFromXP(floor - 1); got != level-1 {
				t.Errorf("LevelFromXP(%d) = %d, want %d", floor-1, got, level-1)
			}
		}
	}
}

func TestRandXPStaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		xp := randXP()
		if xp < xpMin || xp > xpMax {
			t.Fatalf("randXP() = %d, want within [%d, %d]", xp, xpMin, xpMax)
		}
	}
}

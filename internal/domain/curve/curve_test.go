package curve_test

import (
	"testing"

	curve "github.com/veloria/encore/internal/domain/curve"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRawBonusPercent(t *testing.T) {
	Convey("Given the tiered bonus curve", t, func() {
		Convey("Then the band checkpoints match the progression table", func() {
			So(curve.RawBonusPercent(0), ShouldEqual, 0.0)
			So(curve.RawBonusPercent(5), ShouldEqual, 2.5)
			So(curve.RawBonusPercent(10), ShouldEqual, 7.5)
			So(curve.RawBonusPercent(15), ShouldEqual, 15.0)
			So(curve.RawBonusPercent(19), ShouldEqual, 23.0)
			So(curve.RawBonusPercent(20), ShouldEqual, 28.0)
		})

		Convey("Then the curve is monotonically non-decreasing over the domain", func() {
			prev := curve.RawBonusPercent(0)
			for level := 1; level <= curve.MaxLevel; level++ {
				current := curve.RawBonusPercent(level)
				So(current, ShouldBeGreaterThanOrEqualTo, prev)
				prev = current
			}
		})

		Convey("Then each band's per-level rate exceeds the previous band's", func() {
			// Marginal gain at a representative level of each band.
			So(curve.RawBonusPercent(3)-curve.RawBonusPercent(2), ShouldEqual, 0.5)
			So(curve.RawBonusPercent(8)-curve.RawBonusPercent(7), ShouldEqual, 1.0)
			So(curve.RawBonusPercent(13)-curve.RawBonusPercent(12), ShouldEqual, 1.5)
			So(curve.RawBonusPercent(18)-curve.RawBonusPercent(17), ShouldEqual, 2.0)
		})

		Convey("Then the mastery bonus lands only at level 20", func() {
			So(curve.RawBonusPercent(20)-curve.RawBonusPercent(19), ShouldEqual, 5.0)
			So(curve.RawBonusPercent(20), ShouldEqual, curve.MaxTieredBonus)
		})

		Convey("When input is out of range", func() {
			Convey("Then it clamps rather than failing", func() {
				So(curve.RawBonusPercent(-3), ShouldEqual, 0.0)
				So(curve.RawBonusPercent(99), ShouldEqual, curve.MaxTieredBonus)
			})
		})
	})
}

func TestScaledBonusPercent(t *testing.T) {
	Convey("Given the scaled curve helper", t, func() {
		ceilings := []float64{5, 7, 8, 30, 100}

		Convey("Then level 20 always hits the ceiling and level 0 is always zero", func() {
			for _, m := range ceilings {
				So(curve.ScaledBonusPercent(20, m), ShouldEqual, m)
				So(curve.ScaledBonusPercent(0, m), ShouldEqual, 0.0)
			}
		})

		Convey("Then the shape is preserved under rescaling", func() {
			// Level 10 sits at 7.5/28 of the raw curve everywhere.
			So(curve.ScaledBonusPercent(10, 8), ShouldAlmostEqual, 7.5/28*8, 1e-9)
			So(curve.ScaledBonusPercent(10, 5), ShouldAlmostEqual, 7.5/28*5, 1e-9)
		})
	})
}

func TestMultipliers(t *testing.T) {
	Convey("Given the multiplier helpers", t, func() {
		Convey("Then they derive from the same curve", func() {
			So(curve.Multiplier(0), ShouldEqual, 1.0)
			So(curve.Multiplier(20), ShouldAlmostEqual, 1.28, 1e-9)
			So(curve.ScaledMultiplier(20, 8), ShouldAlmostEqual, 1.08, 1e-9)
			So(curve.ScaledMultiplier(10, 8), ShouldAlmostEqual, 1+7.5/28*8/100, 1e-9)
		})
	})
}

func TestTierName(t *testing.T) {
	Convey("Given the band names", t, func() {
		So(curve.TierName(0), ShouldEqual, "Untrained")
		So(curve.TierName(1), ShouldEqual, "Beginner")
		So(curve.TierName(5), ShouldEqual, "Beginner")
		So(curve.TierName(6), ShouldEqual, "Intermediate")
		So(curve.TierName(12), ShouldEqual, "Advanced")
		So(curve.TierName(16), ShouldEqual, "Expert")
		So(curve.TierName(20), ShouldEqual, "Mastered")
	})
}

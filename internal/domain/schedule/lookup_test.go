package schedule_test

import (
	"testing"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

// A schedule shaped like a real broadcast block:
// run, break, break, run, break, run.
func fixtureItems() []model.ScheduleItem {
	interstitial := func(id string, completed bool) model.ScheduleItem {
		return model.ScheduleItem{ID: id, Type: model.ItemTypeOther, Completed: &completed}
	}
	return []model.ScheduleItem{
		speedrun("run-1", "ext-1", "Crystal Caverns"),
		interstitial("break-1", true),
		interstitial("break-2", false),
		speedrun("run-2", "ext-2", "Hyper Drift"),
		interstitial("break-3", false),
		speedrun("run-3", "ext-3", "Moon Temple"),
	}
}

func TestFindActiveItem(t *testing.T) {
	Convey("Given a schedule with interstitials before the active run", t, func() {
		items := fixtureItems()

		Convey("When an interstitial before the run is incomplete", func() {
			active := schedule.FindActiveItem(items, "run-2")

			Convey("Then the earliest incomplete interstitial is active", func() {
				So(active, ShouldNotBeNil)
				So(active.ID, ShouldEqual, "break-2")
			})
		})

		Convey("When every preceding interstitial is completed", func() {
			done := true
			items[2].Completed = &done
			active := schedule.FindActiveItem(items, "run-2")

			Convey("Then the run itself is active", func() {
				So(active, ShouldNotBeNil)
				So(active.ID, ShouldEqual, "run-2")
			})
		})

		Convey("When the active id is blank", func() {
			So(schedule.FindActiveItem(items, ""), ShouldBeNil)
		})

		Convey("When the active id is unknown", func() {
			So(schedule.FindActiveItem(items, "run-9"), ShouldBeNil)
		})
	})
}

func TestInterstitialsBefore(t *testing.T) {
	Convey("Given a schedule", t, func() {
		items := fixtureItems()

		Convey("When looking before a run with a contiguous block", func() {
			before := schedule.InterstitialsBefore(items, "run-2")

			Convey("Then the block is returned in list order", func() {
				So(before, ShouldHaveLength, 2)
				So(before[0].ID, ShouldEqual, "break-1")
				So(before[1].ID, ShouldEqual, "break-2")
			})
		})

		Convey("When the previous item is a speedrun", func() {
			before := schedule.InterstitialsBefore(items, "break-1")

			Convey("Then the scan stops immediately", func() {
				So(before, ShouldBeEmpty)
			})
		})

		Convey("When looking before the first item", func() {
			So(schedule.InterstitialsBefore(items, "run-1"), ShouldBeEmpty)
		})
	})
}

func TestFindItemAfterBefore(t *testing.T) {
	Convey("Given a schedule", t, func() {
		items := fixtureItems()

		Convey("When finding the next item of any type", func() {
			next := schedule.FindItemAfter(items, "run-1", "")
			So(next, ShouldNotBeNil)
			So(next.ID, ShouldEqual, "break-1")
		})

		Convey("When finding the next speedrun", func() {
			next := schedule.FindItemAfter(items, "run-1", model.ItemTypeSpeedrun)
			So(next, ShouldNotBeNil)
			So(next.ID, ShouldEqual, "run-2")
		})

		Convey("When nothing comes after", func() {
			So(schedule.FindItemAfter(items, "run-3", model.ItemTypeSpeedrun), ShouldBeNil)
		})

		Convey("When finding the previous speedrun", func() {
			previous := schedule.FindItemBefore(items, "run-3", model.ItemTypeSpeedrun)
			So(previous, ShouldNotBeNil)
			So(previous.ID, ShouldEqual, "run-2")
		})

		Convey("When the item is first in the list", func() {
			So(schedule.FindItemBefore(items, "run-1", ""), ShouldBeNil)
		})

		Convey("When the id is unknown", func() {
			So(schedule.FindItemAfter(items, "run-9", ""), ShouldBeNil)
			So(schedule.FindItemBefore(items, "run-9", ""), ShouldBeNil)
		})

		Convey("When mutating a returned item", func() {
			next := schedule.FindItemAfter(items, "run-1", model.ItemTypeSpeedrun)
			next.Title = "Mutated"

			Convey("Then the schedule is unaffected", func() {
				So(items[3].Title, ShouldEqual, "Hyper Drift")
			})
		})
	})
}

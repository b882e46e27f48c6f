package schedule_test

import (
	"errors"
	"testing"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeItem(t *testing.T) {
	roster := []model.TalentItem{
		{ID: "id-1", Name: "Alex"},
		{ID: "id-2", Name: "Sam"},
	}

	Convey("Given a manually edited speedrun", t, func() {
		item := model.ScheduleItem{
			ID:       "run-1",
			Type:     model.ItemTypeSpeedrun,
			Title:    "Crystal Caverns",
			Estimate: "PT25M",
			Teams: []model.Team{
				{PlayerIDs: []model.TalentRef{{ID: "id-1"}}},
			},
			CommentatorIDs: []model.TalentRef{{ID: "id-2"}, {ID: "id-ghost"}},
		}

		Convey("When normalizing", func() {
			out, err := schedule.NormalizeItem(item, roster)

			Convey("Then dangling commentator refs are filtered out", func() {
				So(err, ShouldBeNil)
				So(out.CommentatorIDs, ShouldHaveLength, 1)
				So(out.CommentatorIDs[0].ID, ShouldEqual, "id-2")
			})

			Convey("Then blank team ids are backfilled", func() {
				So(out.Teams[0].ID, ShouldNotBeEmpty)
			})
		})

		Convey("When a team loses all its players to filtering", func() {
			item.Teams = append(item.Teams, model.Team{ID: "team-2", PlayerIDs: []model.TalentRef{{ID: "id-ghost"}}})
			out, err := schedule.NormalizeItem(item, roster)

			Convey("Then the empty team is dropped", func() {
				So(err, ShouldBeNil)
				So(out.Teams, ShouldHaveLength, 1)
			})
		})

		Convey("When no team has any valid player left", func() {
			item.Teams = []model.Team{{PlayerIDs: []model.TalentRef{{ID: "id-ghost"}}}}
			_, err := schedule.NormalizeItem(item, roster)

			Convey("Then normalization fails", func() {
				So(errors.Is(err, schedule.ErrNoPlayers), ShouldBeTrue)
			})
		})

		Convey("When the id is blank", func() {
			item.ID = ""
			_, err := schedule.NormalizeItem(item, roster)
			So(errors.Is(err, schedule.ErrMissingItemID), ShouldBeTrue)
		})

		Convey("When the estimate is not a valid duration", func() {
			item.Estimate = "25 minutes"
			_, err := schedule.NormalizeItem(item, roster)
			So(err, ShouldNotBeNil)
		})

		Convey("When the scheduled start time is not a valid date", func() {
			item.ScheduledStartTime = "tomorrow"
			_, err := schedule.NormalizeItem(item, roster)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a manually edited interstitial", t, func() {
		item := model.ScheduleItem{
			ID:        "break-1",
			Type:      model.ItemTypeOther,
			TalentIDs: []model.TalentRef{{ID: "id-1"}, {ID: "id-ghost"}},
		}

		Convey("When normalizing", func() {
			out, err := schedule.NormalizeItem(item, roster)

			Convey("Then dangling talent refs are filtered out", func() {
				So(err, ShouldBeNil)
				So(out.TalentIDs, ShouldHaveLength, 1)
			})

			Convey("Then an empty result is fine; interstitials need no talent", func() {
				item.TalentIDs = []model.TalentRef{{ID: "id-ghost"}}
				out, err := schedule.NormalizeItem(item, roster)
				So(err, ShouldBeNil)
				So(out.TalentIDs, ShouldBeEmpty)
			})
		})
	})
}

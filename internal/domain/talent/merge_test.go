package talent_test

import (
	"testing"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMergeNewTalentList(t *testing.T) {
	Convey("Given an empty roster", t, func() {
		Convey("When merging an incoming list", func() {
			incoming := []model.TalentItem{
				{ExternalID: "ext-1", Name: "Alex"},
				{ExternalID: "ext-2", Name: "Sam"},
			}
			merged, stats := talent.MergeNewTalentList(nil, incoming)

			Convey("Then every item is new and gets a fresh local id", func() {
				So(merged, ShouldHaveLength, 2)
				So(stats.New, ShouldEqual, 2)
				So(stats.Updated, ShouldEqual, 0)
				So(stats.Unmodified, ShouldEqual, 0)
				So(merged[0].ID, ShouldNotBeEmpty)
				So(merged[1].ID, ShouldNotBeEmpty)
				So(merged[0].ID, ShouldNotEqual, merged[1].ID)
			})
		})
	})

	Convey("Given a roster with known talent", t, func() {
		existing := []model.TalentItem{
			{ID: "id-1", ExternalID: "ext-1", Name: "Alex", Pronouns: "they/them", Socials: model.Socials{Twitch: "alexttv"}},
			{ID: "id-2", ExternalID: "ext-2", Name: "Sam"},
		}

		Convey("When the incoming list matches by external id", func() {
			incoming := []model.TalentItem{
				{ExternalID: "ext-1", Name: "Alexandra", CountryCode: "de"},
			}
			merged, stats := talent.MergeNewTalentList(existing, incoming)

			Convey("Then the match keeps its local id and merges fields", func() {
				So(stats.Updated, ShouldEqual, 1)
				So(merged[0].ID, ShouldEqual, "id-1")
				So(merged[0].Name, ShouldEqual, "Alexandra")
				So(merged[0].CountryCode, ShouldEqual, "de")
			})

			Convey("Then empty incoming fields keep the existing value", func() {
				So(merged[0].Pronouns, ShouldEqual, "they/them")
				So(merged[0].Socials.Twitch, ShouldEqual, "alexttv")
			})

			Convey("Then unmatched existing talent is appended, never dropped", func() {
				So(merged, ShouldHaveLength, 2)
				So(stats.Unmodified, ShouldEqual, 1)
				So(merged[1].ID, ShouldEqual, "id-2")
				So(merged[1].Name, ShouldEqual, "Sam")
			})
		})

		Convey("When the incoming item has no external id", func() {
			incoming := []model.TalentItem{{Name: "Mystery"}}
			merged, stats := talent.MergeNewTalentList(existing, incoming)

			Convey("Then it never matches and is added as new", func() {
				So(stats.New, ShouldEqual, 1)
				So(stats.Unmodified, ShouldEqual, 2)
				So(merged, ShouldHaveLength, 3)
				So(merged[0].ID, ShouldNotBeEmpty)
				So(merged[0].ID, ShouldNotEqual, "id-1")
			})
		})

		Convey("When an existing item has no external id", func() {
			blank := append(existing, model.TalentItem{ID: "id-3", Name: "Local Only"})
			incoming := []model.TalentItem{{ExternalID: "ext-9", Name: "New Face"}}
			merged, stats := talent.MergeNewTalentList(blank, incoming)

			Convey("Then it survives the merge untouched", func() {
				So(stats.New, ShouldEqual, 1)
				So(stats.Unmodified, ShouldEqual, 3)
				So(merged, ShouldHaveLength, 4)
				last := merged[len(merged)-1]
				So(last.ID, ShouldEqual, "id-3")
				So(last.Name, ShouldEqual, "Local Only")
			})
		})
	})
}

func TestItemExists(t *testing.T) {
	Convey("Given a roster", t, func() {
		roster := []model.TalentItem{
			{ID: "id-1", Name: "Alex"},
			{ID: "", Name: "Broken"},
		}

		Convey("Then known ids are found", func() {
			So(talent.ItemExists(roster, "id-1"), ShouldBeTrue)
		})

		Convey("Then unknown ids are not", func() {
			So(talent.ItemExists(roster, "id-9"), ShouldBeFalse)
		})

		Convey("Then a blank id never matches, even a blank roster entry", func() {
			So(talent.ItemExists(roster, ""), ShouldBeFalse)
		})
	})
}

func TestApplyTalentUpdates(t *testing.T) {
	Convey("Given a roster with two items", t, func() {
		existing := []model.TalentItem{
			{ID: "id-1", Name: "Alex"},
			{ID: "id-2", Name: "Sam"},
		}

		Convey("When updating a known id", func() {
			updated, err := talent.ApplyTalentUpdates(existing, []model.TalentItem{
				{ID: "id-2", Name: "Samantha", Pronouns: "she/her"},
			})

			Convey("Then the item is replaced wholesale", func() {
				So(err, ShouldBeNil)
				So(updated, ShouldHaveLength, 2)
				So(updated[1].Name, ShouldEqual, "Samantha")
				So(updated[1].Pronouns, ShouldEqual, "she/her")
			})

			Convey("Then the input roster is not mutated", func() {
				So(existing[1].Name, ShouldEqual, "Sam")
			})
		})

		Convey("When updating an unknown id", func() {
			updated, err := talent.ApplyTalentUpdates(existing, []model.TalentItem{
				{ID: "id-3", Name: "Robin"},
			})

			Convey("Then the item is appended", func() {
				So(err, ShouldBeNil)
				So(updated, ShouldHaveLength, 3)
				So(updated[2].ID, ShouldEqual, "id-3")
			})
		})

		Convey("When an update has a blank id", func() {
			updated, err := talent.ApplyTalentUpdates(existing, []model.TalentItem{
				{Name: "Nameless"},
			})

			Convey("Then the whole batch is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldEqual, talent.ErrMissingID)
				So(updated, ShouldBeNil)
			})
		})
	})
}

package simsched_test

import (
	"testing"

	"github.com/SumOfBesties/besties-layout/internal/simsched"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGeneratePayload(t *testing.T) {
	Convey("Given a simulation config", t, func() {
		config := &simsched.Config{
			Slug:          "sim-event",
			Speedruns:     5,
			Interstitials: 3,
			TalentCount:   10,
		}

		Convey("When generating a payload", func() {
			payload := simsched.GeneratePayload(config)

			Convey("Then it has the requested shape", func() {
				So(payload.Schedule.ID, ShouldEqual, "sim-event")
				So(payload.Talent, ShouldHaveLength, 10)
				So(payload.Schedule.Items, ShouldHaveLength, 8)
			})

			Convey("Then no item or reference carries a local id", func() {
				for _, item := range payload.Schedule.Items {
					So(item.ID, ShouldBeEmpty)
					So(item.ExternalID, ShouldNotBeEmpty)
					for _, team := range item.Teams {
						for _, ref := range team.PlayerIDs {
							So(ref.ID, ShouldBeEmpty)
							So(ref.ExternalID, ShouldNotBeEmpty)
						}
					}
				}
			})
		})
	})
}

func TestMutatePayload(t *testing.T) {
	Convey("Given a generated payload", t, func() {
		config := &simsched.Config{
			Slug:          "sim-event",
			Speedruns:     10,
			Interstitials: 5,
			TalentCount:   20,
		}
		payload := simsched.GeneratePayload(config)

		Convey("When mutating it", func() {
			next := simsched.MutatePayload(payload)

			Convey("Then external ids stay stable", func() {
				So(next.Schedule.Items, ShouldHaveLength, len(payload.Schedule.Items))
				for i := range next.Schedule.Items {
					So(next.Schedule.Items[i].ExternalID, ShouldEqual, payload.Schedule.Items[i].ExternalID)
				}
			})

			Convey("Then the original payload is untouched by team regrouping", func() {
				for i, item := range payload.Schedule.Items {
					if !item.IsSpeedrun() {
						continue
					}
					total := 0
					for _, team := range item.Teams {
						total += len(team.PlayerIDs)
					}
					nextTotal := 0
					for _, team := range next.Schedule.Items[i].Teams {
						nextTotal += len(team.PlayerIDs)
					}
					So(nextTotal, ShouldEqual, total)
				}
			})
		})
	})
}

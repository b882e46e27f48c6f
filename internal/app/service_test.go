package app_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/adapters/mq/queue"
	"github.com/SumOfBesties/besties-layout/internal/adapters/repository"
	"github.com/SumOfBesties/besties-layout/internal/app"
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	os.Exit(m.Run())
}

// fakeSource serves whatever payload the test put in.
type fakeSource struct {
	mu      sync.Mutex
	payload model.RawPayload
	err     error
}

func (f *fakeSource) FetchScheduleAndTalent(ctx context.Context, slug string) (model.RawPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.RawPayload{}, f.err
	}
	payload := f.payload
	payload.Schedule.ID = slug
	return payload, nil
}

func (f *fakeSource) set(payload model.RawPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = payload
}

// fakeCategories resolves every title deterministically.
type fakeCategories struct{}

func (fakeCategories) Resolve(ctx context.Context, title, system string) (*model.TwitchCategory, string, error) {
	if title == "Unlisted Game" {
		return nil, "", errors.New("no such game")
	}
	return &model.TwitchCategory{ID: "cat-" + title, Name: title}, "1994", nil
}

func marathonPayload() model.RawPayload {
	return model.RawPayload{
		Schedule: model.Schedule{
			Source: model.SourceOengus,
			Items: []model.ScheduleItem{
				{
					ExternalID: "ext-r1",
					Type:       model.ItemTypeSpeedrun,
					Title:      "Crystal Caverns",
					Estimate:   "PT25M",
					Teams: []model.Team{
						{PlayerIDs: []model.TalentRef{{ExternalID: "ext-t1"}}},
					},
				},
				{
					ExternalID: "ext-b1",
					Type:       model.ItemTypeOther,
					Title:      "Intermission",
					TalentIDs:  []model.TalentRef{{ExternalID: "ext-t2"}},
				},
				{
					ExternalID: "ext-r2",
					Type:       model.ItemTypeSpeedrun,
					Title:      "Hyper Drift",
					Estimate:   "PT45M",
					Teams: []model.Team{
						{PlayerIDs: []model.TalentRef{{ExternalID: "ext-t2"}}},
					},
				},
			},
		},
		Talent: []model.TalentItem{
			{ExternalID: "ext-t1", Name: "Alex"},
			{ExternalID: "ext-t2", Name: "Sam"},
		},
	}
}

func startedService(t *testing.T, src *fakeSource) (*app.Service, context.Context) {
	t.Helper()
	ctx := context.Background()
	svc := app.New(
		app.WithStore(repository.NewMemStore()),
		app.WithSource(src),
		app.WithCategoryResolver(fakeCategories{}),
	)
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc, ctx
}

func TestServiceImport(t *testing.T) {
	Convey("Given a started service with a source", t, func() {
		src := &fakeSource{payload: marathonPayload()}
		svc, ctx := startedService(t, src)

		Convey("When running an import", func() {
			So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"}), ShouldBeNil)
			schedule := svc.ScheduleSnapshot(ctx)
			talent := svc.TalentSnapshot(ctx)

			Convey("Then schedule and talent land in the store", func() {
				So(schedule.ID, ShouldEqual, "event-1")
				So(schedule.Items, ShouldHaveLength, 3)
				So(talent, ShouldHaveLength, 2)
			})

			Convey("Then every item gets a local id and resolved references", func() {
				So(schedule.Items[0].ID, ShouldNotBeEmpty)
				playerID := schedule.Items[0].Teams[0].PlayerIDs[0].ID
				So(playerID, ShouldEqual, talent[0].ID)
				So(schedule.Items[1].TalentIDs[0].ID, ShouldEqual, talent[1].ID)
			})

			Convey("Then speedruns get category lookups", func() {
				So(schedule.Items[0].TwitchCategory, ShouldNotBeNil)
				So(schedule.Items[0].TwitchCategory.Name, ShouldEqual, "Crystal Caverns")
				So(schedule.Items[0].VideoGameReleaseYear, ShouldEqual, "1994")
				So(schedule.Items[1].TwitchCategory, ShouldBeNil)
			})

			Convey("Then the run pointers land on the first and second speedrun", func() {
				stats := svc.Stats(ctx)
				So(stats["activeRunId"], ShouldEqual, schedule.Items[0].ID)
				So(stats["nextRunId"], ShouldEqual, schedule.Items[2].ID)
			})

			Convey("And when the same event is imported again", func() {
				mutated := marathonPayload()
				mutated.Schedule.Items[0].Title = "Crystal Caverns Remastered"
				src.set(mutated)
				So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"}), ShouldBeNil)
				after := svc.ScheduleSnapshot(ctx)

				Convey("Then items keep their local ids", func() {
					So(after.Items[0].ID, ShouldEqual, schedule.Items[0].ID)
					So(after.Items[2].ID, ShouldEqual, schedule.Items[2].ID)
				})

				Convey("Then the renamed run gets a fresh category lookup", func() {
					So(after.Items[0].Title, ShouldEqual, "Crystal Caverns Remastered")
					So(after.Items[0].TwitchCategory, ShouldNotBeNil)
					So(after.Items[0].TwitchCategory.Name, ShouldEqual, "Crystal Caverns Remastered")
				})

				Convey("Then the untouched run keeps its cached lookup", func() {
					So(after.Items[2].TwitchCategory.Name, ShouldEqual, "Hyper Drift")
				})
			})

			Convey("And when a different event is imported", func() {
				So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-2"}), ShouldBeNil)
				after := svc.ScheduleSnapshot(ctx)

				Convey("Then the schedule is rebuilt with fresh ids", func() {
					So(after.ID, ShouldEqual, "event-2")
					So(after.Items[0].ID, ShouldNotEqual, schedule.Items[0].ID)
				})

				Convey("Then the talent roster still carries everyone", func() {
					So(svc.TalentSnapshot(ctx), ShouldHaveLength, 2)
				})
			})
		})

		Convey("When a category lookup fails", func() {
			payload := marathonPayload()
			payload.Schedule.Items[0].Title = "Unlisted Game"
			src.set(payload)

			Convey("Then the import still succeeds without category data", func() {
				So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"}), ShouldBeNil)
				schedule := svc.ScheduleSnapshot(ctx)
				So(schedule.Items[0].TwitchCategory, ShouldBeNil)
				So(schedule.Items[2].TwitchCategory, ShouldNotBeNil)
			})
		})

		Convey("When the source fails", func() {
			src.err = errors.New("upstream down")

			Convey("Then the import errors out", func() {
				So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"}), ShouldNotBeNil)
			})
		})

		Convey("When a schedule reference has neither id", func() {
			payload := marathonPayload()
			payload.Schedule.Items[1].TalentIDs = []model.TalentRef{{}}
			src.set(payload)

			Convey("Then the import fails hard", func() {
				So(svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"}), ShouldNotBeNil)
			})
		})
	})

	Convey("Given a service without a source", t, func() {
		svc := app.New(app.WithStore(repository.NewMemStore()))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then imports report the missing source", func() {
			err := svc.RunImport(ctx, queue.ImportRequest{Slug: "event-1"})
			So(errors.Is(err, app.ErrNoSource), ShouldBeTrue)
		})
	})
}

func TestServiceQueueing(t *testing.T) {
	Convey("Given a started service", t, func() {
		src := &fakeSource{payload: marathonPayload()}
		svc, ctx := startedService(t, src)
		sub := svc.Subscribe(ctx)

		Convey("When requesting an import through the queue", func() {
			So(svc.RequestImport(ctx, "event-1", false), ShouldBeTrue)

			Convey("Then the committed state shows up on the change feed", func() {
				select {
				case state := <-sub:
					So(state.Schedule.ID, ShouldEqual, "event-1")
					So(state.Schedule.Items, ShouldHaveLength, 3)
				case <-time.After(5 * time.Second):
					So("timed out waiting for import", ShouldBeEmpty)
				}
			})
		})

		Convey("When requesting an import with a blank slug", func() {
			So(svc.RequestImport(ctx, "", false), ShouldBeFalse)
		})
	})
}

package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/veloria/encore/internal/adapters/repository"
	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/gear"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryProgressStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty progress store", t, func() {
		store := repository.NewMemoryProgressStore()

		Convey("When an unknown profile is queried", func() {
			levels, err := store.Levels(ctx, "nobody")

			Convey("Then the result is an empty map, not an error", func() {
				So(err, ShouldBeNil)
				So(levels, ShouldNotBeNil)
				So(len(levels), ShouldEqual, 0)
			})
		})

		Convey("When levels are recorded", func() {
			So(store.SetLevel(ctx, "p1", "instruments_basic_drums", 7), ShouldBeNil)
			So(store.SetLevel(ctx, "p1", "instruments_professional_drums", 3), ShouldBeNil)
			So(store.SetLevel(ctx, "p2", "instruments_basic_piano", 5), ShouldBeNil)

			Convey("Then they read back per profile", func() {
				levels, err := store.Levels(ctx, "p1")
				So(err, ShouldBeNil)
				So(levels, ShouldResemble, map[string]int{
					"instruments_basic_drums":        7,
					"instruments_professional_drums": 3,
				})
				So(store.ProfileCount(ctx), ShouldEqual, 2)
			})

			Convey("Then mutating the returned map does not leak into the store", func() {
				levels, _ := store.Levels(ctx, "p1")
				levels["instruments_basic_drums"] = 99

				again, _ := store.Levels(ctx, "p1")
				So(again["instruments_basic_drums"], ShouldEqual, 7)
			})
		})

		Convey("When a level is outside the 0-20 domain", func() {
			So(store.SetLevel(ctx, "p1", "slug", 35), ShouldBeNil)
			So(store.SetLevel(ctx, "p1", "other", -4), ShouldBeNil)

			levels, _ := store.Levels(ctx, "p1")
			So(levels["slug"], ShouldEqual, 20)
			So(levels["other"], ShouldEqual, 0)
		})

		Convey("When the profile or slug is empty", func() {
			So(errors.Is(store.SetLevel(ctx, "", "slug", 5), repository.ErrNotFound), ShouldBeTrue)
			So(errors.Is(store.SetLevel(ctx, "p1", "", 5), repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryInventoryStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an inventory store", t, func() {
		store := repository.NewMemoryInventoryStore()

		Convey("When items are added with mixed equipped flags", func() {
			mic := gear.Item{Category: "microphone", Rarity: gear.RarityEpic}
			spare := gear.Item{Category: "microphone", Rarity: gear.RarityCommon}
			So(store.AddItem(ctx, "p1", mic, true), ShouldBeNil)
			So(store.AddItem(ctx, "p1", spare, false), ShouldBeNil)

			Convey("Then only the equipped subset is returned", func() {
				equipped, err := store.Equipped(ctx, "p1")
				So(err, ShouldBeNil)
				So(len(equipped), ShouldEqual, 1)
				So(equipped[0].Rarity, ShouldEqual, gear.RarityEpic)
			})
		})

		Convey("When an unknown profile is queried", func() {
			equipped, err := store.Equipped(ctx, "nobody")
			So(err, ShouldBeNil)
			So(equipped, ShouldBeEmpty)
		})

		Convey("When the profile id is empty", func() {
			err := store.AddItem(ctx, "", gear.Item{Category: "x"}, true)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryRosterStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a roster store", t, func() {
		store := repository.NewMemoryRosterStore()

		Convey("When an unknown band is queried", func() {
			_, err := store.Members(ctx, "ghosts")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When members are added", func() {
			id1, err := store.AddMember(ctx, "b1", band.Member{ProfileID: "p1", Role: "Drums"})
			So(err, ShouldBeNil)
			So(id1, ShouldNotBeEmpty)

			id2, err := store.AddMember(ctx, "b1", band.Member{ID: "fixed", Touring: true, TouringTier: 3})
			So(err, ShouldBeNil)
			So(id2, ShouldEqual, "fixed")

			Convey("Then the roster reads back in insertion order", func() {
				members, err := store.Members(ctx, "b1")
				So(err, ShouldBeNil)
				So(len(members), ShouldEqual, 2)
				So(members[0].Role, ShouldEqual, "Drums")
				So(members[1].TouringTier, ShouldEqual, 3)
				So(store.BandCount(ctx), ShouldEqual, 1)
			})

			Convey("Then contribution write-back lands on the right member", func() {
				So(store.SetContribution(ctx, "b1", id1, 82), ShouldBeNil)

				members, _ := store.Members(ctx, "b1")
				So(members[0].SkillContribution, ShouldEqual, 82)
				So(members[1].SkillContribution, ShouldEqual, 0)
			})

			Convey("Then write-back to a missing member or band fails", func() {
				So(errors.Is(store.SetContribution(ctx, "b1", "nope", 1), repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(store.SetContribution(ctx, "b9", id1, 1), repository.ErrNotFound), ShouldBeTrue)
			})

			Convey("Then mutating a returned roster does not leak into the store", func() {
				members, _ := store.Members(ctx, "b1")
				members[0].Role = "Kazoo"

				again, _ := store.Members(ctx, "b1")
				So(again[0].Role, ShouldEqual, "Drums")
			})
		})

		Convey("When the band id is empty", func() {
			_, err := store.AddMember(ctx, "", band.Member{})
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryProfileStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a profile store", t, func() {
		store := repository.NewMemoryProfileStore()

		Convey("When a profile is created", func() {
			id, err := store.Create(ctx, "user-1")
			So(err, ShouldBeNil)
			So(id, ShouldNotBeEmpty)

			Convey("Then lookup by user resolves it", func() {
				got, err := store.ProfileByUser(ctx, "user-1")
				So(err, ShouldBeNil)
				So(got, ShouldEqual, id)
			})

			Convey("Then creating again reuses the mapping", func() {
				again, err := store.Create(ctx, "user-1")
				So(err, ShouldBeNil)
				So(again, ShouldEqual, id)
			})
		})

		Convey("When an unknown user is looked up", func() {
			_, err := store.ProfileByUser(ctx, "stranger")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When the user id is empty", func() {
			_, err := store.Create(ctx, "")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

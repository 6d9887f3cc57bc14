package roster_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/internal/roster"
)

func TestRoster(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Roster Suite")
}

type testRecord struct {
	id       int64
	name     string
	status   string
	category string
	rank     int
}

func (r testRecord) RecordID() int64     { return r.id }
func (r testRecord) DisplayName() string { return r.name }
func (r testRecord) StatusKey() string   { return r.status }
func (r testRecord) CategoryKey() string { return r.category }

var _ = Describe("Store", func() {
	var (
		bus    *events.Bus
		logger *slog.Logger
		ctx    context.Context
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewBus(logger)
		ctx = context.Background()
	})

	Describe("Load", func() {
		It("should key the fetched collection by record id and become ready", func() {
			fetcher := func(ctx context.Context) ([]testRecord, error) {
				return []testRecord{
					{id: 1, name: "Amrani"},
					{id: 2, name: "Bouzid"},
				}, nil
			}
			store := roster.NewStore("personnel", fetcher, bus, logger)

			err := store.Load(ctx)

			Expect(err).ToNot(HaveOccurred())
			Expect(store.Status()).To(Equal(roster.StatusReady))
			Expect(store.Len()).To(Equal(2))
			record, ok := store.Get(2)
			Expect(ok).To(BeTrue())
			Expect(record.name).To(Equal("Bouzid"))
		})

		It("should clear the collection on failure instead of keeping stale data", func() {
			shouldFail := false
			fetcher := func(ctx context.Context) ([]testRecord, error) {
				if shouldFail {
					return nil, errors.New("connection refused")
				}
				return []testRecord{{id: 1, name: "Amrani"}}, nil
			}
			store := roster.NewStore("personnel", fetcher, bus, logger)

			Expect(store.Load(ctx)).To(Succeed())
			Expect(store.Len()).To(Equal(1))

			shouldFail = true
			err := store.Load(ctx)

			Expect(err).To(HaveOccurred())
			Expect(store.Status()).To(Equal(roster.StatusError))
			Expect(store.ErrorMessage()).ToNot(BeEmpty())
			Expect(store.Len()).To(Equal(0))
		})

		It("should publish lifecycle events scoped to the store's roster name", func() {
			fetcher := func(ctx context.Context) ([]testRecord, error) {
				return []testRecord{{id: 1, name: "Amrani"}}, nil
			}
			store := roster.NewStore("personnel", fetcher, bus, logger)

			var received []events.Event
			store.Subscribe(func(e events.Event) {
				received = append(received, e)
			})

			// Events for another roster on the same bus must not leak in.
			bus.Publish(events.New(events.TypeRosterLoaded, map[string]interface{}{
				"roster": "absences",
				"count":  3,
			}))
			Expect(store.Load(ctx)).To(Succeed())

			Expect(received).To(HaveLen(1))
			Expect(received[0].Type).To(Equal(events.TypeRosterLoaded))
			Expect(received[0].Data["roster"]).To(Equal("personnel"))
			Expect(received[0].Data["count"]).To(Equal(1))
		})

		It("should let the last response to resolve win when loads overlap", func() {
			replies := make(chan chan []testRecord, 2)
			fetcher := func(ctx context.Context) ([]testRecord, error) {
				reply := make(chan []testRecord)
				replies <- reply
				return <-reply, nil
			}
			store := roster.NewStore("personnel", fetcher, bus, logger)

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = store.Load(ctx)
			}()
			go func() {
				defer wg.Done()
				_ = store.Load(ctx)
			}()

			first := <-replies
			second := <-replies

			// The request issued second resolves first; the slower earlier
			// response then overwrites it.
			second <- []testRecord{{id: 2, name: "newer"}}
			first <- []testRecord{{id: 1, name: "older"}}
			wg.Wait()

			Expect(store.Len()).To(Equal(1))
			_, ok := store.Get(1)
			Expect(ok).To(BeTrue())
		})
	})

	Describe("Records", func() {
		It("should return an independent copy of the collection", func() {
			fetcher := func(ctx context.Context) ([]testRecord, error) {
				return []testRecord{{id: 1, name: "Amrani"}}, nil
			}
			store := roster.NewStore("personnel", fetcher, bus, logger)
			Expect(store.Load(ctx)).To(Succeed())

			records := store.Records()
			records[0] = testRecord{id: 99, name: "mutated"}

			record, ok := store.Get(1)
			Expect(ok).To(BeTrue())
			Expect(record.name).To(Equal("Amrani"))
		})
	})
})

var _ = Describe("Pipeline", func() {
	records := []testRecord{
		{id: 1, name: "Amrani Karim", status: "PENDING", category: "PROFESSOR", rank: 3},
		{id: 2, name: "Bouzid Salma", status: "APPROVED", category: "PAT", rank: 1},
		{id: 3, name: "Cherif Nadia", status: "PENDING", category: "PROFESSOR", rank: 2},
		{id: 4, name: "Djamel Yacine", status: "REJECTED", category: "CONTRACTOR", rank: 2},
	}

	Describe("Filters", func() {
		It("should pass everything through when no filter is set", func() {
			view := roster.Project(records, roster.Filters{}, roster.Comparator[testRecord]{})
			Expect(view).To(HaveLen(len(records)))
			Expect(view).To(Equal(records))
		})

		It("should apply filters conjunctively", func() {
			view := roster.Project(records, roster.Filters{
				Status:   "PENDING",
				Category: "PROFESSOR",
			}, roster.Comparator[testRecord]{})

			Expect(view).To(HaveLen(2))
			for _, r := range view {
				Expect(r.status).To(Equal("PENDING"))
				Expect(r.category).To(Equal("PROFESSOR"))
			}
		})

		It("should match search case-insensitively on the display name", func() {
			view := roster.Project(records, roster.Filters{Search: "bouzid"}, roster.Comparator[testRecord]{})

			Expect(view).To(HaveLen(1))
			Expect(view[0].id).To(Equal(int64(2)))
		})

		It("should never exclude records whose status key is empty when filtering by status", func() {
			noStatus := []testRecord{{id: 1, name: "Amrani", status: ""}}
			view := roster.Project(noStatus, roster.Filters{Status: "PENDING"}, roster.Comparator[testRecord]{})
			Expect(view).To(BeEmpty())

			view = roster.Project(noStatus, roster.Filters{}, roster.Comparator[testRecord]{})
			Expect(view).To(HaveLen(1))
		})
	})

	Describe("Project", func() {
		It("should not mutate the raw collection", func() {
			cmp := roster.ByInt(func(r testRecord) int { return r.rank }, false)
			_ = roster.Project(records, roster.Filters{}, cmp)

			Expect(records[0].id).To(Equal(int64(1)))
			Expect(records[3].id).To(Equal(int64(4)))
		})

		It("should sort ascending into a non-decreasing sequence", func() {
			cmp := roster.ByInt(func(r testRecord) int { return r.rank }, false)
			view := roster.Project(records, roster.Filters{}, cmp)

			Expect(view).To(HaveLen(len(records)))
			for i := 1; i < len(view); i++ {
				Expect(view[i].rank).To(BeNumerically(">=", view[i-1].rank))
			}
		})

		It("should sort descending into a non-increasing sequence", func() {
			cmp := roster.ByInt(func(r testRecord) int { return r.rank }, true)
			view := roster.Project(records, roster.Filters{}, cmp)

			for i := 1; i < len(view); i++ {
				Expect(view[i].rank).To(BeNumerically("<=", view[i-1].rank))
			}
		})

		It("should keep every element when the sort key has ties", func() {
			cmp := roster.ByInt(func(r testRecord) int { return r.rank }, false)
			view := roster.Project(records, roster.Filters{}, cmp)

			seen := make(map[int64]bool, len(view))
			for _, r := range view {
				seen[r.id] = true
			}
			Expect(seen).To(HaveLen(len(records)))
		})

		It("should sort on a string key using native ordering", func() {
			cmp := roster.ByString(func(r testRecord) string { return r.name }, false)
			view := roster.Project(records, roster.Filters{}, cmp)

			Expect(view[0].name).To(Equal("Amrani Karim"))
			Expect(view[len(view)-1].name).To(Equal("Djamel Yacine"))
		})
	})
})

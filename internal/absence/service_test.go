package absence_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/absence"
	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/internal/roster"
)

type mockAPI struct {
	postCalls int
	lastPath  string
	lastBody  interface{}
	err       error
}

func (m *mockAPI) Post(ctx context.Context, path string, body, out interface{}) error {
	m.postCalls++
	m.lastPath = path
	m.lastBody = body
	return m.err
}

type mockNotifier struct {
	infos  []string
	errors []string
}

func (m *mockNotifier) Info(msg string)  { m.infos = append(m.infos, msg) }
func (m *mockNotifier) Error(msg string) { m.errors = append(m.errors, msg) }

type mockConfirmer struct {
	answer   bool
	response string
	asked    []string
}

func (m *mockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	m.asked = append(m.asked, prompt)
	return m.answer, nil
}

func (m *mockConfirmer) Ask(ctx context.Context, prompt string) (string, error) {
	m.asked = append(m.asked, prompt)
	return m.response, nil
}

var _ = Describe("Service", func() {
	var (
		service      *absence.Service
		api          *mockAPI
		notifier     *mockNotifier
		confirmer    *mockConfirmer
		store        *roster.Store[absence.Record]
		fetcherCalls int
		ctx          context.Context
	)

	BeforeEach(func() {
		api = &mockAPI{}
		notifier = &mockNotifier{}
		confirmer = &mockConfirmer{answer: true, response: "overlapping request"}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewBus(logger)
		ctx = context.Background()

		fetcherCalls = 0
		fetcher := func(ctx context.Context) ([]absence.Record, error) {
			fetcherCalls++
			return []absence.Record{
				{ID: 1, PersonnelName: "Amrani Karim", Status: absence.StatusPending},
				{ID: 2, PersonnelName: "Bouzid Salma", Status: absence.StatusApproved},
			}, nil
		}
		store = roster.NewStore("absences", fetcher, bus, logger)
		Expect(store.Load(ctx)).To(Succeed())

		service = absence.NewService(api, store, notifier, confirmer, bus, logger)
	})

	Describe("Approve", func() {
		It("should post the approval with its audit comment and reload", func() {
			loadsBefore := fetcherCalls

			err := service.Approve(ctx, 1, "covered by substitute")

			Expect(err).ToNot(HaveOccurred())
			Expect(api.postCalls).To(Equal(1))
			Expect(api.lastPath).To(Equal("/absences/1/approve"))
			payload, ok := api.lastBody.(absenceDatamodel.ApprovePayload)
			Expect(ok).To(BeTrue())
			Expect(payload.Comment).To(Equal("covered by substitute"))
			Expect(fetcherCalls).To(Equal(loadsBefore + 1))
			Expect(notifier.infos).To(ContainElement("absence request approved"))
		})

		It("should issue zero requests for a record that is not PENDING", func() {
			err := service.Approve(ctx, 2, "")

			Expect(err).To(Equal(internal.ErrInvalidStatus))
			Expect(api.postCalls).To(Equal(0))
			Expect(notifier.errors).ToNot(BeEmpty())
		})

		It("should issue zero requests for an unknown record", func() {
			err := service.Approve(ctx, 99, "")

			Expect(err).To(Equal(internal.ErrRecordNotFound))
			Expect(api.postCalls).To(Equal(0))
		})

		It("should issue zero requests when the confirmation is declined", func() {
			confirmer.answer = false

			err := service.Approve(ctx, 1, "")

			Expect(err).ToNot(HaveOccurred())
			Expect(api.postCalls).To(Equal(0))
			Expect(notifier.infos).To(ContainElement("approval cancelled"))
		})
	})

	Describe("Reject", func() {
		It("should prompt for the reason and post the rejection", func() {
			err := service.Reject(ctx, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(api.postCalls).To(Equal(1))
			Expect(api.lastPath).To(Equal("/absences/1/reject"))
			payload, ok := api.lastBody.(absenceDatamodel.RejectPayload)
			Expect(ok).To(BeTrue())
			Expect(payload.Reason).To(Equal("overlapping request"))
			Expect(notifier.infos).To(ContainElement("absence request rejected"))
		})

		It("should issue zero requests when the supplied reason is empty", func() {
			confirmer.response = "   "

			err := service.Reject(ctx, 1)

			Expect(err).To(Equal(internal.ErrEmptyReason))
			Expect(api.postCalls).To(Equal(0))
		})

		It("should issue zero requests for a record that is not PENDING", func() {
			err := service.Reject(ctx, 2)

			Expect(err).To(Equal(internal.ErrInvalidStatus))
			Expect(api.postCalls).To(Equal(0))
			Expect(confirmer.asked).To(BeEmpty())
		})

		It("should surface the server message when the rejection fails", func() {
			api.err = internal.NewServerError("transition conflict", nil)

			err := service.Reject(ctx, 1)

			Expect(err).To(HaveOccurred())
			Expect(notifier.errors).To(ContainElement("transition conflict"))
		})
	})
})

package personnel_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/internal/personnel"
	"github.com/kbelhadj/roster-management/internal/roster"
)

type mockAPI struct {
	postCalls   int
	patchCalls  int
	deleteCalls int
	lastPath    string
	lastBody    interface{}
	err         error
}

func (m *mockAPI) Post(ctx context.Context, path string, body, out interface{}) error {
	m.postCalls++
	m.lastPath = path
	m.lastBody = body
	return m.err
}

func (m *mockAPI) Patch(ctx context.Context, path string, body, out interface{}) error {
	m.patchCalls++
	m.lastPath = path
	m.lastBody = body
	return m.err
}

func (m *mockAPI) Delete(ctx context.Context, path string) error {
	m.deleteCalls++
	m.lastPath = path
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
	asked    []string
	response string
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
		service      *personnel.Service
		api          *mockAPI
		notifier     *mockNotifier
		confirmer    *mockConfirmer
		store        *roster.Store[personnel.Record]
		fetcherCalls int
		logger       *slog.Logger
		ctx          context.Context
	)

	BeforeEach(func() {
		api = &mockAPI{}
		notifier = &mockNotifier{}
		confirmer = &mockConfirmer{answer: true}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewBus(logger)
		ctx = context.Background()

		fetcherCalls = 0
		fetcher := func(ctx context.Context) ([]personnel.Record, error) {
			fetcherCalls++
			return []personnel.Record{{ID: 1, Name: "Amrani Karim"}}, nil
		}
		store = roster.NewStore("personnel", fetcher, bus, logger)
		Expect(store.Load(ctx)).To(Succeed())

		service = personnel.NewService(api, store, notifier, confirmer, bus, logger)
	})

	Describe("Create", func() {
		It("should post the nested payload and reload the store", func() {
			loadsBefore := fetcherCalls
			callbackRan := false

			err := service.Create(ctx, validForm(), func() { callbackRan = true })

			Expect(err).ToNot(HaveOccurred())
			Expect(api.postCalls).To(Equal(1))
			Expect(api.lastPath).To(Equal("/personnel"))
			Expect(fetcherCalls).To(Equal(loadsBefore + 1))
			Expect(callbackRan).To(BeTrue())
			Expect(notifier.infos).To(ContainElement("personnel record created"))
		})

		It("should issue zero requests when validation fails", func() {
			err := service.Create(ctx, personnel.FormInput{}, nil)

			Expect(err).To(HaveOccurred())
			Expect(api.postCalls).To(Equal(0))
			Expect(notifier.errors).ToNot(BeEmpty())
		})

		It("should surface the server message and skip the callback on failure", func() {
			api.err = internal.NewServerError("insert failed", nil)
			callbackRan := false

			err := service.Create(ctx, validForm(), func() { callbackRan = true })

			Expect(err).To(HaveOccurred())
			Expect(callbackRan).To(BeFalse())
			Expect(notifier.errors).To(ContainElement("insert failed"))
		})
	})

	Describe("Update", func() {
		It("should patch the resolved record", func() {
			form := personnel.UpdateFormInput{FormInput: validForm(), ID: int64Ptr(9)}

			err := service.Update(ctx, form, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(api.patchCalls).To(Equal(1))
			Expect(api.lastPath).To(Equal("/personnel/9"))
		})

		It("should fail with a not-found error and zero requests when no id resolves", func() {
			form := personnel.UpdateFormInput{FormInput: validForm()}

			err := service.Update(ctx, form, nil)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
			Expect(api.patchCalls).To(Equal(0))
			Expect(api.postCalls).To(Equal(0))
		})

		It("should resolve the id through the nested identity reference", func() {
			form := personnel.UpdateFormInput{
				FormInput: validForm(),
				Identity:  &personnel.IdentityRef{ID: int64Ptr(14)},
			}

			err := service.Update(ctx, form, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(api.lastPath).To(Equal("/personnel/14"))
		})
	})

	Describe("Delete", func() {
		It("should delete after confirmation and reload the store", func() {
			loadsBefore := fetcherCalls

			err := service.Delete(ctx, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(confirmer.asked).To(HaveLen(1))
			Expect(api.deleteCalls).To(Equal(1))
			Expect(api.lastPath).To(Equal("/personnel/1"))
			Expect(fetcherCalls).To(Equal(loadsBefore + 1))
		})

		It("should issue zero requests when the confirmation is declined", func() {
			confirmer.answer = false

			err := service.Delete(ctx, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(api.deleteCalls).To(Equal(0))
			Expect(notifier.infos).To(ContainElement("deletion cancelled"))
		})
	})
})

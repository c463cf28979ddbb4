package service_test

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nbr5410/load-planner/internal/events"
	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/pkg/requestid"
)

var _ = Describe("sizing service events", func() {
	var (
		emitter *recordingEmitter
		svc     *service.SizingService
		ctx     context.Context
	)

	BeforeEach(func() {
		emitter = &recordingEmitter{}
		svc = service.NewSizingService(service.WithEventEmitter(emitter))
		ctx = requestid.ToContext(context.TODO(), "req-1")
	})

	It("emits a calculation event", func() {
		_, err := svc.Calculate(ctx, plan.Default())
		Expect(err).To(BeNil())

		Expect(emitter.kinds).To(Equal([]string{events.CalculationMessageKind}))
		e, ok := emitter.payloads[0].(events.CalculationEvent)
		Expect(ok).To(BeTrue())
		Expect(e.Rooms).To(Equal(6))
		Expect(e.Appliances).To(Equal(1))
		Expect(e.DemandedVA).To(Equal(8498.6))
		Expect(e.MainBreakerA).To(Equal(40))
		Expect(e.RequestID).To(Equal("req-1"))
	})

	It("emits an export event", func() {
		results, err := svc.Calculate(ctx, plan.Default())
		Expect(err).To(BeNil())

		exported, err := svc.Export(ctx, results, types.ReportFormatCSV)
		Expect(err).To(BeNil())

		Expect(emitter.kinds).To(HaveLen(2))
		Expect(emitter.kinds[1]).To(Equal(events.ExportMessageKind))
		e, ok := emitter.payloads[1].(events.ExportEvent)
		Expect(ok).To(BeTrue())
		Expect(e.Format).To(Equal("csv"))
		Expect(e.Bytes).To(Equal(len(exported.Content)))
	})

	It("does not emit on failure", func() {
		_, err := svc.Export(ctx, nil, types.ReportFormatCSV)
		Expect(err).ToNot(BeNil())
		Expect(emitter.kinds).To(BeEmpty())
	})

	It("ignores emitter errors", func() {
		emitter.err = errors.New("sink unavailable")

		_, err := svc.Calculate(ctx, plan.Default())
		Expect(err).To(BeNil())
	})
})

type recordingEmitter struct {
	lock     sync.Mutex
	kinds    []string
	payloads []any
	err      error
}

func (r *recordingEmitter) Write(_ context.Context, kind string, payload any) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return r.err
	}
	r.kinds = append(r.kinds, kind)
	r.payloads = append(r.payloads, payload)
	return nil
}

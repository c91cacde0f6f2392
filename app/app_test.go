package app

import (
	"context"
	"errors"
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"stardrift/field"
	"stardrift/hal"
	"stardrift/internal/stats"
)

type fakeSampler struct {
	calls int
}

func (s *fakeSampler) Sample() (stats.Resources, error) {
	s.calls++
	return stats.Resources{CPUPercent: 12.5, RSS: 1 << 20}, nil
}

var _ = Describe("App", func() {
	var (
		mockCtrl *gomock.Controller
		host     *MockHAL
		display  *MockDisplay
		fb       *MockFramebuffer
		logger   *MockLogger
		ctx      context.Context
		cancel   context.CancelFunc
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		host = NewMockHAL(mockCtrl)
		display = NewMockDisplay(mockCtrl)
		fb = NewMockFramebuffer(mockCtrl)
		logger = NewMockLogger(mockCtrl)
		ctx, cancel = context.WithCancel(context.Background())

		host.EXPECT().Display().Return(display).AnyTimes()
		host.EXPECT().Logger().Return(logger).AnyTimes()
		display.EXPECT().Framebuffer().Return(fb).AnyTimes()
		fb.EXPECT().Width().Return(16).AnyTimes()
		fb.EXPECT().Height().Return(12).AnyTimes()
		fb.EXPECT().Format().Return(hal.PixelFormatRGBA8888).AnyTimes()
		logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	})

	AfterEach(func() {
		cancel()
		mockCtrl.Finish()
	})

	newApp := func(cfg Config) *App {
		fb.EXPECT().ClearRGB(uint8(0), uint8(0), uint8(0))
		a, err := New(ctx, host, cfg)
		Expect(err).ToNot(HaveOccurred())
		return a
	}

	It("should fail without a framebuffer", func() {
		noFB := NewMockDisplay(mockCtrl)
		noFB.EXPECT().Framebuffer().Return(nil)
		h := NewMockHAL(mockCtrl)
		h.EXPECT().Display().Return(noFB)

		_, err := New(ctx, h, Config{})
		Expect(err).To(MatchError(ErrNoDisplay))
	})

	It("should size the frame from the framebuffer", func() {
		a := newApp(Config{TimeScale: 1})

		Expect(a.Frame().Width).To(Equal(16))
		Expect(a.Frame().Height).To(Equal(12))
		Expect(a.Clock().Scale()).To(Equal(1.0))
	})

	It("should render, write and present once per step", func() {
		a := newApp(Config{TimeScale: 1, Workers: 2})

		var written *image.RGBA
		fb.EXPECT().WriteRGBA(gomock.Any()).
			DoAndReturn(func(src *image.RGBA) error {
				written = src
				return nil
			})
		fb.EXPECT().Present().Return(nil)

		Expect(a.Step(0.5)).To(Succeed())

		Expect(a.Clock().Now()).To(Equal(0.5))
		Expect(a.Stats().Snapshot().Frames).To(Equal(uint64(1)))
		Expect(written).ToNot(BeNil())
		Expect(written.Bounds().Dx()).To(Equal(16))
		Expect(written.Bounds().Dy()).To(Equal(12))

		want, err := field.ComputePixel(a.Frame().Coord(3, 4), a.Frame().Resolution(), 0.5)
		Expect(err).ToNot(HaveOccurred())
		Expect(a.Frame().At(3, 4)).To(Equal(want))

		r, g, b := field.EncodingSRGB.Encode(want)
		Expect(written.RGBAAt(3, 4)).To(Equal(colorRGBA(r, g, b)))
	})

	It("should scale host deltas", func() {
		a := newApp(Config{TimeScale: 0.001})
		fb.EXPECT().WriteRGBA(gomock.Any()).Return(nil).Times(2)
		fb.EXPECT().Present().Return(nil).Times(2)

		Expect(a.Step(1)).To(Succeed())
		Expect(a.Step(1)).To(Succeed())

		Expect(a.Clock().Now()).To(BeNumerically("~", 0.002, 1e-12))
	})

	It("should hold time on a missing delta", func() {
		a := newApp(Config{TimeScale: 1})
		fb.EXPECT().WriteRGBA(gomock.Any()).Return(nil).Times(2)
		fb.EXPECT().Present().Return(nil).Times(2)

		Expect(a.Step(0.25)).To(Succeed())
		Expect(a.Step(0)).To(Succeed())

		Expect(a.Clock().Now()).To(Equal(0.25))
		Expect(a.Clock().Held()).To(Equal(uint64(1)))
	})

	It("should drop a failed frame and keep going", func() {
		a := newApp(Config{TimeScale: 1})
		a.render = func(context.Context, *field.Frame, float64, ...field.Option) error {
			return errors.New("boom")
		}
		logger.EXPECT().Warn("frame dropped", gomock.Any()).Return(nil)

		Expect(a.Step(0.1)).To(Succeed())

		s := a.Stats().Snapshot()
		Expect(s.Frames).To(Equal(uint64(0)))
		Expect(s.Dropped).To(Equal(uint64(1)))
		Expect(a.Clock().Now()).To(Equal(0.1))
	})

	It("should stop on a cancelled context", func() {
		a := newApp(Config{TimeScale: 1})
		cancel()

		Expect(a.Step(0.1)).To(MatchError(context.Canceled))
	})

	It("should report framebuffer failures", func() {
		a := newApp(Config{TimeScale: 1})
		fb.EXPECT().WriteRGBA(gomock.Any()).Return(errors.New("bus"))

		err := a.Step(0.1)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("write framebuffer"))
	})

	It("should log stats periodically", func() {
		sampler := &fakeSampler{}
		a := newApp(Config{TimeScale: 1, StatsEvery: 2, Sampler: sampler})
		fb.EXPECT().WriteRGBA(gomock.Any()).Return(nil).Times(4)
		fb.EXPECT().Present().Return(nil).Times(4)
		logger.EXPECT().Info("frame stats", gomock.Any()).Times(2)

		for i := 0; i < 4; i++ {
			Expect(a.Step(1.0 / 60)).To(Succeed())
		}
		Expect(sampler.calls).To(Equal(2))
	})

	Context("when built through Factory", func() {
		It("should recover a panicking step", func() {
			var built *App
			fb.EXPECT().ClearRGB(uint8(0), uint8(0), uint8(0))
			step, err := Factory(ctx, Config{TimeScale: 1}, func(a *App) { built = a })(host)
			Expect(err).ToNot(HaveOccurred())
			Expect(built).ToNot(BeNil())

			built.render = func(context.Context, *field.Frame, float64, ...field.Option) error {
				panic("bad band")
			}
			logger.EXPECT().Error("step panic", gomock.Any()).Return(nil)
			fb.EXPECT().ClearRGB(uint8(0x40), uint8(0), uint8(0))
			fb.EXPECT().Present().Return(nil)

			err = step(0.1)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bad band"))
		})
	})
})

func colorRGBA(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

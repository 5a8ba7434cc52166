package wave_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kinwave/internal/wave"
)

var _ = Describe("Solve", func() {
	var params wave.Params

	BeforeEach(func() {
		params = wave.Params{
			Length: 1000, Spacing: 100, TimeStep: 10,
			UpstreamDepth: 1.0, UpstreamDischarge: 10.0,
			DownstreamDepth: 0.5, DownstreamDischarge: 0.0,
		}
	})

	Context("with a valid grid", func() {
		var profile *wave.Profile

		JustBeforeEach(func() {
			var err error
			profile, err = wave.Solve(params)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns three sequences of floor(length/spacing) cells", func() {
			n := int(math.Floor(params.Length / params.Spacing))
			Expect(profile.Coordinates).To(HaveLen(n))
			Expect(profile.Depth).To(HaveLen(n))
			Expect(profile.Discharge).To(HaveLen(n))
		})

		It("spaces coordinates evenly from zero to the reach length", func() {
			Expect(profile.Coordinates[0]).To(Equal(0.0))
			Expect(profile.Coordinates[len(profile.Coordinates)-1]).To(Equal(params.Length))

			step := params.Length / float64(len(profile.Coordinates)-1)
			for i := 1; i < len(profile.Coordinates); i++ {
				Expect(profile.Coordinates[i]).To(BeNumerically(">=", profile.Coordinates[i-1]))
				Expect(profile.Coordinates[i] - profile.Coordinates[i-1]).To(BeNumerically("~", step, 1e-9))
			}
		})

		It("keeps the upstream boundary in the first cell", func() {
			Expect(profile.Depth[0]).To(Equal(params.UpstreamDepth))
			Expect(profile.Discharge[0]).To(Equal(params.UpstreamDischarge))
		})

		It("overwrites the last cell with the downstream boundary", func() {
			last := profile.Len() - 1
			Expect(profile.Depth[last]).To(Equal(params.DownstreamDepth))
			Expect(profile.Discharge[last]).To(Equal(params.DownstreamDischarge))
		})

		It("is deterministic", func() {
			again, err := wave.Solve(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Coordinates).To(Equal(profile.Coordinates))
			Expect(again.Depth).To(Equal(profile.Depth))
			Expect(again.Discharge).To(Equal(profile.Discharge))
		})

		When("the downstream boundary disagrees with the interior", func() {
			BeforeEach(func() {
				params.DownstreamDepth = 1.9
				params.DownstreamDischarge = 999
			})

			It("still lets the boundary win", func() {
				last := profile.Len() - 1
				Expect(profile.Depth[last]).To(Equal(1.9))
				Expect(profile.Discharge[last]).To(Equal(999.0))
			})
		})

		When("the grid holds a single cell", func() {
			BeforeEach(func() {
				params.Length, params.Spacing = 100, 100
			})

			It("returns the upstream cell only", func() {
				Expect(profile.Coordinates).To(Equal([]float64{0}))
				Expect(profile.Depth).To(Equal([]float64{params.UpstreamDepth}))
				Expect(profile.Discharge).To(Equal([]float64{params.UpstreamDischarge}))
			})
		})
	})

	DescribeTable("rejects grids without a cell",
		func(length, spacing float64) {
			params.Length, params.Spacing = length, spacing
			profile, err := wave.Solve(params)
			Expect(err).To(MatchError(wave.ErrInvalidDiscretization))
			Expect(profile).To(BeNil())
		},
		Entry("zero spacing", 1000.0, 0.0),
		Entry("zero length", 0.0, 100.0),
		Entry("spacing larger than length", 100.0, 200.0),
	)

	Context("with the default interactive parameters on a short reach", func() {
		BeforeEach(func() {
			params.TimeStep = 600
		})

		It("signals invalid input once a negative depth reaches the power term", func() {
			profile, err := wave.Solve(params)
			Expect(err).To(MatchError(wave.ErrInvalidInput))
			Expect(profile).To(BeNil())

			var cellErr *wave.CellError
			Expect(errors.As(err, &cellErr)).To(BeTrue())
			Expect(cellErr.Cell).To(Equal(1))
			Expect(cellErr.Depth).To(Equal(-35.0))
		})
	})
})

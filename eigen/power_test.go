package eigen_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/eigen"
	"github.com/katalvlaran/lvnum/matrix"
)

// EstimateSuite exercises power iteration on the canonical spectra.
// Every test gets a fresh tint logger writing into buf.
type EstimateSuite struct {
	suite.Suite
	buf *bytes.Buffer
	log *slog.Logger
}

func (s *EstimateSuite) SetupTest() {
	s.buf = new(bytes.Buffer)
	s.log = slog.New(tint.NewHandler(s.buf, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}))
}

func (s *EstimateSuite) dense(rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseRows(rows)
	require.NoError(s.T(), err)

	return m
}

// TestSeparated: [[1,1],[0,2]] has the well-separated dominant eigenvalue 2.
func (s *EstimateSuite) TestSeparated() {
	res, err := eigen.Estimate(s.dense([][]float64{{1, 1}, {0, 2}}), eigen.WithLogger(s.log))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.Converged, res.Status)
	require.True(s.T(), res.Ok())
	require.Equal(s.T(), 2.0, res.Value)
	require.Less(s.T(), res.Iterations, 200)

	// Eigenvector of 2 is (1,1)/√2; the positive seed keeps the sign.
	require.InDeltaSlice(s.T(), []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}, res.Vector.RawData(), 1e-6)
	require.Contains(s.T(), s.buf.String(), "Converged")
}

// TestDefective: [[1,1],[0,1]] converges like 1/k and still reports 1.
func (s *EstimateSuite) TestDefective() {
	if testing.Short() {
		s.T().Skip("about 10^6 rounds")
	}
	res, err := eigen.Estimate(s.dense([][]float64{{1, 1}, {0, 1}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.Converged, res.Status)
	require.Equal(s.T(), 1.0, res.Value)
	require.Greater(s.T(), res.Iterations, 100_000)
	require.Less(s.T(), res.Iterations, eigen.DefaultMaxIterations)
}

// TestRotation: a pure rotation has no real eigenvalue.
func (s *EstimateSuite) TestRotation() {
	res, err := eigen.Estimate(s.dense([][]float64{{0.8, -0.6}, {0.6, 0.8}}), eigen.WithLogger(s.log))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.NotParallel, res.Status)
	require.False(s.T(), res.Ok())
	require.Equal(s.T(), 2, res.Iterations) // quotient is constant from the start
	require.Equal(s.T(), 0, res.Vector.Len())

	out := s.buf.String()
	require.Contains(s.T(), out, "not an eigenvector")
	require.Contains(s.T(), out, "NotParallel")
}

// TestZeroMatrix: A·v vanishes on the first round.
func (s *EstimateSuite) TestZeroMatrix() {
	z, err := matrix.NewZeros(3)
	require.NoError(s.T(), err)
	res, err := eigen.Estimate(z, eigen.WithLogger(s.log))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.ZeroVector, res.Status)
	require.Equal(s.T(), 1, res.Iterations)
	require.Contains(s.T(), s.buf.String(), "ZeroVector")
}

// TestNegativeDominant: the sign of the dominant eigenvalue survives.
func (s *EstimateSuite) TestNegativeDominant() {
	res, err := eigen.Estimate(s.dense([][]float64{{-3, 0}, {0, 1}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.Converged, res.Status)
	require.Equal(s.T(), -3.0, res.Value)
}

// TestExtremeScale: finite entries far from 1 neither overflow nor underflow
// the iterate, and the quotient is reported at its own magnitude.
func (s *EstimateSuite) TestExtremeScale() {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"huge", [][]float64{{1e200, 0}, {0, 1e199}}, 1e200},
		{"tiny", [][]float64{{2e-170, 0}, {0, 1e-170}}, 2e-170},
		{"tiny_negative", [][]float64{{-3e-200, 0}, {0, 1e-200}}, -3e-200},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := eigen.Estimate(s.dense(tc.rows))
			require.NoError(s.T(), err)
			require.Equal(s.T(), eigen.Converged, res.Status, "iterations=%d", res.Iterations)
			require.InEpsilon(s.T(), tc.want, res.Value, 1e-9)
			require.InDelta(s.T(), 1.0, res.Vector.Norm2(), 1e-12)
		})
	}
}

// TestScaledRotation: the parallelism bound follows the matrix magnitude, so a
// rotation is rejected at 1e-170 exactly as it is at unit scale.
func (s *EstimateSuite) TestScaledRotation() {
	for _, k := range []float64{1e-170, 1e200} {
		res, err := eigen.Estimate(s.dense([][]float64{{0.8 * k, -0.6 * k}, {0.6 * k, 0.8 * k}}))
		require.NoError(s.T(), err)
		require.Equal(s.T(), eigen.NotParallel, res.Status, "scale=%g", k)
		require.Equal(s.T(), 2, res.Iterations, "scale=%g", k)
		require.False(s.T(), res.Ok())
	}
}

// TestIterationLimit: a tiny cap stops the slow defective case.
func (s *EstimateSuite) TestIterationLimit() {
	res, err := eigen.Estimate(s.dense([][]float64{{1, 1}, {0, 1}}),
		eigen.WithMaxIterations(5), eigen.WithLogger(s.log))
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.IterationLimit, res.Status)
	require.Equal(s.T(), 5, res.Iterations)
	require.Contains(s.T(), s.buf.String(), "IterationLimit")
}

// TestSymmetricOracle compares with gonum's symmetric eigensolver.
func (s *EstimateSuite) TestSymmetricOracle() {
	data := []float64{
		2, 1, 0,
		1, 3, 1,
		0, 1, 4,
	}
	m, err := matrix.NewDense(3, data)
	require.NoError(s.T(), err)
	res, err := eigen.Estimate(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), eigen.Converged, res.Status)

	var es mat.EigenSym
	require.True(s.T(), es.Factorize(mat.NewSymDense(3, data), false))
	vals := es.Values(nil) // ascending
	require.InDelta(s.T(), vals[len(vals)-1], res.Value, 1e-8)
	require.InDelta(s.T(), 3+math.Sqrt(3), res.Value, 1e-8)
}

// TestInvalidInput covers the two error sentinels.
func (s *EstimateSuite) TestInvalidInput() {
	res, err := eigen.Estimate(nil)
	require.ErrorIs(s.T(), err, eigen.ErrNilMatrix)
	require.False(s.T(), res.Ok())
	require.Equal(s.T(), eigen.Unknown, res.Status)

	m, err := matrix.NewDense(2, []float64{1, math.NaN(), 0, 1}, matrix.WithNoValidateNaNInf())
	require.NoError(s.T(), err)
	res, err = eigen.Estimate(m)
	require.ErrorIs(s.T(), err, eigen.ErrNaNInf)
	require.ErrorIs(s.T(), err, matrix.ErrNaNInf)
	require.False(s.T(), res.Ok())
	require.Equal(s.T(), eigen.Unknown, res.Status)
}

// TestDeterministicSeed: equal seeds give identical runs; WithRand is honored.
func (s *EstimateSuite) TestDeterministicSeed() {
	a := s.dense([][]float64{{4, 1, 0}, {1, 2, 1}, {0, 1, 1}})

	r1, err := eigen.Estimate(a, eigen.WithSeed(42))
	require.NoError(s.T(), err)
	r2, err := eigen.Estimate(a, eigen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(s.T(), err)
	require.Equal(s.T(), r1, r2)

	r3, err := eigen.Estimate(a, eigen.WithSeed(0)) // 0 ⇒ DefaultSeed
	require.NoError(s.T(), err)
	r4, err := eigen.Estimate(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), r3, r4)
}

func TestEstimateSuite(t *testing.T) {
	suite.Run(t, new(EstimateSuite))
}

// SPDX-License-Identifier: MIT

package ols_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/amita/internal/testutil"
	"github.com/katalvlaran/amita/ols"
	"github.com/katalvlaran/amita/solver"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const tol = 1e-9

// line5 is the textbook 5-point line: y = 0.6 + 0.8x with residuals
// (-0.4, 0.8, -1.0, 1.2, -0.6), RSS = 3.6, TSS = 10.
func line5() ([]float64, *mat.Dense) {
	y := []float64{1, 3, 2, 5, 4}
	x := mat.NewDense(5, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
		1, 5,
	})
	return y, x
}

// synthetic builds an n×3 well-conditioned design (const, i/n, cos(i)).
func synthetic(n int) *mat.Dense {
	x := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		x.Set(i, 1, float64(i)/float64(n))
		x.Set(i, 2, math.Cos(float64(i)))
	}
	return x
}

func solve(t *testing.T, y []float64, x mat.Matrix, se solver.SEType) *ols.Results {
	t.Helper()
	s, err := ols.New(y, x, ols.WithSE(se), ols.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	solved, err := s.Solve()
	require.NoError(t, err)
	return solved.Results()
}

func TestOLS_ExactFitRecoversBeta(t *testing.T) {
	x := synthetic(40)
	want := []float64{1.5, -2, 0.75}
	y := make([]float64, 40)
	for i := range y {
		y[i] = want[0]*x.At(i, 0) + want[1]*x.At(i, 1) + want[2]*x.At(i, 2)
	}

	res := solve(t, y, x, solver.SE(solver.Homoscedastic))

	coef, err := res.Coef()
	require.NoError(t, err)
	require.InDeltaSlice(t, want, coef, tol)

	resid, err := res.Residuals()
	require.NoError(t, err)
	for _, e := range resid {
		require.InDelta(t, 0, e, tol)
	}

	r2, err := res.RSquared()
	require.NoError(t, err)
	require.InDelta(t, 1, r2, tol)
}

func TestOLS_MatchesNormalEquations(t *testing.T) {
	x := synthetic(30)
	y := make([]float64, 30)
	for i := range y {
		y[i] = 2 + 3*x.At(i, 1) - x.At(i, 2) + 0.1*math.Sin(float64(7*i))
	}

	var xtx, inv mat.Dense
	xtx.Mul(x.T(), x)
	require.NoError(t, inv.Inverse(&xtx))
	var xty, want mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(30, y))
	want.MulVec(&inv, &xty)

	coef, err := solve(t, y, x, solver.SE(solver.Homoscedastic)).Coef()
	require.NoError(t, err)
	require.InDeltaSlice(t, want.RawVector().Data, coef, 1e-8)
}

func TestOLS_QRFactorsReproduceX(t *testing.T) {
	x := synthetic(12)
	y := make([]float64, 12)
	for i := range y {
		y[i] = float64(i % 3)
	}
	s, err := ols.New(y, x)
	require.NoError(t, err)

	q, r := s.Factors()
	var qr mat.Dense
	qr.Mul(q, r)
	require.True(t, mat.EqualApprox(x, &qr, 1e-10))

	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	require.True(t, mat.EqualApprox(mat.NewDiagDense(3, []float64{1, 1, 1}), &qtq, 1e-10))
}

// A degree-6 polynomial on [0, 1] is ill-conditioned enough that solving
// through the normal equations loses about four more digits than Householder QR.
func TestOLS_IllConditionedPolynomial(t *testing.T) {
	const n, p = 60, 7
	want := []float64{1, -2, 3, -1, 0.5, 0.25, -0.125}
	x := mat.NewDense(n, p, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		for j := 0; j < p; j++ {
			x.Set(i, j, math.Pow(v, float64(j)))
			y[i] += want[j] * x.At(i, j)
		}
	}

	s, err := ols.New(y, x)
	require.NoError(t, err)

	q, _ := s.Factors()
	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	ident := mat.NewDiagDense(p, []float64{1, 1, 1, 1, 1, 1, 1})
	require.True(t, mat.EqualApprox(ident, &qtq, 1e-12))

	solved, err := s.Solve()
	require.NoError(t, err)
	coef, err := solved.Results().Coef()
	require.NoError(t, err)
	require.InDeltaSlice(t, want, coef, 1e-10)
}

func TestOLS_StandardErrors(t *testing.T) {
	y, x := line5()

	tests := []struct {
		name string
		se   solver.SEType
		want []float64
	}{
		// σ² = 3.6/3; (XᵀX)⁻¹ = [[1.1, -0.3], [-0.3, 0.1]].
		{"homoscedastic", solver.SE(solver.Homoscedastic), []float64{math.Sqrt(1.2 * 1.1), math.Sqrt(0.12)}},
		{"nonrobust alias", solver.SE(solver.NonRobust), []float64{math.Sqrt(1.2 * 1.1), math.Sqrt(0.12)}},
		{"hc1", solver.SE(solver.HC1), []float64{0.7899367063252601, 0.26331223544175336}},
		{"hc2", solver.SE(solver.HC2), []float64{0.8361476287970071, 0.2858571071607032}},
		{"hc3", solver.SE(solver.HC3), []float64{1.1909737055648792, 0.4152697672499611}},
		{"robust alias", solver.SE(solver.Robust), []float64{1.1909737055648792, 0.4152697672499611}},
		// scores per cluster (±2.0, ±6.4); CR1 scale 2·4/3.
		{"clustered", solver.ClusteredSE([]int{0, 1, 0, 1, 0}), []float64{math.Sqrt(0.1568 * 8 / 3), math.Sqrt(0.0032 * 8 / 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := solve(t, y, x, tt.se)

			coef, err := res.Coef()
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64{0.6, 0.8}, coef, tol)

			se, err := res.SE()
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, se, 1e-9)

			cov, err := res.Covariance()
			require.NoError(t, err)
			require.InDelta(t, tt.want[1]*tt.want[1], cov.At(1, 1), 1e-9)
		})
	}
}

func TestOLS_Inference(t *testing.T) {
	y, x := line5()
	res := solve(t, y, x, solver.SE(solver.Homoscedastic))

	tStat, err := res.T()
	require.NoError(t, err)
	require.InDelta(t, 0.8/math.Sqrt(0.12), tStat[1], tol)

	require.Equal(t, 2, res.DF())
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 2}
	p, err := res.PValues()
	require.NoError(t, err)
	for i := range p {
		require.InDelta(t, 2*(1-dist.CDF(math.Abs(tStat[i]))), p[i], 1e-12)
		require.Greater(t, p[i], 0.0)
		require.Less(t, p[i], 1.0)
	}
}

func TestOLS_GoodnessOfFit(t *testing.T) {
	y, x := line5()
	res := solve(t, y, x, solver.SE(solver.Homoscedastic))

	r2, err := res.RSquared()
	require.NoError(t, err)
	require.InDelta(t, 0.64, r2, tol)

	adj, err := res.AdjRSquared()
	require.NoError(t, err)
	// 1 − (3.6/2)/(10/4)
	require.InDelta(t, 0.28, adj, tol)
}

func TestOLS_GoodnessOfFitConstantResponse(t *testing.T) {
	_, x := line5()
	res := solve(t, []float64{2, 2, 2, 2, 2}, x, solver.SE(solver.Homoscedastic))

	coef, err := res.Coef()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 0}, coef, tol)

	r2, err := res.RSquared()
	require.NoError(t, err)
	require.True(t, math.IsNaN(r2))
	adj, err := res.AdjRSquared()
	require.NoError(t, err)
	require.True(t, math.IsNaN(adj))
}

func TestOLS_GoodnessOfFitDisabled(t *testing.T) {
	y, x := line5()
	s, err := ols.New(y, x)
	require.NoError(t, err)

	solved, err := s.WithGoodnessOfFit(false).Solve()
	require.NoError(t, err)

	_, err = solved.Results().RSquared()
	require.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = solved.Results().Coef()
	require.NoError(t, err)
}

func TestOLS_ChainableSetters(t *testing.T) {
	y, x := line5()
	s, err := ols.New(y, x)
	require.NoError(t, err)

	same := s.WithRobustSE().WithNames("const", "x")
	require.Same(t, s, same)
	require.Equal(t, solver.HC3, s.Results().SEType().Kind)

	s.WithNonRobustSE()
	require.Equal(t, solver.Homoscedastic, s.Results().SEType().Kind)
}

func TestOLS_ConstructionErrors(t *testing.T) {
	y, x := line5()

	tests := []struct {
		name string
		y    []float64
		x    mat.Matrix
		want error
	}{
		{"nil x", y, nil, solver.ErrEmptyInput},
		{"empty y", nil, x, solver.ErrEmptyInput},
		{"mismatched rows", []float64{1, 2, 3}, x, solver.ErrNotSameObservations},
		{"nan in y", []float64{1, math.NaN(), 3, 4, 5}, x, solver.ErrNonFinite},
		{"fewer rows than cols", []float64{1, 2}, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), solver.ErrNotQRDecomposable},
		{"zero column", y, mat.NewDense(5, 2, []float64{1, 0, 1, 0, 1, 0, 1, 0, 1, 0}), solver.ErrNotQRDecomposable},
		{"duplicated column", y, mat.NewDense(5, 2, []float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}), solver.ErrNotQRDecomposable},
		{"no residual df", []float64{1, 2, 4}, mat.NewDense(3, 2, []float64{1, 1, 1, 2, 1, 3}), solver.ErrDegreesOfFreedom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ols.New(tt.y, tt.x)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOLS_DoesNotAliasInputs(t *testing.T) {
	y, x := line5()
	s, err := ols.New(y, x)
	require.NoError(t, err)

	y[0] = 100
	x.Set(0, 1, 100)

	solved, err := s.Solve()
	require.NoError(t, err)
	coef, err := solved.Results().Coef()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.6, 0.8}, coef, tol)
}

func TestOLS_SolveConsumesSolver(t *testing.T) {
	y, x := line5()
	s, err := ols.New(y, x)
	require.NoError(t, err)
	require.Equal(t, solver.Validated, s.Stage())

	_, err = s.Results().Coef()
	require.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.Results().Summary()
	require.ErrorIs(t, err, solver.ErrNotSolved)

	solved, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, solver.Consumed, s.Stage())
	require.Equal(t, solver.Solved, solved.Stage())

	_, err = s.Solve()
	require.ErrorIs(t, err, solver.ErrAlreadySolved)
	_, err = solved.Solve()
	require.ErrorIs(t, err, solver.ErrAlreadySolved)

	// setters on a solved value leave its results untouched
	solved.WithRobustSE()
	require.Equal(t, solver.Homoscedastic, solved.Results().SEType().Kind)
}

func TestOLS_ClusteredErrors(t *testing.T) {
	y, x := line5()

	tests := []struct {
		name string
		tags []int
		want error
	}{
		{"short tags", []int{0, 1, 0}, solver.ErrClusterLength},
		{"negative tag", []int{0, 1, -1, 1, 0}, solver.ErrClusterLength},
		{"single cluster", []int{0, 0, 0, 0, 0}, solver.ErrTooFewClusters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ols.New(y, x, ols.WithSE(solver.ClusteredSE(tt.tags)))
			require.NoError(t, err)
			_, err = s.Solve()
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, solver.Consumed, s.Stage())
		})
	}
}

func TestOLS_LeverageOfOne(t *testing.T) {
	y, _ := line5()
	// the dummy column is nonzero only in row 0, so h₀ = 1
	x := mat.NewDense(5, 2, []float64{
		1, 1,
		1, 0,
		1, 0,
		1, 0,
		1, 0,
	})

	tests := []struct {
		name string
		kind solver.SEKind
		want error
	}{
		{"homoscedastic", solver.Homoscedastic, nil},
		{"hc1", solver.HC1, nil},
		{"hc2", solver.HC2, solver.ErrNotInvertible},
		{"hc3", solver.HC3, solver.ErrNotInvertible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ols.New(y, x, ols.WithSE(solver.SE(tt.kind)))
			require.NoError(t, err)
			_, err = s.Solve()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
			require.ErrorContains(t, err, "leverage")
		})
	}
}

func TestOLS_LogsEachStage(t *testing.T) {
	y, x := line5()

	logger, msgs := testutil.NewRecordingLogger(t)
	s, err := ols.New(y, x, ols.WithLogger(logger))
	require.NoError(t, err)
	_, err = s.Solve()
	require.NoError(t, err)
	require.Equal(t, []string{
		"ols: coefficients solved",
		"ols: variance solved",
		"ols: goodness of fit solved",
	}, msgs.All())

	logger, msgs = testutil.NewRecordingLogger(t)
	s, err = ols.New(y, x, ols.WithLogger(logger), ols.WithGoodnessOfFit(false))
	require.NoError(t, err)
	_, err = s.Solve()
	require.NoError(t, err)
	require.Equal(t, []string{"ols: coefficients solved", "ols: variance solved"}, msgs.All())
}

func TestOLS_RunThroughContract(t *testing.T) {
	y, x := line5()
	s, err := ols.New(y, x, ols.WithNames("const", "x"))
	require.NoError(t, err)

	res, err := solver.Run[*ols.Solver, *ols.Results](s)
	require.NoError(t, err)

	out, err := res.Summary()
	require.NoError(t, err)
	require.Contains(t, out, "OLS Regression Results")
	require.Contains(t, out, "const")
	require.Contains(t, out, "0.8000")
	require.Contains(t, out, "R-squared")
}

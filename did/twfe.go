// SPDX-License-Identifier: MIT

package did

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/amita/frame"
	"github.com/katalvlaran/amita/inference"
	"github.com/katalvlaran/amita/ols"
	"github.com/katalvlaran/amita/solver"
)

// Names of the regressors TWFE adds to the design.
const (
	InteractionName = "treat*post"
	ConstName       = "_const"
)

// ErrInteractionMissing is returned by Effect when results do not carry the interaction term.
var ErrInteractionMissing = errors.New("did: results have no treat*post coefficient")

// Option configures a TWFE model.
type Option func(*TWFE)

// WithCovariates adds control columns, placed before treat and post in the design.
func WithCovariates(columns ...string) Option {
	cp := append([]string(nil), columns...)
	return func(m *TWFE) { m.covariates = cp }
}

// WithSE selects the standard-error request, resolved against the model's data at Fit.
func WithSE(se inference.ModelSE) Option {
	return func(m *TWFE) { m.se = se }
}

// WithLogger routes diagnostics of the model and its OLS engine to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *TWFE) {
		if l != nil {
			m.logger = l
		}
	}
}

// TWFE is the canonical 2×2 difference-in-differences regression
//
//	outcome = covariates·γ + α·treat + δ·post + τ·(treat×post) + c + ε
//
// where τ is the average treatment effect on the treated.
type TWFE struct {
	data       *frame.Frame
	outcome    string
	treat      string
	post       string
	covariates []string
	se         inference.ModelSE
	logger     *slog.Logger
}

// New describes a TWFE model over data. Nothing is validated until Fit.
func New(data *frame.Frame, outcome, treat, post string, opts ...Option) *TWFE {
	m := &TWFE{
		data:    data,
		outcome: outcome,
		treat:   treat,
		post:    post,
		se:      inference.Homoscedastic(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Regressors returns the design column names in order.
func (m *TWFE) Regressors() []string {
	names := append([]string(nil), m.covariates...)
	return append(names, m.treat, m.post, InteractionName, ConstName)
}

// Fit builds the design matrix, resolves the SE request and solves the
// regression through the shared solver contract.
//
// Errors: frame.ErrColumnNotFound, frame.ErrColumnDataType, every
// ols.New / Solve error, and inference errors for clustered requests.
func (m *TWFE) Fit() (*ols.Results, error) {
	const op = "did.Fit"

	treat, err := m.data.Float64s(m.treat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	post, err := m.data.Float64s(m.post)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := m.data.Height()
	inter := make([]float64, n)
	ones := make([]float64, n)
	for i := range inter {
		inter[i] = treat[i] * post[i]
		ones[i] = 1
	}

	design, err := m.data.WithColumn(frame.NewFloat(InteractionName, inter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if design, err = design.WithColumn(frame.NewFloat(ConstName, ones)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := m.Regressors()
	x, err := design.Matrix(names...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	y, err := m.data.Float64s(m.outcome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	se, err := m.se.ToSolverSE(m.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m.logger.Debug("did: design built", "n", n, "regressors", names, "se", se.String())

	s, err := ols.New(y, x, ols.WithSE(se), ols.WithNames(names...), ols.WithLogger(m.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res, err := solver.Run[*ols.Solver, *ols.Results](s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Effect returns the treat×post row of res: the ATT estimate, its standard
// error and two-sided p-value.
//
// Errors: ErrInteractionMissing, solver.ErrNotSolved.
func (m *TWFE) Effect(res *ols.Results) (coef, se, p float64, err error) {
	idx := -1
	for i, name := range res.Names() {
		if name == InteractionName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, 0, 0, ErrInteractionMissing
	}
	c, err := res.Coef()
	if err != nil {
		return 0, 0, 0, err
	}
	s, err := res.SE()
	if err != nil {
		return 0, 0, 0, err
	}
	pv, err := res.PValues()
	if err != nil {
		return 0, 0, 0, err
	}
	return c[idx], s[idx], pv[idx], nil
}

// SPDX-License-Identifier: MIT

package logit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sigmoid returns 1/(1+e^{−z}). Both branches only ever exponentiate a
// non-positive number, so the result stays finite for any finite z.
func Sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1 + ez)
}

// softplus returns ln(1+e^z) without overflow.
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

// objective is the mean negative log-likelihood of a logistic model
//
//	J(β)  = (1/n) Σ [ln(1+e^{zᵢ}) − yᵢzᵢ],  zᵢ = xᵢᵀβ
//	∇J(β) = (1/n) Xᵀ(σ(z) − y)
//	∇²J(β) = (1/n) Σ σ(zᵢ)(1−σ(zᵢ)) xᵢxᵢᵀ
//
// which equals −(1/n) Σ [yᵢ ln pᵢ + (1−yᵢ) ln(1−pᵢ)] with pᵢ = σ(zᵢ).
// objective only reads x and y; it is safe to share between the callbacks
// of one optimize.Problem.
type objective struct {
	x *mat.Dense
	y []float64
	n float64
}

func newObjective(x *mat.Dense, y []float64) *objective {
	return &objective{x: x, y: y, n: float64(len(y))}
}

// linear returns z = Xβ.
func (o *objective) linear(beta []float64) []float64 {
	r, _ := o.x.Dims()
	z := make([]float64, r)
	for i := range z {
		z[i] = floats.Dot(o.x.RawRowView(i), beta)
	}
	return z
}

// Cost evaluates J(β).
func (o *objective) Cost(beta []float64) float64 {
	var sum float64
	for i, z := range o.linear(beta) {
		sum += softplus(z) - o.y[i]*z
	}
	return sum / o.n
}

// Grad writes ∇J(β) into grad.
func (o *objective) Grad(grad, beta []float64) {
	for j := range grad {
		grad[j] = 0
	}
	for i, z := range o.linear(beta) {
		floats.AddScaled(grad, Sigmoid(z)-o.y[i], o.x.RawRowView(i))
	}
	floats.Scale(1/o.n, grad)
}

// Hess writes ∇²J(β) into hess.
func (o *objective) Hess(hess *mat.SymDense, beta []float64) {
	_, p := o.x.Dims()
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			hess.SetSym(j, k, 0)
		}
	}
	for i, z := range o.linear(beta) {
		pi := Sigmoid(z)
		w := pi * (1 - pi) / o.n
		row := o.x.RawRowView(i)
		for j := 0; j < p; j++ {
			for k := j; k < p; k++ {
				hess.SetSym(j, k, hess.At(j, k)+w*row[j]*row[k])
			}
		}
	}
}

// Probabilities returns σ(Xβ).
func (o *objective) Probabilities(beta []float64) []float64 {
	z := o.linear(beta)
	for i := range z {
		z[i] = Sigmoid(z[i])
	}
	return z
}

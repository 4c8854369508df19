// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/amita/inference"
	"github.com/katalvlaran/amita/logit"
)

// Validate checks value ranges and that the SE and method names parse.
func (c *Config) Validate() error {
	if c.MaxIter < 1 {
		return fmt.Errorf("max_iter must be >= 1, got %d", c.MaxIter)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance must be a positive number, got %v", c.Tolerance)
	}
	if _, err := inference.ParseModelSE(c.SE); err != nil {
		return fmt.Errorf("invalid se: %w", err)
	}
	if _, err := logit.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("invalid method: %w", err)
	}
	return nil
}

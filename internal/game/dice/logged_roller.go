package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling. Every
// roll is logged at debug level with expression, dice values, modifier, and
// total, making every check in a combat or attribute check traceable.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying dice.Source, for callers that need to draw
// uniform integers directly (e.g. weighted table selection).
func (r *Roller) Source() Source {
	return r.src
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result. Malformed
// expressions fall back to "1d4" and are logged as a warning rather than
// returned as an error, per the content-table error-handling contract.
//
// Postcondition: Always returns a RollResult.
func (r *Roller) RollExpr(expr string) RollResult {
	e := ParseOrDefault(expr, func(bad string, err error) {
		r.logger.Warn("malformed dice expression, substituting 1d4",
			zap.String("expression", bad), zap.Error(err))
	})
	return r.Roll(e)
}

// Sum is a convenience wrapper returning just the rolled total.
func (r *Roller) Sum(expr string) int {
	return r.RollExpr(expr).Total()
}

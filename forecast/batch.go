package forecast

import (
	"fmt"

	"go.uber.org/zap"
)

// Map casts every record with the same chain. configure receives a fresh
// Caster per record, the result of Get(target) is collected in record order.
// The first failing record stops the batch.
func Map[R any](records []R, configure func(*Caster), target Target, cfg Config) ([]any, error) {
	out := make([]any, 0, len(records))

	for i, record := range records {
		c := New(record, cfg)
		if configure != nil {
			configure(c)
		}

		v, err := c.Get(target)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		out = append(out, v)
	}

	cfg.logger().Debug("batch cast", zap.Int("records", len(out)))

	return out, nil
}

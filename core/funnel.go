package core

import "github.com/pulseboard/pulseboard/schema"

// BuildFunnel enriches ordered funnel stages with conversion fields.
// For each non-terminal step, conversionRate is value[i+1] / value[i] * 100
// rounded to one decimal and dropoff is its complement. The terminal step
// has no next stage and carries the nil sentinel for both, as does any step
// whose own value is zero. PercentOfTop measures each step against the top
// of the funnel and is zero when the top stage is zero.
func BuildFunnel(stages []schema.FunnelStage) schema.FunnelResult {
	steps := make([]schema.FunnelStep, 0, len(stages))
	if len(stages) == 0 {
		return schema.FunnelResult{Steps: steps}
	}

	top := stages[0].Value
	for i, stage := range stages {
		step := schema.FunnelStep{
			Name:  stage.Name,
			Value: stage.Value,
		}
		if top != 0 {
			step.PercentOfTop = stage.Value / top * 100
		}
		if i < len(stages)-1 && stage.Value != 0 {
			rate := schema.Round1(stages[i+1].Value / stage.Value * 100)
			step.ConversionRate = schema.Ptr(rate)
			step.Dropoff = schema.Ptr(schema.Round1(100 - rate))
		}
		steps = append(steps, step)
	}

	result := schema.FunnelResult{Steps: steps}
	if len(stages) >= 2 && top != 0 {
		result.Overall = schema.Ptr(schema.Round1(stages[len(stages)-1].Value / top * 100))
	}
	return result
}

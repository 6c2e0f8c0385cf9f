package systems

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tetra/internal/telemetry"
)

// Pass is one named update step of the pipeline.
type Pass struct {
	Name string
	Run  func(*Resources)
}

// Pipeline runs its passes synchronously in a fixed order.
type Pipeline struct {
	passes []Pass
	tracer trace.Tracer
}

// NewPipeline returns the turn pipeline. Later passes depend on the side
// effects of earlier ones, so the order must not change: indexing follows AI
// movement and precedes visibility, and damage is applied last.
func NewPipeline() *Pipeline {
	return &Pipeline{
		passes: []Pass{
			{Name: "item_use", Run: ItemUse},
			{Name: "monster_ai", Run: MonsterAI},
			{Name: "map_indexing", Run: MapIndexing},
			{Name: "item_drop", Run: ItemDrop},
			{Name: "item_pickup", Run: ItemPickup},
			{Name: "visibility", Run: Visibility},
			{Name: "melee", Run: Melee},
			{Name: "damage", Run: Damage},
		},
		tracer: telemetry.Tracer("systems"),
	}
}

// Names returns the pass names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// Run executes every pass once.
func (p *Pipeline) Run(ctx context.Context, res *Resources) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run")
	defer span.End()
	span.SetAttributes(attribute.Bool("monster_turn", res.MonsterTurn))

	for _, pass := range p.passes {
		_, passSpan := p.tracer.Start(ctx, "pass."+pass.Name)
		pass.Run(res)
		passSpan.End()
	}
}

package systems

import (
	"context"

	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/telemetry"
)

// DeathReport summarises one death sweep.
type DeathReport struct {
	PlayerDead bool
	Removed    []string // Names of the deleted entities, in id order
}

// DeleteTheDead deletes every non-player entity whose hp is below 1, logging a
// message for each. A dead player is never deleted; it is reported instead.
func DeleteTheDead(ctx context.Context, res *Resources) DeathReport {
	_, span := telemetry.Tracer("systems").Start(ctx, "game.death_sweep")
	defer span.End()

	w := res.World
	var report DeathReport
	var dead []donburi.Entity

	for _, e := range ecs.Entities(w, ecs.CombatStatsComponent) {
		stats := ecs.MustGet(w, e, ecs.CombatStatsComponent)
		if stats.HP >= 1 {
			continue
		}
		if res.IsPlayer(e) {
			report.PlayerDead = true
			res.Log.Say("You are dead")
			continue
		}
		name := ecs.NameOf(w, e, "Something")
		res.Log.Say("%s is dead", name)
		report.Removed = append(report.Removed, name)
		dead = append(dead, e)
	}

	for _, e := range dead {
		w.Remove(e)
	}

	span.SetAttributes(
		attribute.Int("dead.count", len(dead)),
		attribute.Bool("dead.player", report.PlayerDead),
	)
	return report
}

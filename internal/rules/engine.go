// Package rules evaluates a fixed, priority-ordered hierarchy of
// control rules per agent and emits exactly one bounded action per
// step. Tiers run Safety, Process, Energy, Economic; within a tier the
// first matching rule fires and the tier stops; a setpoint touched by a
// higher tier is locked for the rest of the step.
package rules

import (
	"fmt"
	"log"
	"sort"

	"github.com/oreforge/steelmas/internal/bus"
	"github.com/oreforge/steelmas/internal/plant"
)

// #region engine

// Engine holds one agent's rule hierarchy and its held action between
// steps. Decide is pure; the returned Decision is applied with Commit
// so a step that aborts never mutates the engine.
type Engine struct {
	agent    plant.AgentID
	rules    []Rule
	envelope plant.Envelope
	fallback plant.Action
	urgency  bus.Urgency // publish threshold for safety emissions

	prev      plant.Action
	active    map[string]bool
	fallbacks int
}

// NewEngine validates and wires an agent's rule set.
func NewEngine(
	agent plant.AgentID,
	ruleSet []Rule,
	envelope plant.Envelope,
	initial map[plant.Setpoint]float64,
	fallback map[plant.Setpoint]float64,
	urgencyThreshold bus.Urgency,
) (*Engine, error) {
	if err := envelope.Validate(); err != nil {
		return nil, fmt.Errorf("engine %s: %w", agent, err)
	}
	names := make(map[string]bool, len(ruleSet))
	for _, r := range ruleSet {
		if r.Name == "" || r.When == nil {
			return nil, fmt.Errorf("engine %s: rule with empty name or predicate", agent)
		}
		if names[r.Name] {
			return nil, fmt.Errorf("engine %s: duplicate rule %q", agent, r.Name)
		}
		names[r.Name] = true
		for _, adj := range r.Adjust {
			if adj.Absolute == nil && (adj.Fraction <= 0 || adj.Fraction >= 1) {
				return nil, fmt.Errorf("engine %s: rule %q: step fraction %.4f outside (0,1)", agent, r.Name, adj.Fraction)
			}
			if _, ok := envelope.Ranges[adj.Target]; !ok {
				return nil, fmt.Errorf("engine %s: rule %q targets unknown setpoint %q", agent, r.Name, adj.Target)
			}
		}
		if r.Emit != nil && r.Tier != TierSafety {
			return nil, fmt.Errorf("engine %s: rule %q emits but is not a safety rule", agent, r.Name)
		}
	}

	init, _ := envelope.ClampAction(plant.NewAction(agent, initial))
	fb, _ := envelope.ClampAction(plant.NewAction(agent, fallback))
	return &Engine{
		agent:    agent,
		rules:    ruleSet,
		envelope: envelope,
		fallback: fb,
		urgency:  urgencyThreshold,
		prev:     init,
		active:   make(map[string]bool),
	}, nil
}

// Agent returns the owning agent's identity.
func (e *Engine) Agent() plant.AgentID { return e.agent }

// Held returns the action the engine is currently holding.
func (e *Engine) Held() plant.Action { return e.prev.Clone() }

// Fallbacks returns how often the engine fell back to its safety action.
func (e *Engine) Fallbacks() int { return e.fallbacks }

// #endregion engine

// #region decide

// Decide evaluates the hierarchy against an observation and the
// messages drained for this agent, producing one clamped action. A
// malformed observation short-circuits to the conservative fallback
// action instead of propagating the bad value.
func (e *Engine) Decide(obs plant.Observation, msgs []bus.Message) Decision {
	nextActive := make(map[string]bool, len(e.active))
	for k, v := range e.active {
		nextActive[k] = v
	}

	if field := obs.Malformed(); field != "" {
		log.Printf("[RULES] %s: malformed observation field %q, using fallback action", e.agent, field)
		action, clamps := e.envelope.ClampAction(e.fallback)
		return Decision{
			Action:         action,
			Clamps:         clamps,
			FellBack:       true,
			MalformedField: field,
			nextActive:     nextActive,
		}
	}

	ctx := Context{Obs: obs, Messages: msgs, Current: e.prev.Clone(), Active: e.active}
	action := e.prev.Clone()
	locked := make(map[plant.Setpoint]bool)
	var fired []string
	var outbound []bus.Message

	for _, tier := range tierOrder {
		for _, r := range e.rules {
			if r.Tier != tier {
				continue
			}
			firing := e.evaluate(r, ctx, nextActive)
			if !firing {
				continue
			}
			fired = append(fired, r.Name)
			for _, adj := range r.Adjust {
				if locked[adj.Target] {
					continue
				}
				action.Setpoints[adj.Target] = apply(adj, action.Get(adj.Target, 0))
				locked[adj.Target] = true
			}
			if r.Emit != nil && r.Emit.Urgency >= e.urgency {
				outbound = append(outbound, e.emit(r, ctx))
			}
			break // first match wins, tier stops
		}
	}

	action, clamps := e.envelope.ClampAction(action)
	return Decision{
		Action:     action,
		Fired:      fired,
		Clamps:     clamps,
		Outbound:   outbound,
		nextActive: nextActive,
	}
}

// evaluate resolves When/Release hysteresis and updates the latch table.
func (e *Engine) evaluate(r Rule, ctx Context, nextActive map[string]bool) bool {
	if r.When(ctx) {
		if r.Release != nil {
			nextActive[r.Name] = true
		}
		return true
	}
	if r.Release == nil {
		return false
	}
	if !nextActive[r.Name] {
		return false
	}
	if r.Release(ctx) {
		nextActive[r.Name] = false
		return false
	}
	return true // latched: keep firing until released
}

// emit builds the outbound safety message for a firing rule.
func (e *Engine) emit(r Rule, ctx Context) bus.Message {
	var payload map[string]float64
	if r.Emit.Payload != nil {
		payload = r.Emit.Payload(ctx)
	}
	return bus.Message{
		Type:      r.Emit.Type,
		Sender:    e.agent,
		Recipient: r.Emit.Recipient,
		Urgency:   r.Emit.Urgency,
		Step:      ctx.Obs.Step,
		Payload:   payload,
	}
}

// apply performs one bounded adjustment.
func apply(adj Adjustment, current float64) float64 {
	if adj.Absolute != nil {
		return *adj.Absolute
	}
	if adj.Direction == Increase {
		return current * (1 + adj.Fraction)
	}
	return current * (1 - adj.Fraction)
}

// #endregion decide

// #region commit

// Commit applies a decision to the engine's held state. The environment
// calls this once the step is guaranteed to complete.
func (e *Engine) Commit(d Decision) {
	e.prev = d.Action.Clone()
	e.active = d.nextActive
	if d.FellBack {
		e.fallbacks++
	}
}

// Reset restores the initial held action and clears all latches.
func (e *Engine) Reset(initial map[plant.Setpoint]float64) {
	init, _ := e.envelope.ClampAction(plant.NewAction(e.agent, initial))
	e.prev = init
	e.active = make(map[string]bool)
}

// #endregion commit

// #region allocation

// Demand is one consumer's request for a shared gas flow.
type Demand struct {
	Setpoint plant.Setpoint
	Amount   float64
	Priority int // higher wins
}

// AllocateByPriority divides a limited flow across consumers, highest
// priority first; ties keep input order. Consumers beyond the available
// amount receive what remains, then zero.
func AllocateByPriority(available float64, demands []Demand) map[plant.Setpoint]float64 {
	ordered := make([]Demand, len(demands))
	copy(ordered, demands)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	out := make(map[plant.Setpoint]float64, len(demands))
	remaining := available
	for _, d := range ordered {
		granted := d.Amount
		if granted > remaining {
			granted = remaining
		}
		if granted < 0 {
			granted = 0
		}
		out[d.Setpoint] = granted
		remaining -= granted
	}
	return out
}

// #endregion allocation

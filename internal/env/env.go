// Package env runs the coordination loop. One Step drains the message
// bus, asks every agent engine for a bounded action, pushes the
// actuated setpoints through the process twins, advances the holder
// dynamics, scores the transition, and only then commits. A step that
// fails leaves every engine and holder exactly as it found them.
package env

import (
	"fmt"
	"log"
	"math"

	"github.com/oreforge/steelmas/internal/bus"
	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/gasnet"
	"github.com/oreforge/steelmas/internal/plant"
	"github.com/oreforge/steelmas/internal/reward"
	"github.com/oreforge/steelmas/internal/rules"
	"github.com/oreforge/steelmas/internal/twin"
)

// #region types

// StepInfo carries per-step diagnostics alongside the observation and
// reward, for logging and the episode recorder.
type StepInfo struct {
	Step    int                            `json:"step"`
	Actions map[plant.AgentID]plant.Action `json:"actions"`
	Fired   map[plant.AgentID][]string     `json:"fired"`
	Clamps  map[plant.AgentID]int          `json:"clamps"`

	FellBack       []plant.AgentID                     `json:"fell_back,omitempty"`
	DegradedFields []string                            `json:"degraded_fields,omitempty"`
	Signals        map[plant.GasType]gasnet.ClipSignal `json:"signals,omitempty"`
	Curtailed      map[plant.GasType]float64           `json:"curtailed,omitempty"`

	MessagesPublished int `json:"messages_published"`
	MessagesDropped   int `json:"messages_dropped"`
}

// Environment owns the agents, the holder dynamics, the bus, and the
// current observation. It is not safe for concurrent use; the step
// loop is single-threaded on purpose.
type Environment struct {
	cfg     config.Config
	twin    twin.Twin
	bus     *bus.Bus
	engines map[plant.AgentID]*rules.Engine
	holders map[plant.GasType]*gasnet.Holder

	states   map[plant.GasType]gasnet.State
	obs      plant.Observation
	step     int
	cyclePos float64 // minutes into the BOF blow cycle
}

// #endregion types

// #region construction

// New builds an environment from a validated configuration and a twin
// boundary, then resets it to the initial observation.
func New(cfg config.Config, tw twin.Twin) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Environment{
		cfg:     cfg,
		twin:    tw,
		bus:     bus.New(),
		engines: make(map[plant.AgentID]*rules.Engine, len(cfg.AgentOrder)),
		holders: make(map[plant.GasType]*gasnet.Holder, len(plant.GasTypes)),
		states:  make(map[plant.GasType]gasnet.State, len(plant.GasTypes)),
	}

	threshold := bus.Urgency(cfg.UrgencyThreshold)
	wirings := []struct {
		agent    plant.AgentID
		rules    []rules.Rule
		envelope plant.Envelope
		initial  map[plant.Setpoint]float64
		fallback map[plant.Setpoint]float64
	}{
		{plant.AgentBF, rules.BlastFurnaceRules(cfg.BF), cfg.BF.Envelope(), cfg.BF.Initial, cfg.BF.Fallback},
		{plant.AgentBOF, rules.BOFRules(cfg.BOF), cfg.BOF.Envelope(), cfg.BOF.Initial, cfg.BOF.Fallback},
		{plant.AgentCokeOven, rules.CokeOvenRules(cfg.CokeOven), cfg.CokeOven.Envelope(), cfg.CokeOven.Initial, cfg.CokeOven.Fallback},
	}
	for _, g := range plant.GasTypes {
		ac := cfg.HolderAgents[g]
		wirings = append(wirings, struct {
			agent    plant.AgentID
			rules    []rules.Rule
			envelope plant.Envelope
			initial  map[plant.Setpoint]float64
			fallback map[plant.Setpoint]float64
		}{plant.HolderAgent(g), rules.GasHolderRules(g, ac), ac.Envelope(), ac.Initial(), ac.Fallback})
	}
	for _, s := range wirings {
		eng, err := rules.NewEngine(s.agent, s.rules, s.envelope, s.initial, s.fallback, threshold)
		if err != nil {
			return nil, fmt.Errorf("env: %w", err)
		}
		e.engines[s.agent] = eng
	}

	for _, g := range plant.GasTypes {
		h, err := gasnet.NewHolder(cfg.Holders[g].Params())
		if err != nil {
			return nil, fmt.Errorf("env: holder %s: %w", g, err)
		}
		e.holders[g] = h
	}

	if _, err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// #endregion construction

// #region reset

// Reset returns the environment to the start of an episode: initial
// held actions, initial holder state, empty bus, blow cycle at the
// idle phase just after a blow.
func (e *Environment) Reset() (plant.Observation, error) {
	e.engines[plant.AgentBF].Reset(e.cfg.BF.Initial)
	e.engines[plant.AgentBOF].Reset(e.cfg.BOF.Initial)
	e.engines[plant.AgentCokeOven].Reset(e.cfg.CokeOven.Initial)
	for _, g := range plant.GasTypes {
		e.engines[plant.HolderAgent(g)].Reset(e.cfg.HolderAgents[g].Initial())
	}
	e.bus.Reset()
	e.step = 0
	e.cyclePos = e.cfg.BOF.BlowDuration

	for _, g := range plant.GasTypes {
		e.states[g] = e.holders[g].Initial()
	}

	// Seed the process fields by evaluating the twins once on the
	// initial actions so step 0 observes a consistent plant.
	obs, err := e.observe(0, e.heldActions(), 0)
	if err != nil {
		return plant.Observation{}, fmt.Errorf("env: reset: %w", err)
	}
	e.obs = obs
	return obs.Clone(), nil
}

func (e *Environment) heldActions() map[plant.AgentID]plant.Action {
	out := make(map[plant.AgentID]plant.Action, len(e.engines))
	for _, a := range e.cfg.AgentOrder {
		out[a] = e.engines[a].Held()
	}
	return out
}

// #endregion reset

// #region step

// Observation returns the current observation.
func (e *Environment) Observation() plant.Observation { return e.obs.Clone() }

// StepIndex returns the index of the next step to run.
func (e *Environment) StepIndex() int { return e.step }

// Step runs one coordination cycle and returns the next observation,
// its reward, and the step diagnostics. On error nothing is committed
// and the environment stays at the pre-step state.
func (e *Environment) Step() (plant.Observation, reward.Reward, StepInfo, error) {
	cur := e.obs
	info := StepInfo{
		Step:    e.step,
		Actions: make(map[plant.AgentID]plant.Action, len(e.engines)),
		Fired:   make(map[plant.AgentID][]string, len(e.engines)),
		Clamps:  make(map[plant.AgentID]int, len(e.engines)),
	}

	// Decide phase. Messages drained here were published on the
	// previous step; outbound messages are held back until the commit
	// so an aborted step publishes nothing. The pre-drain bus state is
	// kept so drains can be rolled back too.
	busBefore := e.bus.Clone()
	decisions := make(map[plant.AgentID]rules.Decision, len(e.engines))
	for _, agent := range e.cfg.AgentOrder {
		eng := e.engines[agent]
		msgs := e.bus.Drain(agent, e.step)
		d := eng.Decide(cur, msgs)
		decisions[agent] = d
		info.Actions[agent] = d.Action
		info.Fired[agent] = d.Fired
		info.Clamps[agent] = d.Clamps
		if d.FellBack {
			info.FellBack = append(info.FellBack, agent)
		}
	}

	// Actuate phase. The blow phase is taken at the end of the minute
	// being integrated so the next observation's Blowing flag and the
	// converter gas it reports agree.
	nextCycle := math.Mod(e.cyclePos+e.cfg.TimestepMinutes, e.cfg.BOF.BlowInterval)
	blowPhase := 0.0
	if nextCycle < e.cfg.BOF.BlowDuration {
		blowPhase = 1
	}
	bfOut, err := e.twin.Invoke(plant.ProcessBlastFurnace, twin.BFInput(decisions[plant.AgentBF].Action, cur))
	if err != nil {
		e.bus = busBefore
		return plant.Observation{}, reward.Reward{}, info, fmt.Errorf("env: blast furnace twin: %w", err)
	}
	bofOut, err := e.twin.Invoke(plant.ProcessBOF, twin.BOFInput(decisions[plant.AgentBOF].Action, blowPhase))
	if err != nil {
		e.bus = busBefore
		return plant.Observation{}, reward.Reward{}, info, fmt.Errorf("env: bof twin: %w", err)
	}
	cokeOut, err := e.twin.Invoke(plant.ProcessCokeOven, twin.CokeInput(decisions[plant.AgentCokeOven].Action))
	if err != nil {
		e.bus = busBefore
		return plant.Observation{}, reward.Reward{}, info, fmt.Errorf("env: coke oven twin: %w", err)
	}

	bf := twin.DecodeBF(bfOut, cur)
	bof := twin.DecodeBOF(bofOut, cur)
	coke := twin.DecodeCoke(cokeOut, cur)
	info.DegradedFields = append(info.DegradedFields, bf.Degraded...)
	info.DegradedFields = append(info.DegradedFields, bof.Degraded...)
	info.DegradedFields = append(info.DegradedFields, coke.Degraded...)
	for _, f := range info.DegradedFields {
		log.Printf("[ENV] step %d: degraded twin field %q, holding previous value", e.step, f)
	}

	supplies := map[plant.GasType]float64{
		plant.GasBFG:  bf.BFGRate,
		plant.GasBOFG: bof.BOFGRate,
		plant.GasCOG:  coke.COGRate,
	}

	// Advance phase: allocate consumption by priority, then integrate
	// each holder on its net flow.
	consumed := make(map[plant.GasType]float64, len(plant.GasTypes))
	states := make(map[plant.GasType]gasnet.State, len(plant.GasTypes))
	info.Signals = make(map[plant.GasType]gasnet.ClipSignal, len(plant.GasTypes))
	info.Curtailed = make(map[plant.GasType]float64, len(plant.GasTypes))
	for _, g := range plant.GasTypes {
		holderAction := decisions[plant.HolderAgent(g)].Action
		demands := e.demands(g, holderAction)
		granted := rules.AllocateByPriority(e.available(g, supplies[g]), demands)
		var want, got float64
		for _, d := range demands {
			want += d.Amount
			got += granted[d.Setpoint]
		}
		info.Curtailed[g] = want - got
		consumed[g] = got

		next, clip := e.holders[g].Step(e.states[g], supplies[g]-got)
		if clip.Excessive {
			log.Printf("[GASNET] step %d: holder %s netflow drove an excessive state change", e.step, g)
		}
		states[g] = next
		info.Signals[g] = clip
	}

	next := e.assemble(e.step+1, bf, bof, coke, supplies, states, info.Signals, decisions)
	rew := reward.Calculate(next, consumed, e.cfg.Reward)

	// Commit phase. Nothing above may fail past this point.
	for _, agent := range e.cfg.AgentOrder {
		for _, m := range decisions[agent].Outbound {
			e.bus.Publish(m)
			info.MessagesPublished++
		}
	}
	info.MessagesDropped = e.bus.EndStep(e.step)
	for _, agent := range e.cfg.AgentOrder {
		e.engines[agent].Commit(decisions[agent])
	}
	for _, g := range plant.GasTypes {
		e.states[g] = states[g]
	}
	e.cyclePos = math.Mod(e.cyclePos+e.cfg.TimestepMinutes, e.cfg.BOF.BlowInterval)
	e.obs = next
	e.step++
	return next.Clone(), rew, info, nil
}

// demands builds the per-destination allocation requests from the
// holder agent's actuated flows.
func (e *Environment) demands(g plant.GasType, a plant.Action) []rules.Demand {
	cfg := e.cfg.HolderAgents[g]
	out := make([]rules.Demand, 0, len(cfg.Destinations))
	for _, d := range cfg.Destinations {
		out = append(out, rules.Demand{
			Setpoint: d.Setpoint,
			Amount:   a.Get(d.Setpoint, d.Nominal),
			Priority: d.Priority,
		})
	}
	return out
}

// available bounds total consumption by the fresh supply plus what can
// be drawn from stock above the safety floor within one step.
func (e *Environment) available(g plant.GasType, supply float64) float64 {
	cfg := e.cfg.HolderAgents[g]
	stock := (e.states[g].SOC - cfg.SOCFloor) * e.cfg.Holders[g].Capacity
	if stock < 0 {
		stock = 0
	}
	return supply + stock*60/e.cfg.TimestepMinutes
}

// #endregion step

// #region observe

// assemble builds the observation for step index idx from decoded twin
// results and the advanced holder states.
func (e *Environment) assemble(
	idx int,
	bf twin.BFResult, bof twin.BOFResult, coke twin.CokeResult,
	supplies map[plant.GasType]float64,
	states map[plant.GasType]gasnet.State,
	signals map[plant.GasType]gasnet.ClipSignal,
	decisions map[plant.AgentID]rules.Decision,
) plant.Observation {
	// The blow cycle advances with the commit; compute the next phase
	// here so the observation and the cycle stay in lockstep.
	cyclePos := math.Mod(e.cyclePos+e.cfg.TimestepMinutes, e.cfg.BOF.BlowInterval)
	blowing := cyclePos < e.cfg.BOF.BlowDuration
	countdown := 0.0
	if !blowing {
		countdown = e.cfg.BOF.BlowInterval - cyclePos
	}

	oxygenUsed := 0.0
	if blowing {
		oxygenUsed = decisions[plant.AgentBOF].Action.Get(plant.SPOxygen, 0)
	}

	minuteOfDay := math.Mod(float64(idx)*e.cfg.TimestepMinutes, 24*60)

	obs := plant.Observation{
		Step:            idx,
		Si:              bf.Si,
		HotMetalTemp:    bf.HotMetalTemp,
		PigIronRate:     bf.PigIronRate,
		SteelTemp:       bof.SteelTemp,
		LiquidSteel:     bof.LiquidSteel,
		Blowing:         blowing,
		BlowCountdown:   countdown,
		FurnaceTemp:     coke.FurnaceTemp,
		CokeRate:        coke.CokeRate,
		COGAvailable:    supplies[plant.GasCOG],
		O2Available:     e.cfg.OxygenSupply - oxygenUsed,
		PeakElectricity: minuteOfDay >= e.cfg.PeakStart && minuteOfDay < e.cfg.PeakEnd,
		Gas:             make(map[plant.GasType]plant.HolderReading, len(plant.GasTypes)),
	}
	for _, g := range plant.GasTypes {
		st := states[g]
		sig := signals[g]
		obs.Gas[g] = plant.HolderReading{
			SOC:        st.SOC,
			Pressure:   st.Pressure,
			Supply:     supplies[g],
			Overflow:   sig.Overflow,
			Underflow:  sig.Underflow,
			ModelState: append([]float64(nil), st.X...),
		}
	}
	return obs
}

// #endregion observe

// #region reset-observe

// observe is the reset-time variant of assemble: it seeds the process
// fields by invoking the twins on the held actions against an empty
// history.
func (e *Environment) observe(idx int, actions map[plant.AgentID]plant.Action, blowPhase float64) (plant.Observation, error) {
	var empty plant.Observation
	empty.Gas = make(map[plant.GasType]plant.HolderReading, len(plant.GasTypes))
	for _, g := range plant.GasTypes {
		empty.Gas[g] = plant.HolderReading{}
	}

	bfOut, err := e.twin.Invoke(plant.ProcessBlastFurnace, twin.BFInput(actions[plant.AgentBF], empty))
	if err != nil {
		return plant.Observation{}, fmt.Errorf("blast furnace twin: %w", err)
	}
	bofOut, err := e.twin.Invoke(plant.ProcessBOF, twin.BOFInput(actions[plant.AgentBOF], blowPhase))
	if err != nil {
		return plant.Observation{}, fmt.Errorf("bof twin: %w", err)
	}
	cokeOut, err := e.twin.Invoke(plant.ProcessCokeOven, twin.CokeInput(actions[plant.AgentCokeOven]))
	if err != nil {
		return plant.Observation{}, fmt.Errorf("coke oven twin: %w", err)
	}
	bf := twin.DecodeBF(bfOut, empty)
	bof := twin.DecodeBOF(bofOut, empty)
	coke := twin.DecodeCoke(cokeOut, empty)

	obs := plant.Observation{
		Step:          idx,
		Si:            bf.Si,
		HotMetalTemp:  bf.HotMetalTemp,
		PigIronRate:   bf.PigIronRate,
		SteelTemp:     bof.SteelTemp,
		LiquidSteel:   bof.LiquidSteel,
		Blowing:       false,
		BlowCountdown: e.cfg.BOF.BlowInterval - e.cyclePos,
		FurnaceTemp:   coke.FurnaceTemp,
		CokeRate:      coke.CokeRate,
		COGAvailable:  coke.COGRate,
		O2Available:   e.cfg.OxygenSupply,
		Gas:           make(map[plant.GasType]plant.HolderReading, len(plant.GasTypes)),
	}
	for _, g := range plant.GasTypes {
		st := e.states[g]
		obs.Gas[g] = plant.HolderReading{
			SOC:      st.SOC,
			Pressure: st.Pressure,
			Supply: map[plant.GasType]float64{
				plant.GasBFG:  bf.BFGRate,
				plant.GasBOFG: bof.BOFGRate,
				plant.GasCOG:  coke.COGRate,
			}[g],
			ModelState: append([]float64(nil), st.X...),
		}
	}
	return obs, nil
}

// #endregion reset-observe

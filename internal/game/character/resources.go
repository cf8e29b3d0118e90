package character

import "fmt"

// ResetTrigger names the event that refills a resource pool.
type ResetTrigger int

const (
	// ResetShortRest refills on short or long rest.
	ResetShortRest ResetTrigger = iota
	// ResetLongRest refills only on long rest.
	ResetLongRest
)

// Pool is a bounded current/maximum counter for one class resource.
//
// Invariant: 0 <= Current <= Max.
type Pool struct {
	Name    string
	Current int
	Max     int
	Trigger ResetTrigger
}

// NewPool creates a full pool with the given capacity.
//
// Precondition: max must be >= 0.
func NewPool(name string, max int, trigger ResetTrigger) *Pool {
	if max < 0 {
		panic(fmt.Sprintf("character: pool %q requires max >= 0", name))
	}
	return &Pool{Name: name, Current: max, Max: max, Trigger: trigger}
}

// CanSpend reports whether at least n charges remain.
func (p *Pool) CanSpend(n int) bool { return p != nil && p.Current >= n }

// Spend removes n charges and reports whether the pool had them. A failed
// spend leaves the pool unchanged.
//
// Precondition: n must be >= 1.
// Postcondition: Current >= 0.
func (p *Pool) Spend(n int) bool {
	if n < 1 {
		panic("character: Pool.Spend requires n >= 1")
	}
	if p == nil || p.Current < n {
		return false
	}
	p.Current -= n
	return true
}

// Restore adds n charges, capping at Max.
//
// Precondition: n must be >= 0.
func (p *Pool) Restore(n int) {
	if p == nil {
		return
	}
	p.Current += n
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// Refill sets the pool back to its maximum.
func (p *Pool) Refill() {
	if p != nil {
		p.Current = p.Max
	}
}

// Resources holds every expendable pool a character owns. Classes that lack
// a given resource hold a nil pool; Pool methods tolerate nil receivers so
// availability checks stay uniform.
type Resources struct {
	RageUses        *Pool
	KiPoints        *Pool
	SecondWindUses  *Pool
	ActionSurgeUses *Pool
	ChannelDivinity *Pool
	LayOnHandsPool  *Pool
	// SpellSlots maps slot level to its pool; paladins get level 1-2 slots.
	SpellSlots map[int]*Pool
}

// NewResources initialises the pools appropriate for the class and level.
func NewResources(class Class, level int, abilities AbilityScores) Resources {
	var r Resources
	switch class {
	case Fighter:
		r.SecondWindUses = NewPool("second_wind", 1, ResetShortRest)
		if level >= 2 {
			r.ActionSurgeUses = NewPool("action_surge", 1, ResetShortRest)
		}
	case Barbarian:
		uses := 2
		if level >= 6 {
			uses = 4
		} else if level >= 3 {
			uses = 3
		}
		r.RageUses = NewPool("rage", uses, ResetLongRest)
	case Monk:
		r.KiPoints = NewPool("ki", level, ResetShortRest)
	case Paladin:
		r.ChannelDivinity = NewPool("channel_divinity", 1, ResetShortRest)
		r.LayOnHandsPool = NewPool("lay_on_hands", level*5, ResetLongRest)
		r.SpellSlots = map[int]*Pool{}
		if level >= 2 {
			slots := 2
			if level >= 3 {
				slots = 3
			}
			r.SpellSlots[1] = NewPool("spell_slot_1", slots, ResetLongRest)
		}
		if level >= 5 {
			r.SpellSlots[2] = NewPool("spell_slot_2", 2, ResetLongRest)
		}
	}
	return r
}

// Slot returns the spell slot pool for the given level, or nil.
func (r *Resources) Slot(level int) *Pool {
	if r.SpellSlots == nil {
		return nil
	}
	return r.SpellSlots[level]
}

// HighestSlot returns the highest spell slot level with a remaining charge,
// or 0 when none remain.
func (r *Resources) HighestSlot() int {
	best := 0
	for lvl, p := range r.SpellSlots {
		if p.CanSpend(1) && lvl > best {
			best = lvl
		}
	}
	return best
}

// Reset refills every pool with the given trigger.
func (r *Resources) Reset(trigger ResetTrigger) {
	for _, p := range r.all() {
		if p != nil && p.Trigger == trigger {
			p.Refill()
		}
	}
}

func (r *Resources) all() []*Pool {
	pools := []*Pool{
		r.RageUses, r.KiPoints, r.SecondWindUses,
		r.ActionSurgeUses, r.ChannelDivinity, r.LayOnHandsPool,
	}
	for _, p := range r.SpellSlots {
		pools = append(pools, p)
	}
	return pools
}

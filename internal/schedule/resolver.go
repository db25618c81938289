package schedule

// Source is one candidate provider of a work schedule. Resolution walks the
// candidates in priority order and the first one that yields a schedule wins.
type Source interface {
	Schedule() (WorkSchedule, bool)
}

// Resolver resolves the applicable work schedule for an employee and date.
// Precedence, highest first: per-employee override, the employee's sector
// default, the company-wide default.
type Resolver struct {
	companyDefault WorkSchedule
	sectorDefaults map[string]WorkSchedule
}

func NewResolver(companyDefault WorkSchedule, sectorDefaults map[string]WorkSchedule) *Resolver {
	return &Resolver{
		companyDefault: companyDefault,
		sectorDefaults: sectorDefaults,
	}
}

// Resolve picks the schedule for one employee. The override pointer is the
// sentinel distinguishing "no override" (nil) from "override with empty
// fields" (non-nil zero value); the latter still wins the precedence chain.
func (r *Resolver) Resolve(override *WorkSchedule, sector string) WorkSchedule {
	for _, candidate := range r.candidates(override, sector) {
		if s, ok := candidate.Schedule(); ok {
			return s
		}
	}
	return r.companyDefault
}

func (r *Resolver) candidates(override *WorkSchedule, sector string) []Source {
	return []Source{
		overrideSource{override: override},
		sectorSource{defaults: r.sectorDefaults, sector: sector},
		companySource{schedule: r.companyDefault},
	}
}

type overrideSource struct {
	override *WorkSchedule
}

func (s overrideSource) Schedule() (WorkSchedule, bool) {
	if s.override == nil {
		return WorkSchedule{}, false
	}
	return *s.override, true
}

type sectorSource struct {
	defaults map[string]WorkSchedule
	sector   string
}

func (s sectorSource) Schedule() (WorkSchedule, bool) {
	if s.sector == "" {
		return WorkSchedule{}, false
	}
	sched, ok := s.defaults[s.sector]
	return sched, ok
}

type companySource struct {
	schedule WorkSchedule
}

func (s companySource) Schedule() (WorkSchedule, bool) {
	return s.schedule, true
}

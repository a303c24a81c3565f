package collapse

import "github.com/ukaji3/rebarcollapse-go/pkg/collapse/messages"

// ResolveTarget picks the schedule to process: the active view when it is a
// schedule, otherwise the single eligible schedule placed on a sheet among
// the selected elements.
func ResolveTarget(host Host, opts Options) (Schedule, error) {
	if view, ok := host.CurrentView(); ok {
		return view, nil
	}

	fail := func(name string) error {
		return NewOperationError(name, StageResolve, opts.message(messages.ErrorNoSchedule), ErrNoTargetSchedule)
	}

	var instances []SheetInstance
	for _, el := range host.CurrentSelection() {
		if inst, ok := host.ResolveSheetInstance(el); ok {
			instances = append(instances, inst)
		}
	}
	if len(instances) != 1 {
		return nil, fail("")
	}

	inst := instances[0]
	if !opts.MatchesSchedule(inst.Name) {
		return nil, fail(inst.Name)
	}
	sched, ok := host.Schedule(inst.ScheduleID)
	if !ok {
		return nil, fail(inst.Name)
	}
	return sched, nil
}

package model

// CatchAllTask is the catalog entry used for work that matches no
// listed task. It never carries a standard time.
const CatchAllTask = "Other (Specify in comments)"

var defaultTeamMembers = []string{"Mohsin", "Kaiser", "Mike"}

var defaultTasks = []string{
	"Assemble & Solder Copper Components (INL04AA, INL04BB, DIS04-2)",
	"AWS Tank Preparation",
	"Attach Covers to Systems",
	"Box Systems for Shipping",
	"Connect Panel to Pump Systems",
	"Cut Brackets for Exhaust",
	"Cut Copper Pipes (Inlets & Exhaust)",
	"Cut Foams for Sides & Tops",
	"Inspect Pumps (12 units)",
	"Kit Assembly & Next Week Preparation",
	"Make Side Covers",
	"Make Top Covers",
	"Mount Inlet & Exhaust Systems",
	"Mount Pumps in Frames",
	"Prepare Frames & Mount Control Panels",
	"Prepare Parts for Installation",
	"Sandblast & Paint Components",
	"System Testing (12 units - Parallel Testing)",
	"Test Pumps (12 units - Parallel Testing)",
	CatchAllTask,
}

// Standard hours to produce 12 units of each task.
var defaultStandardTimes = map[string]float64{
	"Assemble & Solder Copper Components (INL04AA, INL04BB, DIS04-2)": 17.67,
	"Cut Copper Pipes (Inlets & Exhaust)":                             4,
	"Inspect Pumps (12 units)":                                        20,
	"Sandblast & Paint Components":                                    4.75,
	"Connect Panel to Pump Systems":                                   5,
	"Prepare Frames & Mount Control Panels":                           5,
	"Prepare Parts for Installation":                                  5,
	"Test Pumps (12 units - Parallel Testing)":                        6,
}

// DefaultTeamMembers returns a copy of the built-in team member list.
func DefaultTeamMembers() []string {
	return append([]string(nil), defaultTeamMembers...)
}

// DefaultTasks returns a copy of the built-in task catalog.
func DefaultTasks() []string {
	return append([]string(nil), defaultTasks...)
}

// DefaultStandardTimes returns a copy of the built-in standard-time table.
func DefaultStandardTimes() map[string]float64 {
	times := make(map[string]float64, len(defaultStandardTimes))
	for task, hours := range defaultStandardTimes {
		times[task] = hours
	}
	return times
}

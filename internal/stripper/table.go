package stripper

import "regexp"

// Replacement is a literal phrase and the text that takes its place.
type Replacement struct {
	Pattern string
	With    string
}

// Replacements is applied top to bottom, before the range sweep. Full phrases
// come first so their labels survive; bare "emoji + space" prefixes follow.
var Replacements = []Replacement{
	{"📝 Assignments", "Assignments"},
	{"📊 Assessments", "Assessments"},
	{"✓ Attendance", "Attendance"},
	{"🔔 Notifications", "Notifications"},
	{"🔔 Alerts", "Alerts"},
	{"📝 My Assignments", "My Assignments"},
	{"📊 My Assessments", "My Assessments"},
	{"✓ My Attendance & Performance", "My Attendance & Performance"},
	{"📝 Manage Assignments", "Manage Assignments"},
	{"📊 Manage Assessments", "Manage Assessments"},
	{"✓ Manage Attendance", "Manage Attendance"},
	{"📊 Manage your existing courses", "Manage your existing courses"},
	{"👥 View student enrollment statistics", "View student enrollment statistics"},
	{"📅 ", ""},
	{"👥 ", ""},
	{"📊 ", ""},
	{"📝 ", ""},
	{"✓ ", ""},
	{"🚀 ", ""},
	{"\u26a0\ufe0f ", "Warning: "},
	{"\u23f1\ufe0f ", ""},
	{"⏳ ", ""},
}

// emojiPattern matches maximal runs of code points in the emoji ranges.
var emojiPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols & pictographs
	`\x{1F680}-\x{1F6FF}` + // transport & map symbols
	`\x{1F1E0}-\x{1F1FF}` + // flags
	`\x{2702}-\x{27B0}` + // dingbats
	`\x{24C2}-\x{1F251}` + // enclosed characters
	`\x{2713}` + // check mark
	`]+`)

// DefaultTargets are the dashboard pages cleaned by the command, relative to
// the working directory.
var DefaultTargets = []string{
	"client/src/pages/TeacherDashboard.js",
	"client/src/pages/StudentDashboard.js",
}

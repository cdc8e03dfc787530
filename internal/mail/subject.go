package mail

import "time"

// Subjects is the fixed rotation. The pick is keyed by day number, so all
// sends within one calendar day (UTC epoch days) share a subject and the
// rotation across days is predictable.
var Subjects = []string{
	"☕ Café con IA: Top-10 para hoy",
	"⚡ IA en 5 min: Noticias + Prompts + Tips",
}

const msPerDay = 86400000

// SubjectFor returns the subject for the day containing now.
func SubjectFor(now time.Time) string {
	day := now.UnixMilli() / msPerDay
	return Subjects[int(day)%len(Subjects)]
}

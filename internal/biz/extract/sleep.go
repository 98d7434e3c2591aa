package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
)

// SleepExtractor recognizes sleep duration, quality, and explicit
// bedtime/wake phrasings. The clock anchors duration-only phrasings, which
// synthesize bedtime = now - N hours and wake = now.
type SleepExtractor struct {
	now       func() time.Time
	durations []*regexp.Regexp
	quality   *regexp.Regexp
	window    *regexp.Regexp
}

// defaultSleepHours is assumed when a message states quality but no duration
const defaultSleepHours = 8

// NewSleepExtractor creates a sleep extractor anchored to the given clock
func NewSleepExtractor(now func() time.Time) *SleepExtractor {
	if now == nil {
		now = time.Now
	}
	return &SleepExtractor{
		now: now,
		durations: []*regexp.Regexp{
			// "slept for 8 hours", "slept 7.5 hours"
			regexp.MustCompile(`\bslept (?:for )?(\d+(?:\.\d+)?) hours?\b`),
			// "got 8 hours of sleep"
			regexp.MustCompile(`\bgot (\d+(?:\.\d+)?) hours? of sleep\b`),
		},
		// "sleep quality was good"
		quality: regexp.MustCompile(`\bsleep quality was (poor|fair|good|excellent)\b`),
		// "went to bed at 11:45pm and woke up at 8:15am"
		window: regexp.MustCompile(`\bwent to bed at (\d{1,2})(?::(\d{2}))? ?(am|pm)\b.*\bwoke up at (\d{1,2})(?::(\d{2}))? ?(am|pm)\b`),
	}
}

// Extract appends sleep drafts for every matching phrasing. A quality-only
// phrase annotates a duration draft produced from the same message when one
// exists; otherwise it synthesizes a default entry.
func (e *SleepExtractor) Extract(text string, out *Drafts) {
	lower := strings.ToLower(text)
	before := len(out.Sleep)

	for _, re := range e.durations {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		hours, _ := strconv.ParseFloat(m[1], 64)
		if hours <= 0 {
			continue
		}
		wake := e.now()
		out.Sleep = append(out.Sleep, domain.SleepDraft{
			Bedtime:  wake.Add(-time.Duration(hours * float64(time.Hour))),
			WakeTime: wake,
			Note:     provenance(text),
		})
	}

	if m := e.window.FindStringSubmatch(lower); m != nil {
		base := e.now()
		bedtime := clockTime(base, m[1], m[2], m[3])
		wake := domain.RollWake(bedtime, clockTime(base, m[4], m[5], m[6]))
		out.Sleep = append(out.Sleep, domain.SleepDraft{
			Bedtime:  bedtime,
			WakeTime: wake,
			Note:     provenance(text),
		})
	}

	if m := e.quality.FindStringSubmatch(lower); m != nil {
		quality := domain.SleepQuality(m[1])
		if len(out.Sleep) > before {
			// annotate the duration draft from this same message
			out.Sleep[len(out.Sleep)-1].Quality = &quality
			return
		}
		wake := e.now()
		out.Sleep = append(out.Sleep, domain.SleepDraft{
			Bedtime:  wake.Add(-defaultSleepHours * time.Hour),
			WakeTime: wake,
			Quality:  &quality,
			Note:     provenance(text),
		})
	}
}

// clockTime builds a time on base's date from 12-hour clock captures.
// 12am maps to 00 and 12pm to 12.
func clockTime(base time.Time, hourStr, minuteStr, meridiem string) time.Time {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}
	hour = hour % 12
	if meridiem == "pm" {
		hour += 12
	}
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

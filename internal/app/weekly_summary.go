package app

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"weighin/internal/domain"
)

// WeeklySummary is the recap for the most recently completed 7-day window
// since the user's first entry. StartWeight and WeeklyChange are nil when the
// window holds a single entry.
type WeeklySummary struct {
	WeekNumber      int         `json:"weekNumber"`
	EntriesThisWeek int         `json:"entriesThisWeek"`
	StartWeight     *float64    `json:"startWeight"`
	EndWeight       float64     `json:"endWeight"`
	WeeklyChange    *float64    `json:"weeklyChange"`
	Unit            domain.Unit `json:"unit"`
	Quote           string      `json:"quote"`
	DisplayName     string      `json:"displayName"`
}

// defaultDisplayName personalises quotes when the user has not set a name.
const defaultDisplayName = "babe"

var goodProgressQuotes = []string{
	"{name}, you absolutely crushed it this week! Your dedication is inspiring.",
	"Look at you go, {name}! This week was all about making progress.",
	"{name}, your effort this week has been incredible. So proud of you!",
	"What a week, {name}! You're making it happen.",
	"{name}, you're proving that small steps lead to big changes. Amazing work!",
	"This week belonged to you, {name}! Keep riding this wave of success.",
	"{name}, your determination is beautiful. Another powerful week in the books!",
}

var steadyQuotes = []string{
	"{name}, consistency is your superpower. Another week in the books!",
	"Staying steady is still winning, {name}. You're building lifelong habits.",
	"{name}, maintaining is progress too! Keep it up.",
	"Not every week is about the scale, {name}. Your commitment is what matters.",
	"{name}, you're playing the long game and that's exactly right. Keep going!",
	"Another week of dedication, {name}! The results will follow your effort.",
	"{name}, your consistency speaks volumes. This journey is a marathon, not a sprint.",
}

var challengingWeekQuotes = []string{
	"{name}, every week teaches us something. You're still showing up!",
	"Progress isn't always linear, {name}. What matters is you're still here!",
	"{name}, some weeks are harder than others. Your persistence is beautiful.",
	"Hey {name}, one week doesn't define your journey. Tomorrow is a fresh start!",
	"{name}, the scale is just one measure. Your commitment to tracking is the real win.",
	"{name}, your resilience is showing. Keep trusting the process!",
	"Not every chapter is easy, {name}. But you're still writing your story!",
}

var singleEntryQuotes = []string{
	"{name}, week {week} is in the books! Every entry counts.",
	"Another week, another step forward, {name}! Keep tracking.",
	"{name}, you checked in this week and that's what matters!",
	"Week {week} complete, {name}! You're staying on top of it.",
}

// WeeklySummaryCalculator decides whether a new weekly summary is due and
// synthesizes its content. It is stateless: the at-most-once-per-week
// guarantee rests on the lastShownWeek input and on the caller persisting the
// returned week number.
type WeeklySummaryCalculator struct {
	now  func() time.Time
	pick Picker
}

// NewWeeklySummaryCalculator creates a calculator on the wall clock with the
// default random quote picker.
func NewWeeklySummaryCalculator() *WeeklySummaryCalculator {
	return &WeeklySummaryCalculator{now: time.Now, pick: rand.Intn}
}

// NewWeeklySummaryCalculatorAt creates a calculator with an injected clock
// and picker, for deterministic tests.
func NewWeeklySummaryCalculatorAt(now func() time.Time, pick Picker) *WeeklySummaryCalculator {
	return &WeeklySummaryCalculator{now: now, pick: pick}
}

// Check returns the summary for the most recently completed week, or nil when
// the first week has not elapsed, the week was already shown, or the window
// holds no entries.
func (c *WeeklySummaryCalculator) Check(weights []domain.WeightRecord, displayName string, lastShownWeek int) *WeeklySummary {
	if len(weights) == 0 {
		return nil
	}
	if displayName == "" {
		displayName = defaultDisplayName
	}

	sorted := make([]domain.WeightRecord, len(weights))
	copy(sorted, weights)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	anchor := sorted[0].RecordedAt
	now := c.now()

	daysSinceFirst := int(now.Sub(anchor) / (24 * time.Hour))
	completedWeeks := daysSinceFirst / 7
	if completedWeeks < 1 {
		return nil
	}
	if lastShownWeek >= completedWeeks {
		return nil
	}

	// Window for the just-completed week: start of the anchor day plus
	// (completedWeeks-1)*7 days, through the last instant of the day seven
	// days later.
	y, m, d := anchor.In(time.Local).Date()
	windowStart := time.Date(y, m, d+(completedWeeks-1)*7, 0, 0, 0, 0, time.Local)
	windowEnd := time.Date(y, m, d+completedWeeks*7, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)

	var week []domain.WeightRecord
	for _, rec := range sorted {
		if !rec.RecordedAt.Before(windowStart) && !rec.RecordedAt.After(windowEnd) {
			week = append(week, rec)
		}
	}
	if len(week) == 0 {
		return nil
	}

	last := week[len(week)-1]
	summary := &WeeklySummary{
		WeekNumber:      completedWeeks,
		EntriesThisWeek: len(week),
		EndWeight:       last.Weight,
		Unit:            last.Unit,
		DisplayName:     displayName,
	}
	if len(week) > 1 {
		start := week[0].Weight
		change := summary.EndWeight - start
		summary.StartWeight = &start
		summary.WeeklyChange = &change
	}

	summary.Quote = c.quote(summary.WeeklyChange, displayName, completedWeeks)
	return summary
}

func (c *WeeklySummaryCalculator) quote(weeklyChange *float64, displayName string, weekNumber int) string {
	var pool []string
	switch {
	case weeklyChange == nil:
		pool = singleEntryQuotes
	case *weeklyChange < -0.1:
		pool = goodProgressQuotes
	case *weeklyChange > 0.5:
		pool = challengingWeekQuotes
	default:
		pool = steadyQuotes
	}
	q := pool[c.pick(len(pool))]
	q = strings.ReplaceAll(q, "{name}", displayName)
	q = strings.ReplaceAll(q, "{week}", strconv.Itoa(weekNumber))
	return q
}

// WeeklySummaryService runs the calculator against stored data and persists
// the shown week number so the same summary never surfaces twice.
type WeeklySummaryService struct {
	weights domain.WeightRepository
	prefs   domain.PreferencesRepository
	users   domain.UserRepository
	calc    *WeeklySummaryCalculator
}

// NewWeeklySummaryService creates a WeeklySummaryService.
func NewWeeklySummaryService(w domain.WeightRepository, p domain.PreferencesRepository, u domain.UserRepository, calc *WeeklySummaryCalculator) *WeeklySummaryService {
	return &WeeklySummaryService{weights: w, prefs: p, users: u, calc: calc}
}

// CheckAndMark returns the due weekly summary, if any, and records its week
// number as shown before returning it.
func (s *WeeklySummaryService) CheckAndMark(ctx context.Context, userID int64) (*WeeklySummary, error) {
	weights, err := s.weights.ListWeights(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	displayName := ""
	if user, err := s.users.GetByID(ctx, userID); err == nil && user != nil {
		displayName = user.DisplayName
	}

	summary := s.calc.Check(weights, displayName, prefs.LastSummaryWeek)
	if summary == nil {
		return nil, nil
	}
	if err := s.prefs.SetLastSummaryWeek(ctx, userID, summary.WeekNumber); err != nil {
		return nil, err
	}
	return summary, nil
}

package services

import (
	"errors"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/geo"
	"math/rand/v2"
	"slices"
	"testing"
)

// Four museums on the equator, 0.01 degrees apart, visited out of order.
func crossedLine() []domain.Activity {
	return []domain.Activity{
		act("A", domain.CategoryMuseum, at(0, 0), 30),
		act("C", domain.CategoryMuseum, at(0, 0.02), 30),
		act("B", domain.CategoryMuseum, at(0, 0.01), 30),
		act("D", domain.CategoryMuseum, at(0, 0.03), 30),
	}
}

func ids(activities []domain.Activity) string {
	out := ""
	for _, a := range activities {
		out += a.ID
	}
	return out
}

func TestOptimizeDay_UncrossesRoute(t *testing.T) {
	res, err := OptimizeDay(crossedLine(), domain.OptimizationConstraints{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(res.OptimizedOrder); got != "ABCD" {
		t.Fatalf("optimized order = %s, want ABCD", got)
	}
	if res.OriginalDistanceMeters != 7450 || res.OptimizedDistanceMeters != 4338 {
		t.Fatalf("distance = %d -> %d, want 7450 -> 4338", res.OriginalDistanceMeters, res.OptimizedDistanceMeters)
	}
	if res.SavingsMeters != 3112 {
		t.Fatalf("savings = %d, want 3112", res.SavingsMeters)
	}
	if res.SavingsPercent < 41.7 || res.SavingsPercent > 41.8 {
		t.Fatalf("savings percent = %.3f, want ~41.77", res.SavingsPercent)
	}
	if res.SwapsPerformed != 1 || res.Iterations != 2 || res.IterationBudgetExhausted {
		t.Fatalf("swaps=%d iterations=%d exhausted=%v", res.SwapsPerformed, res.Iterations, res.IterationBudgetExhausted)
	}
	if res.Strategy != domain.StrategyTwoOpt {
		t.Fatalf("strategy = %s, want two_opt", res.Strategy)
	}

	// Short hops are walked, so the shorter route takes longer.
	if res.OriginalTravelMinutes != 34 || res.OptimizedTravelMinutes != 54 || res.SavingsMinutes != -20 {
		t.Fatalf("travel = %d -> %d (saved %d)", res.OriginalTravelMinutes, res.OptimizedTravelMinutes, res.SavingsMinutes)
	}

	want := map[string]string{"A": "09:00", "B": "09:48", "C": "10:36", "D": "11:24"}
	for id, w := range want {
		if got := res.UpdatedStartTimes[id].String(); got != w {
			t.Fatalf("start of %s = %s, want %s", id, got, w)
		}
	}
	for _, a := range res.OptimizedOrder {
		if a.StartTime == nil || *a.StartTime != res.UpdatedStartTimes[a.ID] {
			t.Fatalf("optimized activity %s carries start %v", a.ID, a.StartTime)
		}
	}
	if got := ids(res.OriginalOrder); got != "ACBD" {
		t.Fatalf("original order = %s, want ACBD", got)
	}
}

func TestOptimizeDay_DoesNotModifyInput(t *testing.T) {
	in := crossedLine()
	before := slices.Clone(in)

	if _, err := OptimizeDay(in, domain.OptimizationConstraints{}, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range in {
		if in[i].ID != before[i].ID || in[i].StartTime != nil {
			t.Fatalf("input modified at %d: %+v", i, in[i])
		}
	}
}

func TestOptimizeDay_TwoStopsIsNoOp(t *testing.T) {
	day := []domain.Activity{
		act("far", domain.CategoryMuseum, at(0, 0.05), 60),
		act("near", domain.CategoryMuseum, at(0, 0), 60),
	}

	res, err := OptimizeDay(day, domain.OptimizationConstraints{KeepFirstActivity: true, KeepLastActivity: true}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids(res.OptimizedOrder) != "farnear" || res.SwapsPerformed != 0 || res.SavingsMeters != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.OriginalDistanceMeters != res.OptimizedDistanceMeters || res.SavingsPercent != 0 {
		t.Fatalf("distances differ: %d vs %d", res.OriginalDistanceMeters, res.OptimizedDistanceMeters)
	}
}

func TestOptimizeDay_EmptyAndSingle(t *testing.T) {
	res, err := OptimizeDay(nil, domain.OptimizationConstraints{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.OptimizedOrder) != 0 || res.SavingsPercent != 0 || res.OriginalDistanceMeters != 0 {
		t.Fatalf("unexpected empty result %+v", res)
	}

	res, err = OptimizeDay([]domain.Activity{act("solo", domain.CategoryPark, nil, 30)}, domain.OptimizationConstraints{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdatedStartTimes["solo"] != DefaultDayStart {
		t.Fatalf("solo start = %s, want %s", res.UpdatedStartTimes["solo"], DefaultDayStart)
	}
}

func TestOptimizeDay_FixedActivityBlocksMove(t *testing.T) {
	res, err := OptimizeDay(crossedLine(), domain.OptimizationConstraints{FixedActivityIDs: []string{"C"}}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.OptimizedOrder); got != "ACBD" || res.SwapsPerformed != 0 {
		t.Fatalf("order = %s swaps = %d, want ACBD with no swaps", got, res.SwapsPerformed)
	}
}

func TestOptimizeDay_LockedRestaurantStaysInLunch(t *testing.T) {
	day := []domain.Activity{
		act("A", domain.CategoryMuseum, at(0, 0), 45),
		act("C", domain.CategoryMuseum, at(0, 0.02), 45),
		act("B", domain.CategoryMuseum, at(0, 0.01), 45),
		act("R", domain.CategoryRestaurant, at(0, 0.03), 60),
		act("E", domain.CategoryPark, at(0, 0.05), 60),
		act("D", domain.CategoryPark, at(0, 0.04), 60),
	}
	day[0].StartTime = clockPtr("10:00")

	res, err := OptimizeDay(day, domain.OptimizationConstraints{FixedActivityIDs: []string{"R"}}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(res.OptimizedOrder); got != "ABCRDE" {
		t.Fatalf("optimized order = %s, want ABCRDE", got)
	}
	if res.OptimizedDistanceMeters != 7230 || res.SwapsPerformed != 2 {
		t.Fatalf("distance = %d swaps = %d, want 7230 and 2", res.OptimizedDistanceMeters, res.SwapsPerformed)
	}
	if got := res.UpdatedStartTimes["R"].String(); got != "13:09" {
		t.Fatalf("restaurant start = %s, want 13:09", got)
	}
	if res.UpdatedStartTimes["A"].String() != "10:00" {
		t.Fatalf("day start moved: %s", res.UpdatedStartTimes["A"])
	}
}

func TestOptimizeDay_RejectsMoveThatMissesLunch(t *testing.T) {
	day := []domain.Activity{
		act("museum", domain.CategoryMuseum, at(0, 0), 150),
		act("lunch", domain.CategoryRestaurant, at(0, 0.03), 60),
		act("park", domain.CategoryPark, at(0, 0.001), 180),
	}

	res, err := OptimizeDay(day, domain.OptimizationConstraints{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.OptimizedOrder); got != "museumlunchpark" || res.SwapsPerformed != 0 {
		t.Fatalf("order = %s swaps = %d, want the original order", got, res.SwapsPerformed)
	}

	wide := domain.MealWindows{
		Lunch:  domain.TimeWindow{Start: domain.MustParseClock("11:00"), End: domain.MustParseClock("15:00")},
		Dinner: domain.DefaultMealWindows().Dinner,
	}
	res, err = OptimizeDay(day, domain.OptimizationConstraints{MealWindows: &wide}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.OptimizedOrder); got != "museumparklunch" || res.OptimizedDistanceMeters != 4486 {
		t.Fatalf("order = %s distance = %d, want museumparklunch 4486", got, res.OptimizedDistanceMeters)
	}
}

func TestOptimizeDay_MissingCoordinatesCostNothing(t *testing.T) {
	day := slices.Insert(crossedLine(), 2, act("X", domain.CategoryShopping, nil, 20))

	res, err := OptimizeDay(day, domain.OptimizationConstraints{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A -> C (3002) and B -> D (3002); both legs touching X are free.
	if res.OriginalDistanceMeters != 6004 {
		t.Fatalf("original distance = %d, want 6004", res.OriginalDistanceMeters)
	}
	if res.OptimizedDistanceMeters > res.OriginalDistanceMeters {
		t.Fatalf("optimized distance %d exceeds original %d", res.OptimizedDistanceMeters, res.OriginalDistanceMeters)
	}
	assertPermutation(t, day, res.OptimizedOrder)
}

func TestOptimizeDay_IterationBudget(t *testing.T) {
	res, err := OptimizeDay(crossedLine(), domain.OptimizationConstraints{}, Options{MaxIterations: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IterationBudgetExhausted || res.Iterations != 1 || res.SwapsPerformed != 1 {
		t.Fatalf("exhausted=%v iterations=%d swaps=%d", res.IterationBudgetExhausted, res.Iterations, res.SwapsPerformed)
	}
	if res.OptimizedDistanceMeters >= res.OriginalDistanceMeters {
		t.Fatal("the accepted move should still be reported")
	}

	// A second scan confirms the local optimum, so the flag clears.
	confirmed, err := OptimizeDay(crossedLine(), domain.OptimizationConstraints{}, Options{MaxIterations: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.IterationBudgetExhausted || confirmed.Iterations != 2 || ids(confirmed.OptimizedOrder) != ids(res.OptimizedOrder) {
		t.Fatalf("exhausted=%v iterations=%d order=%s", confirmed.IterationBudgetExhausted, confirmed.Iterations, ids(confirmed.OptimizedOrder))
	}
}

func TestOptimizeDay_DayStartOverride(t *testing.T) {
	day := crossedLine()
	day[0].StartTime = clockPtr("08:00")

	res, err := OptimizeDay(day, domain.OptimizationConstraints{}, Options{DayStart: clockPtr("07:30")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.UpdatedStartTimes["A"].String(); got != "07:30" {
		t.Fatalf("start = %s, want 07:30", got)
	}
}

func TestOptimizeDay_ExhaustiveFindsGlobalOptimum(t *testing.T) {
	day := []domain.Activity{
		act("C", domain.CategoryMuseum, at(0, 0.02), 30),
		act("A", domain.CategoryMuseum, at(0, 0), 30),
		act("B", domain.CategoryMuseum, at(0, 0.01), 30),
		act("D", domain.CategoryMuseum, at(0, 0.03), 30),
	}
	c := domain.OptimizationConstraints{KeepFirstActivity: true}

	twoOpt, err := OptimizeDay(day, c, Options{Strategy: domain.StrategyTwoOpt})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2-opt stalls in a local optimum here.
	if twoOpt.OptimizedDistanceMeters != 7395 {
		t.Fatalf("two_opt distance = %d, want 7395", twoOpt.OptimizedDistanceMeters)
	}

	ex, err := OptimizeDay(day, c, Options{Strategy: domain.StrategyExhaustive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ex.OptimizedOrder); got != "CDBA" || ex.OptimizedDistanceMeters != 5894 {
		t.Fatalf("exhaustive = %s (%d m), want CDBA (5894 m)", got, ex.OptimizedDistanceMeters)
	}
	if ex.Strategy != domain.StrategyExhaustive || ex.SwapsPerformed < 1 || ex.Iterations != 6 {
		t.Fatalf("strategy=%s swaps=%d iterations=%d", ex.Strategy, ex.SwapsPerformed, ex.Iterations)
	}

	hy, err := OptimizeDay(day, c, Options{Strategy: domain.StrategyHybrid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hy.OptimizedDistanceMeters > twoOpt.OptimizedDistanceMeters || hy.Strategy != domain.StrategyHybrid {
		t.Fatalf("hybrid = %d m (%s), want <= %d", hy.OptimizedDistanceMeters, hy.Strategy, twoOpt.OptimizedDistanceMeters)
	}
}

func TestOptimizeDay_ExhaustiveFallsBackWhenTooLarge(t *testing.T) {
	day := randomDay(rand.New(rand.NewPCG(7, 7)), 9)
	for i := range day {
		day[i].Category = domain.CategoryMuseum
	}

	res, err := OptimizeDay(day, domain.OptimizationConstraints{}, Options{Strategy: domain.StrategyExhaustive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != domain.StrategyTwoOpt {
		t.Fatalf("strategy = %s, want two_opt fallback", res.Strategy)
	}
}

func TestOptimizeDay_AutoStrategy(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	cases := []struct {
		n    int
		want domain.Strategy
	}{
		{5, domain.StrategyExhaustive},
		{7, domain.StrategyExhaustive},
		{10, domain.StrategyHybrid},
		{12, domain.StrategyHybrid},
		{13, domain.StrategyTwoOpt},
	}
	for _, tc := range cases {
		res, err := OptimizeDay(randomDay(r, tc.n), domain.OptimizationConstraints{}, Options{Strategy: domain.StrategyAuto})
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", tc.n, err)
		}
		if res.Strategy != tc.want {
			t.Fatalf("n=%d: strategy = %s, want %s", tc.n, res.Strategy, tc.want)
		}
	}
}

func TestOptimizeDay_InvalidInput(t *testing.T) {
	valid := crossedLine()

	cases := []struct {
		name        string
		activities  []domain.Activity
		constraints domain.OptimizationConstraints
		opts        Options
	}{
		{"duplicate id", append(slices.Clone(valid), act("A", domain.CategoryPark, nil, 0)), domain.OptimizationConstraints{}, Options{}},
		{"empty id", []domain.Activity{act("", domain.CategoryPark, nil, 0)}, domain.OptimizationConstraints{}, Options{}},
		{"negative duration", []domain.Activity{act("x", domain.CategoryPark, nil, -1)}, domain.OptimizationConstraints{}, Options{}},
		{"bad latitude", []domain.Activity{act("x", domain.CategoryPark, at(95, 0), 10)}, domain.OptimizationConstraints{}, Options{}},
		{"unknown fixed id", valid, domain.OptimizationConstraints{FixedActivityIDs: []string{"nope"}}, Options{}},
		{"inverted window", valid, domain.OptimizationConstraints{MealWindows: &domain.MealWindows{
			Lunch:  domain.TimeWindow{Start: domain.MustParseClock("14:00"), End: domain.MustParseClock("12:00")},
			Dinner: domain.DefaultMealWindows().Dinner,
		}}, Options{}},
		{"unknown strategy", valid, domain.OptimizationConstraints{}, Options{Strategy: "annealing"}},
		{"negative budget", valid, domain.OptimizationConstraints{}, Options{MaxIterations: -1}},
	}

	for _, tc := range cases {
		_, err := OptimizeDay(tc.activities, tc.constraints, tc.opts)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: error = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

// Random days checked against the optimizer's guarantees for every strategy.
func TestOptimizeDay_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 2026))
	strategies := []domain.Strategy{domain.StrategyTwoOpt, domain.StrategyExhaustive, domain.StrategyHybrid, domain.StrategyAuto}

	for round := 0; round < 60; round++ {
		day := randomDay(r, 2+r.IntN(9))
		c := randomConstraints(r, day)

		for _, s := range strategies {
			res, err := OptimizeDay(day, c, Options{Strategy: s})
			if err != nil {
				t.Fatalf("round %d %s: unexpected error: %v", round, s, err)
			}

			assertPermutation(t, day, res.OptimizedOrder)

			if res.OptimizedDistanceMeters > res.OriginalDistanceMeters || res.SavingsMeters < 0 {
				t.Fatalf("round %d %s: distance regressed %d -> %d", round, s, res.OriginalDistanceMeters, res.OptimizedDistanceMeters)
			}

			for i := range day {
				if IsLocked(day, i, c) && res.OptimizedOrder[i].ID != day[i].ID {
					t.Fatalf("round %d %s: locked %s moved from %d", round, s, day[i].ID, i)
				}
			}

			dayStart := ResolveDayStart(day, nil)
			changed := ids(res.OptimizedOrder) != ids(day)
			if changed && !RespectsMealWindows(res.OptimizedOrder, dayStart, c, nil) {
				t.Fatalf("round %d %s: reordered day violates meal windows", round, s)
			}

			p := ProjectSchedule(res.OptimizedOrder, dayStart, geo.NewEstimator())
			if p.TotalDistanceMeters != res.OptimizedDistanceMeters {
				t.Fatalf("round %d %s: reported %d m, projection %d m", round, s, res.OptimizedDistanceMeters, p.TotalDistanceMeters)
			}
			for id, start := range p.StartTimes {
				if res.UpdatedStartTimes[id] != start {
					t.Fatalf("round %d %s: start of %s = %s, projection %s", round, s, id, res.UpdatedStartTimes[id], start)
				}
			}

			// Every strategy returns a fixed point of itself.
			again, err := OptimizeDay(res.OptimizedOrder, c, Options{Strategy: s})
			if err != nil {
				t.Fatalf("round %d %s: rerun error: %v", round, s, err)
			}
			if !res.IterationBudgetExhausted && again.SwapsPerformed != 0 {
				t.Fatalf("round %d %s: rerun performed %d swaps", round, s, again.SwapsPerformed)
			}
		}
	}
}

// Any meal stop outside both windows makes every candidate infeasible, so the day
// is returned as given.
func TestOptimizeDay_OffHoursMealFreezesDay(t *testing.T) {
	breakfast := act("X", domain.CategoryCafe, at(0, -0.01), 30)
	day := append([]domain.Activity{breakfast}, crossedLine()...)
	c := domain.OptimizationConstraints{KeepFirstActivity: true}
	start := clockPtr("08:00")

	res, err := OptimizeDay(day, c, Options{DayStart: start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.OptimizedOrder); got != "XACBD" || res.SwapsPerformed != 0 {
		t.Fatalf("order = %s swaps = %d, want XACBD unchanged", got, res.SwapsPerformed)
	}

	day[0].Category = domain.CategoryMuseum
	res, err = OptimizeDay(day, c, Options{DayStart: start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SwapsPerformed == 0 || res.OptimizedDistanceMeters >= res.OriginalDistanceMeters {
		t.Fatalf("non-meal first stop should allow reordering: swaps=%d %d -> %d m",
			res.SwapsPerformed, res.OriginalDistanceMeters, res.OptimizedDistanceMeters)
	}
}

func TestOptimizeDay_HybridRerunIsStable(t *testing.T) {
	r := rand.New(rand.NewPCG(45, 300))
	for round := 0; round < 150; round++ {
		day := randomDay(r, 8+r.IntN(5))
		c := randomConstraints(r, day)

		for _, s := range []domain.Strategy{domain.StrategyHybrid, domain.StrategyAuto} {
			first, err := OptimizeDay(day, c, Options{Strategy: s})
			if err != nil {
				t.Fatalf("round %d %s: unexpected error: %v", round, s, err)
			}
			if first.IterationBudgetExhausted {
				continue
			}

			again, err := OptimizeDay(first.OptimizedOrder, c, Options{Strategy: s})
			if err != nil {
				t.Fatalf("round %d %s: rerun error: %v", round, s, err)
			}
			if again.SwapsPerformed != 0 || again.OptimizedDistanceMeters != first.OptimizedDistanceMeters {
				t.Fatalf("round %d %s: rerun %s -> %s made %d swaps, %d m -> %d m", round, s,
					ids(first.OptimizedOrder), ids(again.OptimizedOrder), again.SwapsPerformed,
					first.OptimizedDistanceMeters, again.OptimizedDistanceMeters)
			}
			if ids(again.OptimizedOrder) != ids(first.OptimizedOrder) {
				t.Fatalf("round %d %s: rerun reordered %s to %s", round, s, ids(first.OptimizedOrder), ids(again.OptimizedOrder))
			}
		}
	}
}

func TestOptimizeDay_HybridSharesIterationBudget(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for round := 0; round < 40; round++ {
		day := randomDay(r, 8+r.IntN(5))
		for _, budget := range []int{1, 2, 3, 5} {
			res, err := OptimizeDay(day, domain.OptimizationConstraints{}, Options{Strategy: domain.StrategyHybrid, MaxIterations: budget})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Iterations > budget {
				t.Fatalf("round %d: %d iterations with budget %d", round, res.Iterations, budget)
			}
		}
	}
}

func TestOptimizeDay_ExhaustiveNeverWorseThanTwoOpt(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for round := 0; round < 30; round++ {
		day := randomDay(r, 3+r.IntN(5))
		c := randomConstraints(r, day)

		two, err := OptimizeDay(day, c, Options{Strategy: domain.StrategyTwoOpt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ex, err := OptimizeDay(day, c, Options{Strategy: domain.StrategyExhaustive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ex.OptimizedDistanceMeters > two.OptimizedDistanceMeters {
			t.Fatalf("round %d: exhaustive %d m worse than two_opt %d m", round, ex.OptimizedDistanceMeters, two.OptimizedDistanceMeters)
		}
	}
}

func assertPermutation(t *testing.T, in, out []domain.Activity) {
	t.Helper()
	a, b := domain.IDs(in), domain.IDs(out)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Fatalf("output %v is not a permutation of %v", b, a)
	}
}

var randomCategories = []domain.Category{
	domain.CategoryMuseum, domain.CategoryPark, domain.CategoryLandmark, domain.CategoryShopping,
	domain.CategoryRestaurant, domain.CategoryCafe, domain.CategoryBar,
}

// randomDay scatters activities over a few kilometres of central Paris.
func randomDay(r *rand.Rand, n int) []domain.Activity {
	day := make([]domain.Activity, n)
	for i := range day {
		var coords *domain.Coordinates
		if r.IntN(10) > 0 {
			coords = at(48.83+r.Float64()*0.06, 2.28+r.Float64()*0.1)
		}
		day[i] = act(string(rune('a'+i)), randomCategories[r.IntN(len(randomCategories))], coords, r.IntN(121))
	}
	if r.IntN(2) == 0 {
		day[0].StartTime = clockPtr("10:30")
	}
	return day
}

func randomConstraints(r *rand.Rand, day []domain.Activity) domain.OptimizationConstraints {
	c := domain.OptimizationConstraints{
		KeepFirstActivity: r.IntN(2) == 0,
		KeepLastActivity:  r.IntN(3) == 0,
	}
	for _, a := range day {
		if r.IntN(5) == 0 {
			c.FixedActivityIDs = append(c.FixedActivityIDs, a.ID)
		}
	}
	return c
}

// Command optimize reorders a single itinerary day read from a JSON or YAML file
// and prints the optimization result as JSON.
//
//	optimize -file day.yaml -strategy auto -start 08:30
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/services"
	"log"
	"os"
)

func main() {
	var (
		path          = flag.String("file", "", "day file (.json, .yaml or .yml)")
		strategy      = flag.String("strategy", "two_opt", "two_opt | exhaustive | hybrid | auto")
		start         = flag.String("start", "", "day start HH:MM (default: first activity's start time, else 09:00)")
		maxIterations = flag.Int("max-iterations", 0, "2-opt scan budget (0 = 10*n^2)")
		lunch         = flag.String("lunch", "", "lunch window HH:MM-HH:MM when the file has none")
		dinner        = flag.String("dinner", "", "dinner window HH:MM-HH:MM when the file has none")
		quiet         = flag.Bool("q", false, "print only the optimized activity ids")
	)
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*path, *strategy, *start, *maxIterations, *lunch, *dinner, *quiet); err != nil {
		log.Fatal(err)
	}
}

func run(path, strategy, start string, maxIterations int, lunch, dinner string, quiet bool) error {
	day, err := readDayFile(path)
	if err != nil {
		return err
	}

	opts := services.Options{MaxIterations: maxIterations}
	if opts.Strategy, err = domain.ParseStrategy(strategy); err != nil {
		return err
	}
	if start != "" {
		c, err := domain.ParseClock(start)
		if err != nil {
			return fmt.Errorf("-start: %w", err)
		}
		opts.DayStart = &c
	}

	constraints := day.Constraints
	if constraints.MealWindows == nil && (lunch != "" || dinner != "") {
		w := domain.DefaultMealWindows()
		if lunch != "" {
			if w.Lunch, err = domain.ParseTimeWindow(lunch); err != nil {
				return fmt.Errorf("-lunch: %w", err)
			}
		}
		if dinner != "" {
			if w.Dinner, err = domain.ParseTimeWindow(dinner); err != nil {
				return fmt.Errorf("-dinner: %w", err)
			}
		}
		constraints.MealWindows = &w
	}

	res, err := services.OptimizeDay(day.Activities, constraints, opts)
	if err != nil {
		return err
	}
	log.Printf("trip=%s day=%d %s", day.TripID, day.DayNumber, services.DescribeResult(res))

	if quiet {
		for _, id := range domain.IDs(res.OptimizedOrder) {
			fmt.Println(id)
		}
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"fittrack/internal/catalog"
	"fittrack/internal/config"
	"fittrack/internal/domain"
	"fittrack/internal/logging"
	"fittrack/internal/notify"
	"fittrack/internal/remote/rest"
	"fittrack/internal/session"
	"fittrack/internal/stats"
	"fittrack/internal/store"
	"fittrack/internal/workoutlog"
)

const usage = `fittrack - personal workout tracking client

Usage:
  fittrack register <name> <email> <password>
  fittrack login <email> <password>
  fittrack logout
  fittrack whoami
  fittrack exercise list
  fittrack exercise add <name> <muscle-group>
  fittrack exercise rename <id> <new-name>
  fittrack exercise remove <id>
  fittrack exercise filter <substring> [muscle-group]
  fittrack workout list
  fittrack workout add <date YYYY-MM-DD> <exercise-id=weightxreps[,weightxreps...]>...
  fittrack workout remove <id>
  fittrack stats
`

// app bundles the wired-up core for the command handlers.
type app struct {
	sessions *session.Manager
	catalog  *catalog.Service
	log      *workoutlog.Service
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.FormatJSON)

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	sessionStore, err := store.NewFileStore(cfg.Session.StorePath)
	if err != nil {
		logrus.Fatalf("could not open session store: %v", err)
	}

	notifier := notify.LogNotifier{}

	// The REST client pulls the bearer token from the session manager,
	// and the manager logs in through the REST client; tie the knot
	// with a late-bound token source.
	var manager *session.Manager
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	client := rest.NewClient(cfg.API.BaseURL, httpClient, func() string {
		if manager == nil {
			return ""
		}
		return manager.Token()
	})
	manager = session.NewManager(rest.NewAuthClient(client), sessionStore, notifier)

	a := &app{
		sessions: manager,
		catalog:  catalog.NewService(manager, rest.NewExerciseClient(client), notifier),
		log:      workoutlog.NewService(manager, rest.NewWorkoutClient(client), notifier),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Session restoration has to finish before any gated operation.
	if err := a.sessions.Restore(ctx); err != nil {
		logrus.Fatalf("could not restore session: %v", err)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: fittrack register <name> <email> <password>")
		}
		_, err := a.sessions.Register(ctx, args[0], args[1], args[2])
		return err
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: fittrack login <email> <password>")
		}
		_, err := a.sessions.Login(ctx, args[0], args[1])
		return err
	case "logout":
		return a.sessions.Logout(ctx)
	case "whoami":
		principal, ok := a.sessions.Current()
		if !ok {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", principal.DisplayName, principal.Email)
		return nil
	case "exercise":
		return a.runExercise(ctx, args)
	case "workout":
		return a.runWorkout(ctx, args)
	case "stats":
		return a.runStats(ctx)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) runExercise(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fittrack exercise <list|add|rename|remove|filter> ...")
	}
	switch args[0] {
	case "list":
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		items, err := a.catalog.List()
		if err != nil {
			return err
		}
		printExercises(items)
		return nil
	case "add":
		if len(args) != 3 {
			return fmt.Errorf("usage: fittrack exercise add <name> <muscle-group>")
		}
		_, err := a.catalog.Add(ctx, args[1], domain.MuscleGroup(args[2]))
		return err
	case "rename":
		if len(args) != 3 {
			return fmt.Errorf("usage: fittrack exercise rename <id> <new-name>")
		}
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		name := args[2]
		return a.catalog.Update(ctx, args[1], domain.ExercisePatch{Name: &name})
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: fittrack exercise remove <id>")
		}
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		return a.catalog.Remove(ctx, args[1])
	case "filter":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: fittrack exercise filter <substring> [muscle-group]")
		}
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		group := domain.MuscleGroup("")
		if len(args) == 3 {
			group = domain.MuscleGroup(args[2])
		}
		items, err := a.catalog.Filter(args[1], group)
		if err != nil {
			return err
		}
		printExercises(items)
		return nil
	default:
		return fmt.Errorf("unknown exercise command %q", args[0])
	}
}

func (a *app) runWorkout(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fittrack workout <list|add|remove> ...")
	}
	switch args[0] {
	case "list":
		if err := a.log.Refresh(ctx); err != nil {
			return err
		}
		workouts, err := a.log.MostRecentFirst()
		if err != nil {
			return err
		}
		for _, w := range workouts {
			fmt.Printf("%s  %s  %d exercises, %d sets\n",
				w.ID, w.Date.Format("2006-01-02"), len(w.Exercises), stats.SetsPerWorkout(w))
		}
		return nil
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: fittrack workout add <date> <exercise-id=weightxreps,...>...")
		}
		date, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", domain.ErrValidation, args[1])
		}
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		draft, err := a.buildDraft(args[2:])
		if err != nil {
			return err
		}
		_, err = a.log.Commit(ctx, date, draft)
		return err
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: fittrack workout remove <id>")
		}
		if err := a.log.Refresh(ctx); err != nil {
			return err
		}
		return a.log.Remove(ctx, args[1])
	default:
		return fmt.Errorf("unknown workout command %q", args[0])
	}
}

// buildDraft turns "id=60x8,60x6" arguments into a draft session
// using the pure draft editing functions.
func (a *app) buildDraft(specs []string) ([]domain.WorkoutExercise, error) {
	entries, err := a.catalog.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Exercise, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	var draft []domain.WorkoutExercise
	for _, spec := range specs {
		id, setsSpec, _ := strings.Cut(spec, "=")
		entry, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
		}
		draft = workoutlog.AddExerciseToDraft(draft, entry)

		if setsSpec == "" {
			continue
		}
		for i, setSpec := range strings.Split(setsSpec, ",") {
			if i > 0 {
				draft = workoutlog.AddSet(draft, entry.ID)
			}
			weightStr, repsStr, found := strings.Cut(setSpec, "x")
			if !found {
				return nil, fmt.Errorf("%w: bad set %q, want weightxreps", domain.ErrValidation, setSpec)
			}
			weight, err := strconv.ParseFloat(weightStr, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad weight %q", domain.ErrValidation, weightStr)
			}
			reps, err := strconv.Atoi(repsStr)
			if err != nil {
				return nil, fmt.Errorf("%w: bad reps %q", domain.ErrValidation, repsStr)
			}
			draft = workoutlog.UpdateSet(draft, entry.ID, i, workoutlog.SetFieldWeight, weight)
			draft = workoutlog.UpdateSet(draft, entry.ID, i, workoutlog.SetFieldReps, float64(reps))
		}
	}
	return draft, nil
}

func (a *app) runStats(ctx context.Context) error {
	if err := a.catalog.Refresh(ctx); err != nil {
		return err
	}
	if err := a.log.Refresh(ctx); err != nil {
		return err
	}
	exercises, err := a.catalog.List()
	if err != nil {
		return err
	}
	workouts, err := a.log.List()
	if err != nil {
		return err
	}

	fmt.Printf("workouts:            %d\n", stats.TotalWorkouts(workouts))
	fmt.Printf("catalog exercises:   %d\n", stats.TotalExercises(exercises))
	fmt.Printf("total sets:          %d\n", stats.TotalSets(workouts))
	fmt.Printf("avg sets/workout:    %.1f\n", stats.AverageSetsPerWorkout(workouts))
	if latest := stats.MostRecentWorkout(workouts); latest != nil {
		fmt.Printf("most recent workout: %s\n", latest.Date.Format("2006-01-02"))
	}
	breakdown := stats.GroupBreakdown(workouts)
	for _, group := range domain.MuscleGroups {
		if sets, ok := breakdown[group]; ok {
			fmt.Printf("  %-12s %d sets\n", group, sets)
		}
	}
	return nil
}

func printExercises(items []domain.Exercise) {
	for _, e := range items {
		fmt.Printf("%s  %-20s %s\n", e.ID, e.Name, e.MuscleGroup)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"tareas/internal/adapter/api"
	"tareas/internal/app/store"
	"tareas/internal/config"
	"tareas/internal/core/domain"
	"tareas/internal/session"
	"tareas/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEs, translator.LanguageEn},
	})

	sess := session.New(session.TokenFile{Path: cfg.TokenFile}, func() {
		fmt.Println("Sesión cerrada. Usa `tareas login` para volver a entrar.")
	})

	authClient := api.NewAuthClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	repo := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sess)
	policy := domain.TransitionPolicy{AllowPendingProgress: cfg.AllowPendingProgress}
	tasks := store.New(repo, sess, policy, cfg.Language)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app := &cli{cfg: cfg, session: sess, auth: authClient, store: tasks}
	ctx := context.Background()

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if msg := tasks.Err(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type cli struct {
	cfg     *config.Config
	session *session.Session
	auth    *api.AuthClient
	store   *store.TaskStore
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.signup(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		c.session.Logout()
		return nil
	case "whoami":
		return c.whoami()
	case "list":
		return c.list(ctx, args)
	case "create":
		return c.create(ctx, args)
	case "update":
		return c.update(ctx, args)
	case "done":
		return c.done(ctx, args)
	case "delete":
		return c.delete(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	message, err := c.auth.Signup(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := c.session.Login(token); err != nil {
		return err
	}
	fmt.Printf("Sesión iniciada como %s\n", c.session.Email())
	return nil
}

func (c *cli) whoami() error {
	if !c.session.IsAuthenticated() {
		fmt.Println("No has iniciado sesión.")
		return nil
	}
	fmt.Printf("%s (usuario %d)\n", c.session.Email(), c.session.UserID())
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "free-text filter")
	status := fs.String("status", "", "status filter (Pendiente | En Progreso | Completada)")
	date := fs.String("date", "", "due date filter (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := domain.TaskFilter{Text: *search}
	if *status != "" {
		parsed, err := domain.ParseStatus(*status)
		if err != nil {
			return err
		}
		filter.Status = parsed
	}
	if *date != "" {
		parsed, err := time.Parse(domain.DateLayout, *date)
		if err != nil {
			return err
		}
		filter.DueDate = &parsed
	}

	if err := c.store.Refresh(ctx, filter); err != nil {
		return err
	}
	printTasks(c.store.Tasks())
	return nil
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "task title")
	description := fs.String("desc", "", "task description")
	status := fs.String("status", string(domain.StatusPending), "initial status")
	date := fs.String("date", "", "due date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	parsedStatus, err := domain.ParseStatus(*status)
	if err != nil {
		return err
	}

	draft := domain.Task{
		Title:       *title,
		Description: *description,
		Status:      parsedStatus,
	}
	if *date != "" {
		parsed, err := time.Parse(domain.DateLayout, *date)
		if err != nil {
			return err
		}
		draft.DueDate = &parsed
	}

	created, err := c.store.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Tarea %d creada.\n", *created.ID)
	return nil
}

func (c *cli) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	title := fs.String("title", "", "new title (unchanged when empty)")
	description := fs.String("desc", "", "new description (unchanged when empty)")
	status := fs.String("status", "", "new status (unchanged when empty)")
	date := fs.String("date", "", "new due date YYYY-MM-DD (unchanged when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	task, err := c.findTask(ctx, *id)
	if err != nil {
		return err
	}

	if *title != "" {
		task.Title = *title
	}
	if *description != "" {
		task.Description = *description
	}
	if *status != "" {
		parsed, err := domain.ParseStatus(*status)
		if err != nil {
			return err
		}
		task.Status = parsed
	}
	if *date != "" {
		parsed, err := time.Parse(domain.DateLayout, *date)
		if err != nil {
			return err
		}
		task.DueDate = &parsed
	}

	updated, err := c.store.Update(ctx, *task)
	if err != nil {
		return err
	}
	fmt.Printf("Tarea %d actualizada.\n", *updated.ID)
	return nil
}

func (c *cli) done(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("done", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	task, err := c.findTask(ctx, *id)
	if err != nil {
		return err
	}

	task.Status = domain.StatusCompleted
	if _, err := c.store.Update(ctx, *task); err != nil {
		return err
	}
	fmt.Printf("Tarea %d completada.\n", *id)
	return nil
}

func (c *cli) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Tarea %d eliminada.\n", *id)
	return nil
}

// findTask refreshes the store and selects the task with the given id so
// edits always start from the backend's latest copy.
func (c *cli) findTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := c.store.Refresh(ctx, domain.TaskFilter{}); err != nil {
		return nil, err
	}
	for _, task := range c.store.Tasks() {
		if task.ID != nil && *task.ID == id {
			c.store.Select(&task)
			return &task, nil
		}
	}
	return nil, fmt.Errorf("no task with id %d", id)
}

func printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No hay tareas disponibles.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTÍTULO\tESTADO\tDESCRIPCIÓN\tFECHA LÍMITE")
	for _, task := range tasks {
		dueDate := ""
		if task.DueDate != nil {
			dueDate = task.DueDate.Format(domain.DateLayout)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", *task.ID, task.Title, task.Status, task.Description, dueDate)
	}
	if err := w.Flush(); err != nil {
		zap.L().Debug("failed to flush table", zap.Error(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tareas <command> [flags]

commands:
  signup   -name -email -password
  login    -email -password
  logout
  whoami
  list     [-search] [-status] [-date]
  create   -title [-desc] [-status] [-date]
  update   -id [-title] [-desc] [-status] [-date]
  done     -id
  delete   -id`)
}

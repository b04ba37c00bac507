package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/lectern/internal/build"
	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/docs"
	"github.com/jorge-barreto/lectern/internal/doctor"
	"github.com/jorge-barreto/lectern/internal/scaffold"
	"github.com/jorge-barreto/lectern/internal/settings"
	"github.com/jorge-barreto/lectern/internal/toolchain"
	"github.com/jorge-barreto/lectern/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "lectern",
		Usage:       "Manage a course of slide decks",
		Description: "Run 'lectern docs' for documentation on course layout, slides frontmatter, settings, and the build pipeline.",
		Commands: []*cli.Command{
			initCmd(),
			newCmd(),
			buildCmd(),
			devCmd(),
			listCmd(),
			removeCmd(),
			indexCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

// openCourse locates the course root from the working directory and
// assembles the pieces every course-level command needs.
func openCourse(fs afero.Fs) (*course.Repository, settings.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, settings.Settings{}, err
	}
	root, err := course.FindCourseRoot(fs, cwd)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	repo := course.NewRepository(fs, root, ux.NewSink(os.Stderr))
	cfg, err := settings.Load(fs, root)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	return repo, cfg, nil
}

func newOrchestrator(fs afero.Fs, repo *course.Repository, cfg settings.Settings) *build.Orchestrator {
	return &build.Orchestrator{
		Repo:     repo,
		Fs:       fs,
		Runner:   toolchain.NewExecRunner(),
		Settings: cfg,
		Out:      os.Stdout,
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Turn the current directory into a course root",
		ArgsUsage: "<course-name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("course name argument is required")
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.InitCourse(afero.NewOsFs(), dir, name, os.Stdout)
		},
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a lecture from a title",
		ArgsUsage: "<title>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			title := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if title == "" {
				return fmt.Errorf("lecture title argument is required")
			}
			fs := afero.NewOsFs()
			repo, _, err := openCourse(fs)
			if err != nil {
				return err
			}
			_, err = scaffold.NewLecture(repo, fs, title, os.Stdout)
			return err
		},
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build one lecture, or every lecture",
		ArgsUsage: "[lecture]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fs := afero.NewOsFs()
			repo, cfg, err := openCourse(fs)
			if err != nil {
				return err
			}
			o := newOrchestrator(fs, repo, cfg)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			if name := cmd.Args().First(); name != "" {
				return o.BuildLecture(ctx, name)
			}
			return o.BuildCourse(ctx)
		},
	}
}

func devCmd() *cli.Command {
	return &cli.Command{
		Name:      "dev",
		Usage:     "Run a lecture's dev server in the foreground",
		ArgsUsage: "<lecture>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("lecture argument is required")
			}
			fs := afero.NewOsFs()
			repo, cfg, err := openCourse(fs)
			if err != nil {
				return err
			}
			o := newOrchestrator(fs, repo, cfg)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			proc, err := o.StartDevServer(ctx, name)
			if err != nil {
				return err
			}
			if err := proc.Wait(); err != nil {
				// An interrupt is the normal way to stop the server.
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			return nil
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show lectures and their build state",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fs := afero.NewOsFs()
			repo, _, err := openCourse(fs)
			if err != nil {
				return err
			}
			ux.RenderLectures(os.Stdout, repo.CourseName(), lectureRows(fs, repo))
			return nil
		},
	}
}

// lectureRows merges the manifest with the directories on disk so the
// listing shows missing and untracked lectures alongside healthy ones.
func lectureRows(fs afero.Fs, repo *course.Repository) []ux.LectureRow {
	names := repo.ListLectureDirectories()
	onDisk := make(map[string]bool, len(names))
	for _, n := range names {
		onDisk[n] = true
	}

	built := func(name string) bool {
		dir, ok := repo.LectureOutputDir(name)
		if !ok {
			return false
		}
		ok, _ = afero.DirExists(fs, dir)
		return ok
	}

	var rows []ux.LectureRow
	seen := make(map[string]bool)
	if manifest := repo.ReadSlidesConfig(); manifest != nil {
		for _, e := range manifest.Slides {
			rows = append(rows, ux.LectureRow{
				Name:       e.Name,
				Title:      e.Title,
				Built:      built(e.Name),
				HasDir:     onDisk[e.Name],
				Registered: true,
			})
			seen[e.Name] = true
		}
	}
	for _, n := range names {
		if seen[n] {
			continue
		}
		rows = append(rows, ux.LectureRow{Name: n, HasDir: true, Built: built(n)})
	}
	return rows
}

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Delete a lecture, its output, and its manifest entry",
		ArgsUsage: "<lecture>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("lecture argument is required")
			}
			fs := afero.NewOsFs()
			repo, cfg, err := openCourse(fs)
			if err != nil {
				return err
			}

			hasDir := repo.LectureExists(name)
			_, registered := repo.ReadSlidesConfig().TitleFor(name)
			if !hasDir && !registered {
				return fmt.Errorf("no lecture %q", name)
			}

			if !cmd.Bool("yes") {
				ok, err := ux.Confirm(ctx, os.Stdin, os.Stdout,
					fmt.Sprintf("Delete lecture %q, its output, and its manifest entry?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("aborted")
					return nil
				}
			}

			if err := fs.RemoveAll(repo.LectureDir(name)); err != nil {
				return fmt.Errorf("removing lecture directory: %w", err)
			}
			if out, ok := repo.LectureOutputDir(name); ok {
				if err := fs.RemoveAll(out); err != nil {
					return fmt.Errorf("removing aggregated output: %w", err)
				}
			}
			if err := repo.RemoveLectureEntry(name); err != nil {
				return fmt.Errorf("updating %s: %w", course.SlidesConfigName, err)
			}
			if err := newOrchestrator(fs, repo, cfg).RegenerateIndex(); err != nil {
				return fmt.Errorf("regenerating index: %w", err)
			}
			ux.Successf(os.Stdout, "removed %s", name)
			return nil
		},
	}
}

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Regenerate the course index page",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fs := afero.NewOsFs()
			repo, cfg, err := openCourse(fs)
			if err != nil {
				return err
			}
			if repo.CourseName() == "" {
				return fmt.Errorf("%s has no usable course_name", course.ConfigFileName)
			}
			if err := newOrchestrator(fs, repo, cfg).RegenerateIndex(); err != nil {
				return err
			}
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check the environment and course health",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fs := afero.NewOsFs()
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			// Doctor loads settings itself so a broken .lectern.yaml is
			// a finding rather than an abort.
			root, err := course.FindCourseRoot(fs, cwd)
			if err != nil {
				return err
			}
			repo := course.NewRepository(fs, root, ux.NewSink(os.Stderr))
			return doctor.Run(repo, fs, os.Stdout)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'lectern docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

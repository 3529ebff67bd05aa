package cmd

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"goxform.dev/pkg/goxform/internal/adapter"
	"goxform.dev/pkg/goxform/internal/controller"
	"goxform.dev/pkg/goxform/internal/domain"
	"goxform.dev/pkg/goxform/internal/domain/transforms"
	m "goxform.dev/pkg/goxform/internal/model"
)

var runParallelFlag int
var runDiffFlag bool
var runOutDirFlag string
var runSourceFlags []string
var runMockFlags []string
var runTransformFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Transform Go source files",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := append(viper.GetStringSlice(runTransformsKey), runTransformFlags...)

			factories, err := transforms.LookupAll(specs)
			if err != nil {
				return err
			}

			shared, err := loadShared(runSourceFlags, runMockFlags)
			if err != nil {
				return err
			}

			return runFiles(newUI(cmd), runRequest{
				Files:      args,
				Shared:     shared,
				Options:    compilerOptions(),
				Transforms: factories,
				Parallel:   viper.GetInt(runParallelConfigKey),
				Diff:       viper.GetBool(runDiffConfigKey),
				OutDir:     viper.GetString(runOutDirKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of files transformed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVar(&runDiffFlag, diffFlagName, defaultRunDiff, "print a unified diff instead of the transformed source")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), runDiffConfigKey)

	cmd.Flags().StringVar(&runOutDirFlag, outDirFlagName, "", "write transformed files to this directory instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(outDirFlagName), runOutDirKey)

	cmd.Flags().StringArrayVarP(&runSourceFlags, sourceFlagName, "s", nil, "extra source file available to every run (can be repeated)")
	cmd.Flags().StringArrayVar(&runMockFlags, mockFlagName, nil, "mock package as import-path=file (can be repeated)")
	cmd.Flags().StringArrayVarP(&runTransformFlags, transformFlagName, "t", nil, "transform as name or name:arg, applied in order (can be repeated)")
}

// sharedInputs are the sources and mocks every run is seeded with.
type sharedInputs struct {
	Sources []m.File
	Mocks   []m.MockModule
}

type runRequest struct {
	Files      []string
	Shared     sharedInputs
	Options    m.Options
	Transforms []adapter.TransformFactory
	Parallel   int
	Diff       bool
	OutDir     string
}

// runFiles transforms every file as an independent pipeline run. All runs
// complete before results are shown, in argument order.
func runFiles(out controller.UI, req runRequest) error {
	outcomes := make([]controller.Outcome, len(req.Files))

	var g errgroup.Group
	if req.Parallel > 0 {
		g.SetLimit(req.Parallel)
	}

	for i, file := range req.Files {
		g.Go(func() error {
			outcomes[i] = transformOne(file, req)
			return nil
		})
	}

	_ = g.Wait()

	failed := 0

	for _, outcome := range outcomes {
		out.DisplayOutcome(outcome)

		if outcome.Err != nil {
			failed++
		}
	}

	out.DisplaySummary(outcomes)

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(outcomes))
	}

	return nil
}

func transformOne(file string, req runRequest) controller.Outcome {
	outcome := controller.Outcome{Input: file, ShowDiff: req.Diff}

	contents, err := afero.ReadFile(inputFS, file)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to read %s: %w", file, err)
		return outcome
	}

	root := m.File{Path: storePath(file), Contents: string(contents)}

	output, err := pipeline.Run(domain.RunArgs{
		Root:       root,
		Sources:    req.Shared.Sources,
		Mocks:      req.Shared.Mocks,
		Options:    req.Options,
		Transforms: req.Transforms,
	})
	if err != nil {
		slog.Error("transform failed", "file", file, "error", err)
		outcome.Err = err

		return outcome
	}

	outcome.Output = output

	if req.Diff {
		outcome.Diff, err = controller.UnifiedDiff(root.Path, root.Contents, output)
		if err != nil {
			outcome.Err = fmt.Errorf("failed to diff %s: %w", file, err)
			return outcome
		}
	}

	if req.OutDir != "" {
		outcome.Written, err = saveArtifact(req, root.Path, output)
		if err != nil {
			outcome.Err = err
			return outcome
		}
	}

	slog.Info("transformed", "file", file, "written", outcome.Written)

	return outcome
}

// saveArtifact writes output under the out directory using the same naming
// rule as the in-memory artifact.
func saveArtifact(req runRequest, rootPath, output string) (string, error) {
	artifact, ok := m.ArtifactPath(rootPath, m.MergeOptions(req.Options, m.Options{m.OptOutDir: "/"}))
	if !ok {
		return "", fmt.Errorf("cannot derive output path for %s", rootPath)
	}

	target := filepath.Join(req.OutDir, filepath.FromSlash(strings.TrimPrefix(artifact, "/")))

	if err := inputFS.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	if err := afero.WriteFile(inputFS, target, []byte(output), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	return target, nil
}

// loadShared reads the --source and --mock inputs once for all runs.
func loadShared(sources, mocks []string) (sharedInputs, error) {
	var shared sharedInputs

	for _, file := range sources {
		contents, err := afero.ReadFile(inputFS, file)
		if err != nil {
			return shared, fmt.Errorf("failed to read source %s: %w", file, err)
		}

		shared.Sources = append(shared.Sources, m.File{Path: storePath(file), Contents: string(contents)})
	}

	for _, spec := range mocks {
		name, file, ok := strings.Cut(spec, "=")
		if !ok || name == "" || file == "" {
			return shared, fmt.Errorf("invalid mock %q: want import-path=file", spec)
		}

		contents, err := afero.ReadFile(inputFS, file)
		if err != nil {
			return shared, fmt.Errorf("failed to read mock %s: %w", file, err)
		}

		shared.Mocks = append(shared.Mocks, m.MockModule{Name: name, Content: string(contents)})
	}

	return shared, nil
}

// storePath maps a path on disk to its location in the virtual store.
func storePath(file string) string {
	return path.Join("/", filepath.ToSlash(file))
}
